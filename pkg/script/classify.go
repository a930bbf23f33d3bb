package script

import "strings"

// rule maps any of its substrings to a type. Rules are evaluated in
// declaration order; specific patterns precede their generic forms.
type rule struct {
	typ      ScriptType
	patterns []string
}

var rules = []rule{
	{TestE2E, []string{"test:e2e", "e2e", "cypress", "playwright", "integration"}},
	{BuildProd, []string{"build:prod", "build-prod", "--mode production", "--mode=production", "--prod", "--release"}},
	{BuildDev, []string{"build:dev", "build-dev", "--mode development", "--mode=development"}},
	{DockerBuild, []string{"docker:build", "docker build", "docker-build", "docker compose build"}},
	{DockerPush, []string{"docker:push", "docker push", "docker-push"}},
	{DeployStaging, []string{"deploy:staging", "deploy:stage", "deploy-staging"}},
	{DeployProd, []string{"deploy:prod", "deploy-prod", "deploy:production"}},
	{Provision, []string{"terraform", "pulumi", "ansible", "provision"}},
	{Deploy, []string{"deploy", "vercel", "netlify", "fly "}},
	{Publish, []string{"publish", "release", "semantic-release"}},
	{Version, []string{"version", "changeset", "bump"}},
	{Migration, []string{"migrate", "migration"}},
	{Generate, []string{"generate", "codegen", "go generate"}},
	{Typecheck, []string{"typecheck", "type-check", "tsc", "mypy", "pyright"}},
	{Lint, []string{"lint", "eslint", "clippy", "flake8", "pylint", "ruff", "golangci", "go vet"}},
	{Format, []string{"format", "prettier", "fmt", "black "}},
	{Audit, []string{"audit", "snyk", "govulncheck"}},
	{Test, []string{"test", "jest", "vitest", "mocha", "pytest"}},
	{Clean, []string{"clean", "rimraf", "rm -rf"}},
	{Build, []string{"build", "compile", "webpack", "rollup", "tsup", "esbuild"}},
	{Install, []string{"install", "bootstrap", "setup"}},
	{Update, []string{"update", "upgrade", "outdated"}},
	{Lock, []string{"lockfile", "--lock"}},
	{Serve, []string{"dev", "start", "serve", "watch", "run "}},
}

// Classify derives a ScriptType from a script's name and command. The
// ordered rules run over the name and command together, so a specific
// pattern in the command beats a generic name. A name that matches no rule
// falls back to the type owning it as a synonym.
func Classify(name, command string) ScriptType {
	lname := strings.ToLower(strings.TrimSpace(name))
	text := lname + " " + strings.ToLower(command) + " "
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(text, p) {
				return r.typ
			}
		}
	}

	for _, t := range priority {
		for _, syn := range synonyms[t] {
			if lname == syn {
				return t
			}
		}
	}
	return Other
}
