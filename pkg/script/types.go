package script

// ScriptType is the fine-grained purpose of a script.
type ScriptType int

const (
	Other ScriptType = iota
	Serve
	Generate
	Migration
	Test
	TestE2E
	Lint
	Typecheck
	Format
	Audit
	Clean
	Build
	BuildDev
	BuildProd
	Install
	Update
	Lock
	Version
	Publish
	Deploy
	DeployStaging
	DeployProd
	DockerBuild
	DockerPush
	Provision
)

// Phase is the coarse lifecycle bucket a ScriptType belongs to.
type Phase int

const (
	PhaseDevelopment Phase = iota
	PhaseQuality
	PhaseBuild
	PhaseDependencies
	PhaseRelease
	PhaseInfrastructure
	PhaseOther
)

var typeNames = map[ScriptType]string{
	Other:         "other",
	Serve:         "serve",
	Generate:      "generate",
	Migration:     "migration",
	Test:          "test",
	TestE2E:       "e2e-test",
	Lint:          "lint",
	Typecheck:     "typecheck",
	Format:        "format",
	Audit:         "audit",
	Clean:         "clean",
	Build:         "build",
	BuildDev:      "build-dev",
	BuildProd:     "build-prod",
	Install:       "install",
	Update:        "update",
	Lock:          "lock",
	Version:       "version",
	Publish:       "publish",
	Deploy:        "deploy",
	DeployStaging: "deploy-staging",
	DeployProd:    "deploy-prod",
	DockerBuild:   "docker-build",
	DockerPush:    "docker-push",
	Provision:     "provision",
}

func (t ScriptType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "other"
}

// Phase returns the phase of t.
func (t ScriptType) Phase() Phase { return PhaseOf(t) }

// PhaseOf maps every ScriptType to exactly one Phase.
func PhaseOf(t ScriptType) Phase {
	switch t {
	case Serve, Generate, Migration:
		return PhaseDevelopment
	case Test, TestE2E, Lint, Typecheck, Format, Audit:
		return PhaseQuality
	case Clean, Build, BuildDev, BuildProd:
		return PhaseBuild
	case Install, Update, Lock:
		return PhaseDependencies
	case Version, Publish, Deploy, DeployStaging, DeployProd:
		return PhaseRelease
	case DockerBuild, DockerPush, Provision:
		return PhaseInfrastructure
	default:
		return PhaseOther
	}
}

var phaseNames = [...]string{
	PhaseDevelopment:    "development",
	PhaseQuality:        "quality",
	PhaseBuild:          "build",
	PhaseDependencies:   "dependencies",
	PhaseRelease:        "release",
	PhaseInfrastructure: "infrastructure",
	PhaseOther:          "other",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "other"
	}
	return phaseNames[p]
}

// priority is the order in which types are consulted for synonym
// resolution and exact-name classification.
var priority = []ScriptType{
	Serve,
	TestE2E,
	Test,
	Lint,
	Typecheck,
	Format,
	Audit,
	BuildDev,
	BuildProd,
	Build,
	Clean,
	Generate,
	Migration,
	Install,
	Update,
	Lock,
	Version,
	Publish,
	DeployStaging,
	DeployProd,
	Deploy,
	DockerBuild,
	DockerPush,
	Provision,
}

var synonyms = map[ScriptType][]string{
	Serve:         {"dev", "start", "run", "watch", "serve"},
	Generate:      {"generate", "gen", "codegen"},
	Migration:     {"migrate", "migration", "db:migrate"},
	Test:          {"test", "check"},
	TestE2E:       {"e2e", "test:e2e", "integration"},
	Lint:          {"lint", "check", "clippy"},
	Typecheck:     {"typecheck", "tc", "types", "type-check"},
	Format:        {"format", "fmt"},
	Audit:         {"audit", "security"},
	Clean:         {"clean", "clear"},
	Build:         {"build", "compile"},
	BuildDev:      {"build:dev", "build-dev"},
	BuildProd:     {"build:prod", "build-prod"},
	Install:       {"install", "setup", "bootstrap"},
	Update:        {"update", "upgrade", "outdated"},
	Lock:          {"lock"},
	Version:       {"version", "bump"},
	Publish:       {"publish", "release"},
	Deploy:        {"deploy", "ship"},
	DeployStaging: {"deploy:staging", "staging"},
	DeployProd:    {"deploy:prod", "production"},
	DockerBuild:   {"docker:build", "docker-build"},
	DockerPush:    {"docker:push", "docker-push"},
	Provision:     {"provision", "infra"},
}

// Synonyms returns the ordered synonym tokens owned by t. Other owns none.
func Synonyms(t ScriptType) []string {
	return append([]string(nil), synonyms[t]...)
}

// Types returns every classifiable type in resolution priority order.
func Types() []ScriptType {
	return append([]ScriptType(nil), priority...)
}

// ParseType parses the String form of a ScriptType.
func ParseType(s string) (ScriptType, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return Other, false
}
