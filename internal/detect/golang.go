package detect

import (
	"bufio"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dkoosis/psr/pkg/script"
)

// makeTarget matches "name:" and "name: deps" but not "name := value".
var makeTarget = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9_.\-/]*)\s*:([^=]|$)`)

func sniffGo(dir string) Kind {
	if exists(dir, "go.mod") {
		return Go
	}
	return Unknown
}

func goScripts(dir string) ([]script.Script, error) {
	scripts := []script.Script{
		builtin("build", "go build ./...", "Compile the packages", script.Build, 'b'),
		builtin("run", "go run .", "Run the main package", script.Serve, 'r'),
		builtin("test", "go test ./...", "Run package tests", script.Test, 't'),
		builtin("lint", "golangci-lint run", "Run linters", script.Lint, 'l'),
		builtin("fmt", "go fmt ./...", "Format code", script.Format, 'f'),
		builtin("vet", "go vet ./...", "Report suspicious constructs", script.Lint, 'v'),
		builtin("tidy", "go mod tidy", "Clean up dependencies", script.Update, 0),
		builtin("generate", "go generate ./...", "Run code generators", script.Generate, 0),
	}

	targets, err := makefileTargets(dir)
	if err != nil {
		return nil, err
	}
	for _, target := range targets {
		scripts = append(scripts, script.New("make:"+target, "make "+target,
			script.WithDescription("Run make target: "+target)))
	}

	mage, err := mageTargets(dir)
	if err != nil {
		return nil, err
	}
	for _, target := range mage {
		scripts = append(scripts, script.New("mage:"+target.name, "mage "+target.name,
			script.WithDescription(target.doc)))
	}
	return scripts, nil
}

func makefileTargets(dir string) ([]string, error) {
	f, err := os.Open(filepath.Join(dir, "Makefile"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var targets []string
	seen := map[string]bool{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := makeTarget.FindStringSubmatch(sc.Text())
		if m == nil || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		targets = append(targets, m[1])
	}
	return targets, sc.Err()
}

type mageTarget struct {
	name string
	doc  string
}

// mageTargets lists exported top-level functions of magefile.go in source
// order, lowercased the way mage exposes them.
func mageTargets(dir string) ([]mageTarget, error) {
	path := filepath.Join(dir, "magefile.go")
	if !exists(dir, "magefile.go") {
		return nil, nil
	}
	file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var targets []mageTarget
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !fn.Name.IsExported() {
			continue
		}
		doc := "Run mage target: " + strings.ToLower(fn.Name.Name)
		if fn.Doc != nil {
			doc = strings.TrimSpace(fn.Doc.Text())
		}
		targets = append(targets, mageTarget{name: strings.ToLower(fn.Name.Name), doc: doc})
	}
	return targets, nil
}
