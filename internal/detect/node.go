package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/dkoosis/psr/pkg/script"
)

// wellKnownShortcuts binds keys to conventional script names.
var wellKnownShortcuts = map[string]rune{
	"start":     's',
	"dev":       'd',
	"build":     'b',
	"test":      't',
	"lint":      'l',
	"format":    'f',
	"clean":     'x',
	"deploy":    'p',
	"typecheck": 'c',
	"watch":     'w',
}

type packageJSON struct {
	Scripts      map[string]string `json:"scripts"`
	Descriptions map[string]string `json:"descriptions"`
}

func sniffNode(dir string) Kind {
	if !exists(dir, "package.json") {
		return Unknown
	}
	switch {
	case exists(dir, "bun.lockb"), exists(dir, "bun.lock"):
		return Bun
	case exists(dir, "pnpm-lock.yaml"):
		return Pnpm
	case exists(dir, "yarn.lock"):
		return Yarn
	case exists(dir, "package-lock.json"):
		return Npm
	case exists(dir, "deno.lock"):
		return Deno
	case fileContains(dir, ".npmrc", "pnpm"):
		return Pnpm
	case exists(dir, ".yarnrc"), exists(dir, ".yarnrc.yml"):
		return Yarn
	}
	return Npm
}

// nodeScripts reads package.json. Classified scripts come first, then Other,
// each alphabetically.
func nodeScripts(dir string) ([]script.Script, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, err
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}

	scripts := make([]script.Script, 0, len(pkg.Scripts))
	for name, command := range pkg.Scripts {
		opts := []script.Option{script.WithDescription(pkg.Descriptions[name])}
		if r, ok := wellKnownShortcuts[name]; ok {
			opts = append(opts, script.WithShortcut(r))
		}
		scripts = append(scripts, script.New(name, command, opts...))
	}
	sort.Slice(scripts, func(i, j int) bool {
		oi, oj := scripts[i].Type == script.Other, scripts[j].Type == script.Other
		if oi != oj {
			return oj
		}
		return scripts[i].Name < scripts[j].Name
	})
	return scripts, nil
}
