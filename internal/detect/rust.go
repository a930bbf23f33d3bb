package detect

import (
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/dkoosis/psr/pkg/script"
)

type cargoManifest struct {
	Package struct {
		Metadata struct {
			Scripts map[string]string `toml:"scripts"`
		} `toml:"metadata"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

func sniffRust(dir string) Kind {
	if exists(dir, "Cargo.toml") {
		return Cargo
	}
	return Unknown
}

func cargoScripts(dir string) ([]script.Script, error) {
	var manifest cargoManifest
	if _, err := toml.DecodeFile(filepath.Join(dir, "Cargo.toml"), &manifest); err != nil {
		return nil, err
	}

	scripts := []script.Script{
		builtin("build", "cargo build", "Compile the current package", script.Build, 'b'),
		builtin("run", "cargo run", "Run the main binary of the current package", script.Serve, 'r'),
		builtin("test", "cargo test", "Run the tests", script.Test, 't'),
		builtin("check", "cargo check", "Report errors without building object files", script.Lint, 'c'),
		builtin("lint", "cargo clippy", "Run the Rust linter (clippy)", script.Lint, 'l'),
		builtin("fix", "cargo clippy --fix", "Automatically fix linting issues", script.Format, 0),
		builtin("install", "cargo install --path .", "Install the current package", script.Install, 0),
		builtin("publish", "cargo publish", "Publish the current package", script.Publish, 0),
	}

	custom := manifest.Package.Metadata.Scripts
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		scripts = append(scripts, script.New(name, custom[name]))
	}

	for _, bin := range manifest.Bin {
		if bin.Name == "" {
			continue
		}
		scripts = append(scripts, script.New("run:"+bin.Name, "cargo run --bin "+bin.Name,
			script.WithDescription("Run the "+bin.Name+" binary"), script.WithType(script.Serve)))
	}
	return scripts, nil
}

func builtin(name, command, desc string, typ script.ScriptType, key rune) script.Script {
	opts := []script.Option{script.WithDescription(desc), script.WithType(typ)}
	if key != 0 {
		opts = append(opts, script.WithShortcut(key))
	}
	return script.New(name, command, opts...)
}
