package magetasks

import (
	"os"
	"path/filepath"
)

var (
	// ModulePath is the Go module path used for version ldflags.
	ModulePath = "github.com/dkoosis/psr"

	// BinPath is where Build writes the psr binary.
	BinPath = "./bin/psr"

	// MainPackage is the package Build compiles.
	MainPackage = "./cmd/psr"

	// ProjectRoot is the directory mage was started in.
	ProjectRoot string
)

// Initialize records the project root and creates bin/.
// Call this from the magefile's init().
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(ProjectRoot, "bin"), 0o750)
}
