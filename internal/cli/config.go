package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig carries optional TOML defaults for the gk command. A zero field
// means "not set"; flags explicitly given on the command line always win.
//
// Example file:
//
//	abs_tol = 1e-12
//	rel_tol = 1e-9
//	max_iter = 2000
//	subdivisions = 16
type fileConfig struct {
	AbsTol       float64 `toml:"abs_tol"`
	RelTol       float64 `toml:"rel_tol"`
	MaxIter      int     `toml:"max_iter"`
	Subdivisions int     `toml:"subdivisions"`
}

var cfg fileConfig

// loadConfig reads the TOML file at path, falling back to $HOME/.quadra.toml
// when path is empty. A missing fallback file is fine; a missing or malformed
// explicit file is an error.
func loadConfig(path string) error {
	cfg = fileConfig{}

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".quadra.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("config: %w", err)
	}
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	log.Debugf("config loaded from %s", path)

	return nil
}
