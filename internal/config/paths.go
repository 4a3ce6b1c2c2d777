package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// EnvPath overrides the config file location when set.
const EnvPath = "MOGGER_CONFIG"

// Dir returns the mogger config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/mogger; on macOS
// to ~/Library/Application Support/mogger; and on Windows to %AppData%/mogger.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "mogger"), nil
}

// Path returns the config file path, honoring $MOGGER_CONFIG.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
