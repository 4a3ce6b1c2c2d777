package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"mogger/internal/config"
	"mogger/internal/system"
	"mogger/pkg/mogger"
)

var (
	// stdout receives rendered log lines.
	stdout io.Writer = os.Stdout
	// registry is where `mogger log` installs its logger.
	registry = mogger.Process()
)

// resolvePath returns --config when given, otherwise the default path.
func resolvePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Path()
}

// loadSettings reads the effective config file.
func loadSettings() (config.Settings, string, error) {
	p, err := resolvePath()
	if err != nil {
		return config.Settings{}, "", err
	}
	s, err := config.Load(p)
	if err != nil {
		return config.Settings{}, p, err
	}
	system.Logger.Debug("loaded config", "path", p, "time", s.Config.Time, "level", s.Config.Level)
	return s, p, nil
}

// newLogger builds a stdout logger from s, honoring --no-color.
func newLogger(s config.Settings) *mogger.Mogger {
	opts := []mogger.Option{mogger.WithOutput(stdout)}
	if noColor {
		opts = append(opts, mogger.WithColorProfile(termenv.Ascii))
	}
	return mogger.New(s.Config, s.Format, opts...)
}

// installLogger builds a logger from s and installs it process-wide.
func installLogger(s config.Settings) error {
	return registry.Install(newLogger(s))
}
