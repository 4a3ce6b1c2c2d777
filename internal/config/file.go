package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mogger/pkg/mogger"
)

// File is the on-disk shape of config.yaml.
type File struct {
	Time   string `yaml:"time" json:"time,omitempty" jsonschema:"title=Time format,description=Timestamp prefix layout,enum=none,enum=default,enum=clock-date-month-year,default=clock-date-month-year"`
	Level  string `yaml:"level" json:"level,omitempty" jsonschema:"title=Level format,description=Level prefix display,enum=none,enum=default,default=default"`
	Output string `yaml:"output" json:"output,omitempty" jsonschema:"title=Output,description=Sink for rendered lines,enum=console,default=console"`
	Format string `yaml:"format" json:"format,omitempty" jsonschema:"title=Format,description=Line encoding,enum=plain-text,default=plain-text"`
}

// Settings is a parsed config file.
type Settings struct {
	Config mogger.Config
	Format mogger.Format
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{Config: mogger.DefaultConfig(), Format: mogger.FormatPlainText}
}

// FileOf renders s in its on-disk shape.
func FileOf(s Settings) File {
	return File{
		Time:   s.Config.Time.String(),
		Level:  s.Config.Level.String(),
		Output: s.Config.Output.String(),
		Format: s.Format.String(),
	}
}

// Settings parses f. Empty keys take their default.
func (f File) Settings() (Settings, error) {
	out := Defaults()
	var err error
	if strings.TrimSpace(f.Time) != "" {
		if out.Config.Time, err = mogger.ParseTimeFormat(f.Time); err != nil {
			return Settings{}, fmt.Errorf("config key time: %w", err)
		}
	}
	if strings.TrimSpace(f.Level) != "" {
		if out.Config.Level, err = mogger.ParseLevelFormat(f.Level); err != nil {
			return Settings{}, fmt.Errorf("config key level: %w", err)
		}
	}
	if out.Config.Output, err = mogger.ParseOutputType(f.Output); err != nil {
		return Settings{}, fmt.Errorf("config key output: %w", err)
	}
	if strings.TrimSpace(f.Format) != "" {
		if out.Format, err = mogger.ParseFormat(f.Format); err != nil {
			return Settings{}, fmt.Errorf("config key format: %w", err)
		}
	}
	return out, nil
}

// Load reads settings from path. A missing file yields Defaults and no error.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, err
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Settings()
}

// Save writes s to path as YAML, creating parent dirs.
func Save(path string, s Settings) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Marshal encodes s as config.yaml content.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(FileOf(s))
}
