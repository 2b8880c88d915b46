package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ResolverSettings tunes the fuzzy command matching.
type ResolverSettings struct {
	AutoAccept float64 `yaml:"auto_accept"`
	Suggest    float64 `yaml:"suggest"`
}

// Settings is the user-editable configuration stored in config.yaml.
type Settings struct {
	// DataFile overrides the address book location. Relative paths are
	// resolved against the home directory.
	DataFile           string           `yaml:"data_file,omitempty"`
	Language           string           `yaml:"language"`
	BirthdayWindowDays int              `yaml:"birthday_window_days"`
	Resolver           ResolverSettings `yaml:"resolver"`
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Language:           DefaultLanguage,
		BirthdayWindowDays: DefaultBirthdayWindow,
		Resolver: ResolverSettings{
			AutoAccept: DefaultAutoAcceptRatio,
			Suggest:    DefaultSuggestRatio,
		},
	}
}

// Home returns the application directory, respecting $CONTACTBOOK_HOME.
func Home() string {
	if h := os.Getenv(HomeEnvVar); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", HomeDirName)
	}
	return filepath.Join(home, HomeDirName)
}

// LoadSettings reads config.yaml from home. A missing file yields the
// defaults; missing fields are filled from defaults.
func LoadSettings(home string) (Settings, error) {
	cfg := DefaultSettings()
	path := filepath.Join(home, ConfigFileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug(MsgConfigDefault, LogKeyComponent, CompConfig, LogKeyFile, path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("%s at %s: %w", ErrConfigRead, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the settings to config.yaml under home.
func (s Settings) Save(home string) error {
	if err := os.MkdirAll(home, DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(home, ConfigFileName), data, FilePermUserRW)
}

// Validate rejects settings the session cannot work with.
func (s Settings) Validate() error {
	r := s.Resolver
	if r.Suggest <= 0 || r.Suggest > r.AutoAccept || r.AutoAccept > 1 {
		return errors.New(ErrConfigRatio)
	}
	if s.BirthdayWindowDays < 0 {
		return errors.New(ErrConfigWindow)
	}
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %q", ErrUnsupportedLang, s.Language)
	}
	return nil
}

// DataPath returns the absolute location of the address book.
func (s Settings) DataPath(home string) string {
	switch {
	case s.DataFile == "":
		return filepath.Join(home, DataFileName)
	case filepath.IsAbs(s.DataFile):
		return s.DataFile
	default:
		return filepath.Join(home, s.DataFile)
	}
}
