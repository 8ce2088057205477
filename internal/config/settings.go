package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable runtime options. Everything has a working
// default so the binary runs without a settings file.
type Settings struct {
	Listen     string        `yaml:"listen"`
	Port       string        `yaml:"port"`
	Language   string        `yaml:"language"`
	RateLimit  int           `yaml:"rateLimit"`
	RateWindow time.Duration `yaml:"rateWindow"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Listen:     DefaultListenAddr,
		Port:       DefaultPort,
		Language:   DefaultLanguage,
		RateLimit:  DefaultRateLimit,
		RateWindow: DefaultRateWindow,
	}
}

// LoadSettings reads the YAML settings file at path. An empty path or a
// missing file yields the defaults; a present but malformed file is an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		slog.Debug(MsgSettingsDefault, LogKeyComponent, CompMain)
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug(MsgSettingsDefault, LogKeyComponent, CompMain, LogKeyFile, path)
			return s, nil
		}
		return s, fmt.Errorf("%s: %w", ErrSettingsOpen, err)
	}

	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}
	s.applyFallbacks()

	if err := s.Validate(); err != nil {
		return s, err
	}

	slog.Info(MsgSettingsLoaded, LogKeyComponent, CompMain, LogKeyFile, path)
	return s, nil
}

// applyFallbacks replaces zero values left by a partial settings file.
func (s *Settings) applyFallbacks() {
	if s.Listen == "" {
		s.Listen = DefaultListenAddr
	}
	if s.Port == "" {
		s.Port = DefaultPort
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.RateLimit <= 0 {
		s.RateLimit = DefaultRateLimit
	}
	if s.RateWindow <= 0 {
		s.RateWindow = DefaultRateWindow
	}
}

// Validate checks settings ranges that cannot be silently corrected.
func (s Settings) Validate() error {
	if s.Port == "" {
		return errors.New(ErrPortRequired)
	}
	port, err := strconv.Atoi(s.Port)
	if err != nil || port < MinPort || port > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (s Settings) Addr() string {
	return s.Listen + AddrSeparator + s.Port
}
