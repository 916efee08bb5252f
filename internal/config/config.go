// File: internal/config/config.go
// Brief: Internal config package implementation for 'config'.

// Package config defines the global flag plumbing for dirstack, translating
// pflag values (routed through a viper instance) into a typed Settings struct.
// No configuration file and no environment variable is consulted.
package config

import (
	"fmt"
	"strings"

	"github.com/example/dirstack/internal/logging"
	"github.com/example/dirstack/internal/ui"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	flagLogLevel      = "log-level"
	flagColor         = "color"
	flagKeepOnFailure = "keep-on-failure"
)

// Settings holds the global CLI configuration.
type Settings struct {
	LogLevel  string
	ColorMode string
	// KeepOnFailure leaves the saved directory on the stack after a failed pushd.
	KeepOnFailure bool
}

// NewSettings returns Settings with defaults applied.
func NewSettings() *Settings {
	return &Settings{
		LogLevel:  "info",
		ColorMode: ui.ColorAuto,
	}
}

// BindFlags attaches the global flags to fs.
func (s *Settings) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.LogLevel, flagLogLevel, s.LogLevel, "Log level for diagnostics on stderr (debug, info, warn, error)")
	fs.StringVar(&s.ColorMode, flagColor, s.ColorMode, "Colorize the stack listing: auto, always, or never")
	fs.BoolVar(&s.KeepOnFailure, flagKeepOnFailure, s.KeepOnFailure, "Keep the saved directory on the stack when pushd cannot change to its target")
}

// NewViper returns a viper instance bound to fs. Only flag values and flag
// defaults are visible through it.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// Resolve copies the values known to v into s and validates the result.
func (s *Settings) Resolve(v *viper.Viper) error {
	if v.IsSet(flagLogLevel) {
		s.LogLevel = v.GetString(flagLogLevel)
	}
	if v.IsSet(flagColor) {
		s.ColorMode = v.GetString(flagColor)
	}
	if v.IsSet(flagKeepOnFailure) {
		s.KeepOnFailure = v.GetBool(flagKeepOnFailure)
	}
	return s.Validate()
}

// Validate normalizes and checks the settings.
func (s *Settings) Validate() error {
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	if _, _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	mode, err := ui.ParseColorMode(s.ColorMode)
	if err != nil {
		return err
	}
	s.ColorMode = mode
	return nil
}
