package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

const (
	appName        = "rti"
	configFileName = "default-config.toml"
	timezoneEnv    = "TIMEZONE"
)

// Config is the persisted user preference file.
type Config struct {
	DefaultTimezone     string   `toml:"default_timezone,omitempty" validate:"omitempty,tzname"`
	CustomParsingTokens []string `toml:"custom_parsing_tokens,omitempty" validate:"dive,required,strftime"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("tzname", func(fl validator.FieldLevel) bool {
		_, err := loadZone(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("strftime", func(fl validator.FieldLevel) bool {
		_, err := newCustomPattern(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config directory: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// Store reads and writes Config at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file is an empty config.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}
	return &cfg, nil
}

func (s *Store) Save(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (s *Store) SetTimezone(name string) (string, error) {
	loc, err := loadZone(name)
	if err != nil {
		return "", fmt.Errorf("invalid timezone provided: %w", err)
	}
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	cfg.DefaultTimezone = loc.String()
	if err := s.Save(cfg); err != nil {
		return "", fmt.Errorf("error storing timezone: %w", err)
	}
	return fmt.Sprintf("Timezone updated to %s", loc), nil
}

func (s *Store) ClearTimezone() (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	cfg.DefaultTimezone = ""
	if err := s.Save(cfg); err != nil {
		return "", fmt.Errorf("error storing timezone: %w", err)
	}
	return "Timezone cleared.", nil
}

func (s *Store) AddToken(token string) (string, error) {
	if _, err := newCustomPattern(token); err != nil {
		return "", fmt.Errorf("invalid custom token: %w", err)
	}
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	cfg.CustomParsingTokens = append(cfg.CustomParsingTokens, token)
	if err := s.Save(cfg); err != nil {
		return "", fmt.Errorf("error storing custom token: %w", err)
	}
	return "Custom Token successfully added.", nil
}

// RemoveToken drops every stored copy of token.
func (s *Store) RemoveToken(token string) (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	if len(cfg.CustomParsingTokens) == 0 {
		return "No tokens to remove.", nil
	}
	kept := make([]string, 0, len(cfg.CustomParsingTokens))
	for _, t := range cfg.CustomParsingTokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(cfg.CustomParsingTokens) {
		return "No matching token found.", nil
	}
	if len(kept) == 0 {
		kept = nil
	}
	cfg.CustomParsingTokens = kept
	if err := s.Save(cfg); err != nil {
		return "", fmt.Errorf("error removing custom token: %w", err)
	}
	return "Custom token removed.", nil
}

var errNoCustomTokens = errors.New("no custom tokens exist")

// Tokens returns the stored custom tokens in the order they were added.
func (s *Store) Tokens() ([]string, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.CustomParsingTokens, nil
}

// resolveLocation picks the zone for this run: the --tz flag, then the
// TIMEZONE environment variable, then the stored preference, then UTC. A bad
// flag or environment value is an error; a bad stored value is only logged.
func resolveLocation(flagTZ string, lookupEnv func(string) (string, bool), cfg *Config, logger *zap.Logger) (*time.Location, error) {
	if flagTZ != "" {
		loc, err := loadZone(flagTZ)
		if err != nil {
			return nil, fmt.Errorf("invalid --tz: %w", err)
		}
		return loc, nil
	}
	if name, ok := lookupEnv(timezoneEnv); ok {
		loc, err := loadZone(name)
		if err != nil {
			return nil, fmt.Errorf("unable to parse %s env variable: %w", timezoneEnv, err)
		}
		return loc, nil
	}
	if cfg != nil && cfg.DefaultTimezone != "" {
		loc, err := loadZone(cfg.DefaultTimezone)
		if err == nil {
			return loc, nil
		}
		logger.Warn("ignoring stored timezone",
			zap.String("timezone", cfg.DefaultTimezone),
			zap.Error(err),
		)
	}
	return time.UTC, nil
}

// resolveCustomTokens returns the stored tokens that compile, logging the rest.
func resolveCustomTokens(cfg *Config, logger *zap.Logger) []string {
	if cfg == nil {
		return nil
	}
	tokens := make([]string, 0, len(cfg.CustomParsingTokens))
	for _, token := range cfg.CustomParsingTokens {
		if err := validate.Var(token, "required,strftime"); err != nil {
			logger.Warn("ignoring stored custom token", zap.String("token", token), zap.Error(err))
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
