// Package config loads the ~/.timr/config.toml preferences file. The
// tracker core only reads these values; the config command writes them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"timr/internal/models"
	"timr/internal/timeutil"
)

// Config holds the user preferences the tracker consults.
type Config struct {
	DefaultActivityType    string `toml:"default-activity-type"`
	DefaultDurationMinutes int    `toml:"default-duration-minutes"`
	RoundingMinutes        int    `toml:"rounding-minutes"`
	DefaultStartTime       string `toml:"default-start-time"`
	CSVDelimiter           string `toml:"csv-delimiter"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultActivityType:    string(models.TypeDevelop),
		DefaultDurationMinutes: 60,
		RoundingMinutes:        5,
		DefaultStartTime:       "09:00",
		CSVDelimiter:           ",",
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".timr", "config.toml"), nil
}

// Load reads the config file at path, filling defaults for anything
// missing. A nonexistent file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// normalize clamps out-of-range values back to usable defaults.
func (c *Config) normalize() {
	if c.DefaultDurationMinutes < 1 {
		c.DefaultDurationMinutes = 60
	}
	if c.RoundingMinutes < 0 {
		c.RoundingMinutes = 0
	}
	if len([]rune(c.CSVDelimiter)) != 1 {
		c.CSVDelimiter = ","
	}
	if c.DefaultStartTime == "" {
		c.DefaultStartTime = "09:00"
	}
}

// ActivityType resolves the configured default type. Unknown text falls
// back to DEVELOP, the out-of-the-box default.
func (c *Config) ActivityType() models.ActivityType {
	for _, t := range models.ActivityTypes {
		if string(t) == c.DefaultActivityType {
			return t
		}
	}
	return models.TypeDevelop
}

// DefaultStartDate anchors the configured "HH:mm" start time onto
// reference's calendar day.
func (c *Config) DefaultStartDate(reference time.Time) time.Time {
	return timeutil.ClockOn(c.DefaultStartTime, reference)
}

// DefaultDuration returns the default session length.
func (c *Config) DefaultDuration() time.Duration {
	return time.Duration(c.DefaultDurationMinutes) * time.Minute
}
