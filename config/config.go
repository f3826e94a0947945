package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/jsphweid/chordgrid/constants"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	LogLevel       string        `yaml:"log_level"`
	NameLimit      int           `yaml:"name_limit"`
	MaxMeasures    int           `yaml:"max_measures"`
	ExportPath     string        `yaml:"export_path"`
	ExportDebounce time.Duration `yaml:"export_debounce"`
	Song           SongSeed      `yaml:"song"`
}

func Default() *Config {
	return &Config{
		Addr:           constants.DefaultAddr,
		CORSOrigins:    []string{"*"},
		LogLevel:       "info",
		NameLimit:      constants.DefaultNameLimit,
		MaxMeasures:    constants.MaxMeasuresTotal,
		ExportDebounce: 500 * time.Millisecond,
		Song:           DefaultSong(),
	}
}

// Load reads .env if present, then the YAML file at path (optional), then
// the CHORDGRID_* environment overrides.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: couldn't load .env: %w", err)
	}

	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: couldn't read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: couldn't parse %s: %w", path, err)
		}
	}
	c.applyEnv()
	c.fillDefaults()
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(constants.EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(constants.EnvExportPath); v != "" {
		c.ExportPath = v
	}
	if v := os.Getenv(constants.EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.EnvCORSOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
}

func (c *Config) fillDefaults() {
	if c.Addr == "" {
		c.Addr = constants.DefaultAddr
	}
	if c.NameLimit <= 0 {
		c.NameLimit = constants.DefaultNameLimit
	}
	if c.MaxMeasures <= 0 {
		c.MaxMeasures = constants.MaxMeasuresTotal
	}
	if c.ExportDebounce <= 0 {
		c.ExportDebounce = 500 * time.Millisecond
	}
}
