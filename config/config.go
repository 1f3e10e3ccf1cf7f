package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"territory/engine"
	"territory/game"
	"territory/meta"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var cfgFile = "territory/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type ExperimentConfig struct {
	Games     int    `json:"games"`
	MaxTicks  int    `json:"max_ticks"`
	OutputDir string `json:"output_dir"`
}

type Config struct {
	GridSize     int              `json:"grid_size"`
	MoveInterval float64          `json:"move_interval_seconds"`
	Seed         uint64           `json:"seed"` // 0 picks a time based seed
	MovePolicy   string           `json:"move_policy"`
	LogLevel     string           `json:"log_level"`
	Experiment   ExperimentConfig `json:"experiment"`
}

func Default() Config {
	return Config{
		GridSize:     meta.GRID_SIZE,
		MoveInterval: meta.MOVE_INTERVAL.Seconds(),
		MovePolicy:   meta.MOVE_POLICY,
		LogLevel:     meta.LOG_LEVEL,
		Experiment: ExperimentConfig{
			Games:     meta.GAMES,
			MaxTicks:  meta.MAX_TICKS,
			OutputDir: meta.OUTPUT_DIR,
		},
	}
}

// Load reads the config file found in the XDG config directories over the
// defaults. A missing file is not an error.
func Load() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := Default()
		return &config, config.Validate()
	}
	return LoadFile(absPath)
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (*Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err = json.Unmarshal(data, &config); err != nil {
		return nil, &InvalidConfig{fmt.Sprintf("%s: %v", path, err)}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if err := game.ValidateSize(c.GridSize); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.MoveInterval <= 0 {
		return &InvalidConfig{"move_interval_seconds must be positive"}
	}
	if _, err := engine.ParsePolicy(c.MovePolicy); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Experiment.Games < 0 || c.Experiment.MaxTicks < 0 {
		return &InvalidConfig{"experiment games and max_ticks must not be negative"}
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.MoveInterval * float64(time.Second))
}

// Policy assumes a validated config.
func (c *Config) Policy() engine.Policy {
	policy, err := engine.ParsePolicy(c.MovePolicy)
	if err != nil {
		panic(err)
	}
	return policy
}

// Level assumes a validated config.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		panic(err)
	}
	return level
}

// Save writes the config to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate config file: %w", err)
	}
	return absPath, c.SaveFile(absPath)
}

func (c *Config) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0664); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
