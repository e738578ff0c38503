package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"maitred/internal/models"
)

// ErrInvalid marks configuration validation failures
var ErrInvalid = errors.New("invalid config")

// Config is the application configuration
type Config struct {
	Data      DataConfig    `yaml:"data"`
	Logging   LoggingConfig `yaml:"logging"`
	FloorPlan []TableSeed   `yaml:"floorPlan"`
	MenuSeed  []DishSeed    `yaml:"menuSeed"`
}

// DataConfig locates the data files
type DataConfig struct {
	MenuFile    string `yaml:"menuFile"`
	HistoryFile string `yaml:"historyFile"`
	ArchiveFile string `yaml:"archiveFile"` // optional; empty disables the sqlite archive
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Path      string `yaml:"path"` // optional; empty logs to stdout
	MaxSizeMB int    `yaml:"maxSizeMB"`
}

// TableSeed describes one table of the floor plan
type TableSeed struct {
	Seats  int    `yaml:"seats"`
	Status string `yaml:"status"` // optional; defaults to empty
	Guests int    `yaml:"guests"`
}

// DishSeed describes a dish seeded into an empty menu
type DishSeed struct {
	Name       string  `yaml:"name"`
	Price      float64 `yaml:"price"`
	GlutenFree bool    `yaml:"glutenFree"`
	Vegan      bool    `yaml:"vegan"`
	Vegetarian bool    `yaml:"vegetarian"`
	SpiceLevel int     `yaml:"spiceLevel"`
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = 32
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every bound before the config is used
func (c *Config) Validate() error {
	if c.Data.MenuFile == "" {
		return fmt.Errorf("%w: data.menuFile is required", ErrInvalid)
	}
	if c.Data.HistoryFile == "" {
		return fmt.Errorf("%w: data.historyFile is required", ErrInvalid)
	}
	if c.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("%w: logging.maxSizeMB must be >= 0", ErrInvalid)
	}
	for i, table := range c.FloorPlan {
		if table.Seats <= 0 {
			return fmt.Errorf("%w: floorPlan[%d].seats must be > 0", ErrInvalid, i)
		}
		if table.Guests < 0 || table.Guests > table.Seats {
			return fmt.Errorf("%w: floorPlan[%d].guests must be within 0..seats", ErrInvalid, i)
		}
		if table.Status != "" && !models.TableStatus(table.Status).Valid() {
			return fmt.Errorf("%w: floorPlan[%d].status %q is unknown", ErrInvalid, i, table.Status)
		}
	}
	for i, dish := range c.MenuSeed {
		if dish.Name == "" {
			return fmt.Errorf("%w: menuSeed[%d].name is required", ErrInvalid, i)
		}
		if dish.Price < 0 {
			return fmt.Errorf("%w: menuSeed[%d].price must be >= 0", ErrInvalid, i)
		}
		if err := models.ValidateSpiceLevel(dish.SpiceLevel); err != nil {
			return fmt.Errorf("%w: menuSeed[%d]: %v", ErrInvalid, i, err)
		}
	}
	return nil
}
