package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Thresholds drive gauge coloring in the TUI: a value at or above Warn
// renders yellow, at or above Crit renders red.
type Thresholds struct {
	TctlWarn float64 `yaml:"tctl_warn"`
	TctlCrit float64 `yaml:"tctl_crit"`
	SocWarn  float64 `yaml:"soc_warn"`
	SocCrit  float64 `yaml:"soc_crit"`
	// Limit gauges (PPT/TDC/EDC) color on percent of limit.
	LimitWarn float64 `yaml:"limit_warn"`
	LimitCrit float64 `yaml:"limit_crit"`
}

// Config carries runtime options for zenmon.
type Config struct {
	SysfsPath  string        `yaml:"sysfs_path"`
	Interval   time.Duration `yaml:"interval"`
	Listen     string        `yaml:"listen"`
	Thresholds Thresholds    `yaml:"thresholds"`
}

func Default() Config {
	return Config{
		SysfsPath: "/sys/kernel/ryzen_smu_drv",
		Interval:  time.Second,
		Listen:    ":9807",
		Thresholds: Thresholds{
			TctlWarn:  70,
			TctlCrit:  85,
			SocWarn:   50,
			SocCrit:   70,
			LimitWarn: 70,
			LimitCrit: 90,
		},
	}
}

// Load merges an optional YAML file and environment overrides over the
// defaults. A missing file at the default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// UnmarshalYAML merges a document over the existing values, parsing
// the interval from duration syntax ("500ms", "2s").
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var doc struct {
		SysfsPath  string    `yaml:"sysfs_path"`
		Interval   string    `yaml:"interval"`
		Listen     string    `yaml:"listen"`
		Thresholds yaml.Node `yaml:"thresholds"`
	}
	if err := value.Decode(&doc); err != nil {
		return err
	}
	if doc.SysfsPath != "" {
		c.SysfsPath = doc.SysfsPath
	}
	if doc.Listen != "" {
		c.Listen = doc.Listen
	}
	if doc.Interval != "" {
		d, err := time.ParseDuration(doc.Interval)
		if err != nil {
			return fmt.Errorf("invalid interval: %w", err)
		}
		c.Interval = d
	}
	if !doc.Thresholds.IsZero() {
		if err := doc.Thresholds.Decode(&c.Thresholds); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ZENMON_SYSFS"); v != "" {
		c.SysfsPath = v
	}
	if v := os.Getenv("ZENMON_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Interval = parsed
		} else if parsed, err2 := time.ParseDuration(v + "s"); err2 == nil {
			c.Interval = parsed
		}
	}
	if v := os.Getenv("ZENMON_LISTEN"); v != "" {
		c.Listen = v
	}
}
