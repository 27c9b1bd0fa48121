package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultPath is where the config file is looked up when no --config is given.
const DefaultPath = "colorpick.json"

// Config mirrors colorpick.json.
type Config struct {
	PalettePath    string `json:"palette_path"`     // reference palette CSV
	WindowTitle    string `json:"window_title"`     // title of the image window
	PollIntervalMS int    `json:"poll_interval_ms"` // frame/poll cadence
	DoubleClickMS  int    `json:"double_click_ms"`  // max gap between the two presses
	ShowMonitor    bool   `json:"show_monitor"`     // CPU/MEM line in the corner
	MonitorEveryMS int    `json:"monitor_every_ms"` // resource sampling cadence
}

// NewDefault returns the settings used when there is no usable config file.
func NewDefault() *Config {
	return &Config{
		PalettePath:    "colors.csv",
		WindowTitle:    "Image Window",
		PollIntervalMS: 20,
		DoubleClickMS:  400,
		ShowMonitor:    false,
		MonitorEveryMS: 2000,
	}
}

// Load reads the config file. A missing file is not an error.
func Load(filename string) (*Config, error) {
	// 1. open
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}
	defer file.Close()

	// 2. decode on top of the defaults so omitted keys keep their default
	cfg := NewDefault()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		logrus.WithField("component", "config").WithError(err).
			Warnf("ignoring broken config %s", filename)
		return NewDefault(), nil
	}

	cfg.fix()
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

// fix replaces non-positive durations with defaults.
func (c *Config) fix() {
	def := NewDefault()
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = def.PollIntervalMS
	}
	if c.DoubleClickMS <= 0 {
		c.DoubleClickMS = def.DoubleClickMS
	}
	if c.MonitorEveryMS <= 0 {
		c.MonitorEveryMS = def.MonitorEveryMS
	}
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func (c *Config) DoubleClickWindow() time.Duration {
	return time.Duration(c.DoubleClickMS) * time.Millisecond
}

func (c *Config) MonitorEvery() time.Duration {
	return time.Duration(c.MonitorEveryMS) * time.Millisecond
}

// TPS is the number of frames per second that gives the configured poll interval.
func (c *Config) TPS() int {
	if c.PollIntervalMS <= 0 {
		return NewDefault().TPS()
	}
	tps := int(time.Second / c.PollInterval())
	if tps < 1 {
		return 1
	}
	return tps
}
