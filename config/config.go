package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/Atlinx/planck-scribe/planck"
)

type Config struct {
	BaseKey        string     `yaml:"base_key"`
	BasePitch      int        `yaml:"base_pitch"`
	LabelStyle     string     `yaml:"label_style"`
	Layout         [][]string `yaml:"layout"`
	FirstTrackOnly bool       `yaml:"first_track_only"`
	SkipPercussion bool       `yaml:"skip_percussion"`
	SkipEmpty      bool       `yaml:"skip_empty"`
	Quantize       bool       `yaml:"quantize"`
	LogLevel       string     `yaml:"log_level"`
}

func Default() Config {
	return Config{
		BaseKey:    planck.DefaultBase.String(),
		BasePitch:  planck.MiddleC,
		LabelStyle: planck.LabelLegend.String(),
		SkipEmpty:  true,
		LogLevel:   "info",
	}
}

// Load reads a YAML config on top of the defaults. A missing file is not an
// error.
func Load(filename string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Default(), fmt.Errorf("%s: %w", filename, err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	var errs error
	if _, err := c.Mapping(); err != nil {
		errs = errors.Join(errs, err)
	}
	if _, err := c.Style(); err != nil {
		errs = errors.Join(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

func (c Config) Mapping() (*planck.Mapping, error) {
	layout := planck.Default
	if len(c.Layout) > 0 {
		l, err := planck.NewLayout(c.Layout)
		if err != nil {
			return nil, err
		}
		layout = l
	}
	base, err := planck.ParsePosition(c.BaseKey)
	if err != nil {
		return nil, err
	}
	if c.BasePitch < 0 || c.BasePitch > 127 {
		return nil, fmt.Errorf("%w: base pitch %d", planck.ErrOutOfRange, c.BasePitch)
	}
	return planck.NewMapping(layout, base, uint8(c.BasePitch))
}

func (c Config) Style() (planck.LabelStyle, error) {
	return planck.ParseLabelStyle(c.LabelStyle)
}

func (c Config) Level() (charmlog.Level, error) {
	if c.LogLevel == "" {
		return charmlog.InfoLevel, nil
	}
	return charmlog.ParseLevel(c.LogLevel)
}

// Logger builds a component logger the way every part of the app logs.
func (c Config) Logger(prefix string) *charmlog.Logger {
	level, err := c.Level()
	if err != nil {
		level = charmlog.InfoLevel
	}
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportCaller:    level == charmlog.DebugLevel,
		ReportTimestamp: false,
		Prefix:          prefix,
	})
}
