// Package config loads the application settings from a toml file.
package config

import (
	"os"

	"github.com/lonng/riichihand/internal/errutil"
	"github.com/lonng/riichihand/pkg/points"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const DefaultPath = "./configs/config.toml"

type Config struct {
	Core   CoreConfig   `mapstructure:"core"`
	Points PointsConfig `mapstructure:"points"`
	Render RenderConfig `mapstructure:"render"`
	Output OutputConfig `mapstructure:"output"`
}

type CoreConfig struct {
	Debug bool `mapstructure:"debug"`
}

type PointsConfig struct {
	Mode   string `mapstructure:"mode"`
	BigInt bool   `mapstructure:"bigint"`
}

type RenderConfig struct {
	// TileDir holds the tile images; empty uses generated placeholder tiles.
	TileDir    string  `mapstructure:"tile_dir"`
	TileHeight int     `mapstructure:"tile_height"`
	TileGap    float64 `mapstructure:"tile_gap"`
	GroupGap   float64 `mapstructure:"group_gap"`
	OutDir     string  `mapstructure:"out_dir"`
	Workers    int     `mapstructure:"workers"`
}

type OutputConfig struct {
	Locale string `mapstructure:"locale"`
	JSON   bool   `mapstructure:"json"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("core.debug", false)

	v.SetDefault("points.mode", "default")
	v.SetDefault("points.bigint", false)

	v.SetDefault("render.tile_dir", "")
	v.SetDefault("render.tile_height", 0)
	v.SetDefault("render.tile_gap", 0.0)
	v.SetDefault("render.group_gap", 0.3333)
	v.SetDefault("render.out_dir", ".")
	v.SetDefault("render.workers", 4)

	v.SetDefault("output.locale", "en")
	v.SetDefault("output.json", false)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c, err := decode(newViper())
	if err != nil {
		panic(err)
	}
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errutil.Mark(errors.Wrapf(err, "read config %s", path), errutil.ErrConfig)
			}
		} else if !os.IsNotExist(err) {
			return nil, errutil.Mark(errors.Wrapf(err, "stat config %s", path), errutil.ErrConfig)
		}
	}

	c, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, errutil.Mark(errors.Wrapf(err, "config %s", path), errutil.ErrConfig)
	}
	return c, nil
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errutil.Mark(errors.Wrap(err, "decode config"), errutil.ErrConfig)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := points.ParseCalculationMode(c.Points.Mode); err != nil {
		return err
	}
	if c.Render.TileHeight < 0 {
		return errors.Errorf("render.tile_height must not be negative: %d", c.Render.TileHeight)
	}
	if c.Render.TileGap < 0 || c.Render.GroupGap < 0 {
		return errors.Errorf("render gaps must not be negative: %v, %v", c.Render.TileGap, c.Render.GroupGap)
	}
	if _, err := language.Parse(c.Output.Locale); err != nil {
		return errors.Wrapf(err, "output.locale %q", c.Output.Locale)
	}
	return nil
}

// Mode returns the configured calculation mode.
func (c *Config) Mode() points.CalculationMode {
	m, _ := points.ParseCalculationMode(c.Points.Mode)
	return m
}

// Language returns the configured output locale, English when unset.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Output.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
