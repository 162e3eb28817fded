// Package config loads the body and leg dimensions of the robot from a file
// and the environment.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/craab/hexapod/components/legs"
)

// EnvPrefix is prepended to every environment variable which can override a
// setting, e.g. CRAAB_BODY_LENGTH.
const EnvPrefix = "CRAAB"

var log = logrus.WithFields(logrus.Fields{
	"pkg": "config",
})

// Body holds the dimensions used to derive the leg mounts.
type Body struct {
	Length     float64 `mapstructure:"length"`
	Width      float64 `mapstructure:"width"`
	HeadWidth  float64 `mapstructure:"head_width"`
	MountAngle float64 `mapstructure:"mount_angle"`
}

// Leg holds the dimensions shared by every leg.
type Leg struct {
	Segment1Length     float64 `mapstructure:"segment1_length"`
	Segment2Length     float64 `mapstructure:"segment2_length"`
	Segment3Length     float64 `mapstructure:"segment3_length"`
	MaxVerticalAngle   float64 `mapstructure:"max_vertical_angle"`
	MaxHorizontalAngle float64 `mapstructure:"max_horizontal_angle"`
}

type Config struct {
	Body     Body   `mapstructure:"body"`
	Leg      Leg    `mapstructure:"leg"`
	LogLevel string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("body.length", 93.301)
	v.SetDefault("body.width", 100.0)
	v.SetDefault("body.head_width", 75.0)
	v.SetDefault("body.mount_angle", 30.0)

	v.SetDefault("leg.segment1_length", 10.0)
	v.SetDefault("leg.segment2_length", 10.0)
	v.SetDefault("leg.segment3_length", 10.0)
	v.SetDefault("leg.max_vertical_angle", 90.0)
	v.SetDefault("leg.max_horizontal_angle", 90.0)

	v.SetDefault("log_level", "info")
}

// Default returns the configuration of the stock robot.
func Default() Config {
	c, err := Load("")
	if err != nil {
		panic(err)
	}

	return c
}

// Load reads the configuration from the file at path (YAML, JSON or TOML,
// chosen by extension), falling back to the defaults for anything missing.
// Environment variables override both. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config from %s", path)
		}

		log.Infof("loaded config from %s", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	return c, nil
}

// LegParameters returns the template which every leg is built from. The mount
// pose is left at identity; the robot derives them from the body.
func (c Config) LegParameters() legs.LegParameters {
	return legs.LegParameters{
		Segment1Length:     c.Leg.Segment1Length,
		Segment2Length:     c.Leg.Segment2Length,
		Segment3Length:     c.Leg.Segment3Length,
		MaxVerticalAngle:   c.Leg.MaxVerticalAngle,
		MaxHorizontalAngle: c.Leg.MaxHorizontalAngle,
	}
}

// NewRobot builds a robot from the configuration, with its legs mounted
// around the body.
func (c Config) NewRobot() *legs.Robot {
	r := legs.NewRobot(c.LegParameters())
	r.InitializeLegMounts(c.Body.Length, c.Body.Width, c.Body.HeadWidth, c.Body.MountAngle)
	return r
}

// Level parses the configured log level.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, errors.Wrap(err, "parsing log level")
	}

	return lvl, nil
}
