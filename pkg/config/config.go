// Package config layers runtime configuration: defaults, then an
// optional YAML config file, then STPARSE_* environment variables, then
// command-line flags. Later layers win.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config is the resolved runtime configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Parse  ParseConfig  `mapstructure:"parse"`
	Server ServerConfig `mapstructure:"server"`
}

type OutputConfig struct {
	// Format is "csv" or "json".
	Format string `mapstructure:"format"`
	// Dir is where processed files are written; empty means next to
	// the input file.
	Dir string `mapstructure:"dir"`
}

type ParseConfig struct {
	Normalize   bool `mapstructure:"normalize"`
	Deduplicate bool `mapstructure:"deduplicate"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// Build loads configuration. cfgFile may be empty, in which case
// config.yaml in the working directory is used when present. flags, if
// non-nil, override file and environment values for the keys they
// define.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// .env is a convenience for local runs; absence is not an error.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.dir", "")
	v.SetDefault("parse.normalize", true)
	v.SetDefault("parse.deduplicate", true)
	v.SetDefault("server.port", "3000")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("STPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for flagName, key := range map[string]string{
			"format":      "output.format",
			"output":      "output.dir",
			"normalize":   "parse.normalize",
			"deduplicate": "parse.deduplicate",
			"port":        "server.port",
		} {
			f := flags.Lookup(flagName)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
