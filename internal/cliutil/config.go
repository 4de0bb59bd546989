package cliutil

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is wireconfctl's optional on-disk configuration file
// (~/.wireconfctl.yaml by default): which demo classes the build,
// reverse, roundtrip, and validate subcommands resolve against, and
// default logging behavior.
type Config struct {
	Log struct {
		Enabled bool   `yaml:"enabled"`
		File    string `yaml:"file"`
	} `yaml:"log"`
	Classes []string `yaml:"classes"`
}

// LoadConfig reads and parses a YAML config file. A missing file is not
// an error; it yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
