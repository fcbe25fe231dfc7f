package main

import (
	"os"

	"github.com/vecna/rush"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration file schema.
type FileConfig struct {
	Dir         string `yaml:"dir"`
	Concurrency int    `yaml:"concurrency"`
	SkipFailed  bool   `yaml:"skipFailed"`
	CacheSize   int    `yaml:"cacheSize"`
	BaseURL     string `yaml:"baseURL"`
	Sanitize    bool   `yaml:"sanitize"`
	LogLevel    string `yaml:"logLevel"`
	MetricsFile string `yaml:"metricsFile"`
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, rush.Wrapf(err, rush.EUNREADABLE, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, rush.Wrapf(err, rush.EINVALID, "parse yaml")
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cli for every field still at its
// zero or default value, so explicit flags and environment variables win.
func ApplyFileConfig(cli *CLI, fc FileConfig) {
	const (
		dirDefault         = "./arildata"
		concurrencyDefault = 10
		logLevelDefault    = "warn"
	)

	if (cli.Dir == "" || cli.Dir == dirDefault) && fc.Dir != "" {
		cli.Dir = fc.Dir
	}
	if (cli.Concurrency == 0 || cli.Concurrency == concurrencyDefault) && fc.Concurrency > 0 {
		cli.Concurrency = fc.Concurrency
	}
	if !cli.SkipFailed && fc.SkipFailed {
		cli.SkipFailed = true
	}
	if cli.CacheSize == 0 && fc.CacheSize > 0 {
		cli.CacheSize = fc.CacheSize
	}
	if cli.BaseURL == "" && fc.BaseURL != "" {
		cli.BaseURL = fc.BaseURL
	}
	if !cli.Sanitize && fc.Sanitize {
		cli.Sanitize = true
	}
	if (cli.LogLevel == "" || cli.LogLevel == logLevelDefault) && fc.LogLevel != "" {
		cli.LogLevel = fc.LogLevel
	}
	if cli.MetricsFile == "" && fc.MetricsFile != "" {
		cli.MetricsFile = fc.MetricsFile
	}
}
