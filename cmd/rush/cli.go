package main

import (
	"context"
	"io"

	"github.com/vecna/rush"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
	Corpus rush.CorpusService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string `help:"YAML configuration file" env:"RUSH_CONFIG"`
	Dir         string `short:"d" default:"./arildata" env:"RUSH_DATA_PATH" help:"Directory of saved thread pages"`
	Concurrency int    `short:"c" default:"10" env:"RUSH_CONCURRENCY" help:"Files processed at once"`
	SkipFailed  bool   `env:"RUSH_SKIP_FAILED" help:"Leave out unreadable files instead of failing"`
	CacheSize   int    `default:"0" env:"RUSH_CACHE_SIZE" help:"Max cached documents (0 = unbounded)"`
	BaseURL     string `env:"RUSH_BASE_URL" help:"Resolve relative links in posts against this URL"`
	Sanitize    bool   `env:"RUSH_SANITIZE" help:"Replace inline base64 images in post text"`
	LogLevel    string `default:"warn" enum:"debug,info,warn,error" env:"RUSH_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	MetricsFile string `env:"RUSH_METRICS_FILE" help:"Write cache metrics in Prometheus text format to this file"`

	List  ListCmd  `cmd:"" help:"List every file with its extracted posts"`
	Stats StatsCmd `cmd:"" help:"Show file sizes and positions"`
	Get   GetCmd   `cmd:"" help:"Show the posts of one file by position"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Human bool `short:"H" help:"Print a readable table instead of JSON"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Index    int  `arg:"" help:"File position, 0 is the oldest file"`
	Markdown bool `short:"m" help:"Print posts as markdown instead of JSON"`
}
