package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vecna/rush"
	"github.com/vecna/rush/corpus"
	"github.com/vecna/rush/fs"
	"github.com/vecna/rush/goquery"
	"github.com/vecna/rush/htmltomarkdown"
	"github.com/vecna/rush/inmem"
	rushprom "github.com/vecna/rush/prometheus"
	rushslog "github.com/vecna/rush/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Corpus replaces the service built from flags. Set before calling Run().
	Corpus rush.CorpusService

	// Registry collects cache metrics. Created by Run() when nil.
	Registry *prometheus.Registry
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rush"),
		kong.Description("Query a directory of saved forum threads."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rush --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		fc, err := LoadConfigFile(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Check the YAML syntax of %s\n", cli.Config)
			return fmt.Errorf("failed to load config: %w", err)
		}
		ApplyFileConfig(cli, fc)
	}

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}

	if m.Registry == nil {
		m.Registry = prometheus.NewRegistry()
	}

	deps.Dir = cli.Dir
	deps.Corpus = m.Corpus
	if deps.Corpus == nil {
		deps.Corpus, err = newAccessor(cli, logger, m.Registry)
		if err != nil {
			return err
		}
	}

	runErr := kongCtx.Run(deps)

	if cli.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cli.MetricsFile, m.Registry); err != nil {
			logger.Error("write metrics", "path", cli.MetricsFile, "err", err)
		}
	}

	return runErr
}

// newAccessor wires the corpus service from configuration.
func newAccessor(cli *CLI, logger *slog.Logger, reg prometheus.Registerer) (*corpus.Accessor, error) {
	cache, err := rushprom.NewCache(inmem.NewCache(inmem.WithMaxEntries(cli.CacheSize)), reg)
	if err != nil {
		return nil, err
	}

	converter := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.BaseURL))
	extractor := goquery.NewPostExtractor(converter,
		goquery.WithCache(rushslog.NewLoggingCache(cache, logger)),
	)

	return &corpus.Accessor{
		Indexer:     rushslog.NewLoggingIndexer(fs.NewIndexer(), logger),
		Files:       fs.NewReader(),
		Extractor:   rushslog.NewLoggingExtractor(extractor, logger),
		Concurrency: cli.Concurrency,
		Sanitize:    cli.Sanitize,
		SkipFailed:  cli.SkipFailed,
		OnSkip: func(name string, err error) {
			logger.Warn("skipped file", "name", name, "err", err)
		},
	}, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, rush.Errorf(rush.EINVALID, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
