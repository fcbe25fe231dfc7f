// Package corpus answers listing and lookup queries over a directory of
// thread dumps. It combines a rush.FileIndexer for stable ordering with a
// rush.PostExtractor for content.
package corpus

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/vecna/rush"
	"golang.org/x/sync/errgroup"
)

// Ensure Accessor implements rush.CorpusService at compile time.
var _ rush.CorpusService = (*Accessor)(nil)

// DefaultConcurrency is the number of files processed at once when
// Accessor.Concurrency is not set.
const DefaultConcurrency = 10

// Accessor implements rush.CorpusService.
//
// ListWithContent reads files concurrently but always returns results in
// Indexer order. By default the first file that cannot be read fails the
// whole batch. With SkipFailed the file is left out instead, the remaining
// files keep their original Index, and OnSkip is told about it.
type Accessor struct {
	Indexer   rush.FileIndexer
	Files     rush.FileReader
	Extractor rush.PostExtractor

	Concurrency int
	Sanitize    bool
	SkipFailed  bool

	// OnSkip is called once per skipped file, in index order, after the
	// batch completes. Only used with SkipFailed.
	OnSkip func(name string, err error)
}

// ListWithContent reads and extracts every file in dir.
func (a *Accessor) ListWithContent(ctx context.Context, dir string) ([]*rush.CorpusFile, error) {
	names, err := a.Indexer.SortedNames(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*rush.CorpusFile, len(names))
	err = a.forEach(ctx, names, func(i int, name string) error {
		b, err := a.Files.ReadFile(dir, name)
		if err != nil {
			return err
		}
		posts := a.extract(b)
		results[i] = &rush.CorpusFile{
			Name:        name,
			Index:       i,
			Size:        int64(len(b)),
			Entries:     len(posts),
			ContentHash: ComputeHash(b),
			Posts:       posts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := make([]*rush.CorpusFile, 0, len(results))
	for _, f := range results {
		if f != nil {
			files = append(files, f)
		}
	}
	return files, nil
}

// Stats reports the size and position of every file in dir. Sizes and
// modification times are the ones the indexer ordered the files by, so the
// directory is inspected once and no file content is read.
func (a *Accessor) Stats(ctx context.Context, dir string) (*rush.CorpusStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := a.Indexer.Entries(dir)
	if err != nil {
		return nil, err
	}

	stats := &rush.CorpusStats{Files: make([]rush.FileStat, 0, len(entries))}
	h := xxhash.New()
	for i, entry := range entries {
		stats.TotalFiles++
		stats.TotalSize += entry.Size
		stats.Files = append(stats.Files, rush.FileStat{
			Name:  entry.Name,
			Size:  entry.Size,
			Index: i,
		})
		writeFingerprint(h, entry)
	}
	stats.Fingerprint = formatHash(h.Sum64())

	return stats, nil
}

// GetOne reads and extracts the file at index.
func (a *Accessor) GetOne(ctx context.Context, dir string, index int) (*rush.CorpusDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := a.Indexer.GetByIndex(dir, index)
	if err != nil {
		return nil, err
	}

	b, err := a.Files.ReadFile(dir, name)
	if err != nil {
		return nil, err
	}

	return &rush.CorpusDocument{
		Name:  name,
		Index: index,
		Posts: a.extract(b),
	}, nil
}

func (a *Accessor) extract(b []byte) []rush.Post {
	if a.Sanitize {
		return a.Extractor.ExtractSanitized(string(b))
	}
	return a.Extractor.Extract(string(b))
}

// forEach runs fn for every name with bounded concurrency and applies the
// per-file failure policy. fn must only write to its own index.
func (a *Accessor) forEach(ctx context.Context, names []string, fn func(i int, name string) error) error {
	failures := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := fn(i, name)
			if err != nil && a.SkipFailed {
				failures[i] = err
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if a.OnSkip != nil {
		for i, err := range failures {
			if err != nil {
				a.OnSkip(names[i], err)
			}
		}
	}
	return nil
}

func (a *Accessor) concurrency() int {
	if a.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return a.Concurrency
}
