package mock

import (
	"context"

	"github.com/vecna/rush"
)

var _ rush.FileIndexer = (*FileIndexer)(nil)

// FileIndexer is a mock implementation of rush.FileIndexer.
type FileIndexer struct {
	SortedNamesFn func(dir string) ([]string, error)
	GetByIndexFn  func(dir string, n int) (string, error)
	EntriesFn     func(dir string) ([]rush.FileEntry, error)
}

func (i *FileIndexer) SortedNames(dir string) ([]string, error) {
	return i.SortedNamesFn(dir)
}

func (i *FileIndexer) GetByIndex(dir string, n int) (string, error) {
	return i.GetByIndexFn(dir, n)
}

func (i *FileIndexer) Entries(dir string) ([]rush.FileEntry, error) {
	return i.EntriesFn(dir)
}

var _ rush.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of rush.FileReader.
type FileReader struct {
	ReadFileFn func(dir, name string) ([]byte, error)
}

func (r *FileReader) ReadFile(dir, name string) ([]byte, error) {
	return r.ReadFileFn(dir, name)
}

var _ rush.CorpusService = (*CorpusService)(nil)

// CorpusService is a mock implementation of rush.CorpusService.
type CorpusService struct {
	ListWithContentFn func(ctx context.Context, dir string) ([]*rush.CorpusFile, error)
	StatsFn           func(ctx context.Context, dir string) (*rush.CorpusStats, error)
	GetOneFn          func(ctx context.Context, dir string, index int) (*rush.CorpusDocument, error)
}

func (s *CorpusService) ListWithContent(ctx context.Context, dir string) ([]*rush.CorpusFile, error) {
	return s.ListWithContentFn(ctx, dir)
}

func (s *CorpusService) Stats(ctx context.Context, dir string) (*rush.CorpusStats, error) {
	return s.StatsFn(ctx, dir)
}

func (s *CorpusService) GetOne(ctx context.Context, dir string, index int) (*rush.CorpusDocument, error) {
	return s.GetOneFn(ctx, dir, index)
}
