package rush

import (
	"context"
	"time"
)

// FileEntry describes one file of a corpus directory.
type FileEntry struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// FileIndexer assigns every file in a directory a stable integer position.
type FileIndexer interface {
	// SortedNames returns the file names in dir ordered by modification
	// time, oldest first. Files with equal modification times keep their
	// directory-listing order. Returns EUNREADABLE if the directory or any
	// entry's metadata cannot be read; no partial result is returned.
	SortedNames(dir string) ([]string, error)

	// GetByIndex returns SortedNames(dir)[n].
	// Returns EOUTOFRANGE if n < 0 or n >= the number of files.
	GetByIndex(dir string, n int) (string, error)

	// Entries returns the files of dir with the size and modification time
	// that determined their order. Same ordering and errors as SortedNames.
	Entries(dir string) ([]FileEntry, error)
}

// FileReader reads individual corpus files.
type FileReader interface {
	// ReadFile returns the raw bytes of the named file in dir.
	// Returns EUNREADABLE if the file cannot be read.
	ReadFile(dir, name string) ([]byte, error)
}

// CorpusFile is one file of a corpus together with its extracted posts.
type CorpusFile struct {
	Name        string `json:"name"`
	Index       int    `json:"index"`
	Size        int64  `json:"size"`
	Entries     int    `json:"entries"`
	ContentHash string `json:"contentHash"`
	Posts       []Post `json:"posts"`
}

// FileStat is the size and position of one corpus file.
type FileStat struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Index int    `json:"index"`
}

// CorpusStats aggregates the sizes of every file in a corpus.
type CorpusStats struct {
	TotalFiles int   `json:"totalFiles"`
	TotalSize  int64 `json:"totalSize"`

	// Fingerprint changes whenever a file is added, removed, renamed,
	// resized or touched. Consumers paging through the corpus can compare
	// it between calls to detect that positions may have shifted.
	Fingerprint string `json:"fingerprint"`

	Files []FileStat `json:"files"`
}

// CorpusDocument is a single corpus file resolved by its index.
type CorpusDocument struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
	Posts []Post `json:"posts"`
}

// CorpusService answers queries over a directory of thread dumps.
// Every result is ordered by FileIndexer.SortedNames.
type CorpusService interface {
	// ListWithContent reads and extracts every file in dir.
	ListWithContent(ctx context.Context, dir string) ([]*CorpusFile, error)

	// Stats reports file sizes without reading file contents.
	// An empty directory yields zero totals and an empty file list.
	Stats(ctx context.Context, dir string) (*CorpusStats, error)

	// GetOne reads and extracts the file at index.
	// Returns EOUTOFRANGE if index is outside [0, number of files).
	GetOne(ctx context.Context, dir string, index int) (*CorpusDocument, error)
}
