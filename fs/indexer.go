// Package fs provides the local-filesystem view of a corpus directory.
package fs

import (
	"os"
	"slices"

	"github.com/vecna/rush"
)

// Ensure Indexer implements rush.FileIndexer at compile time.
var _ rush.FileIndexer = (*Indexer)(nil)

// Indexer orders the files of a directory oldest-modified first.
// The order is recomputed on every call and reflects the directory at
// call time; nothing is persisted.
type Indexer struct{}

// NewIndexer creates a new Indexer.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// SortedNames returns the names of the files in dir, oldest first.
// Subdirectories are skipped. Ties keep the lexical order of os.ReadDir.
func (ix *Indexer) SortedNames(dir string) ([]string, error) {
	entries, err := ix.Entries(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// GetByIndex returns the name at position n of SortedNames(dir).
func (ix *Indexer) GetByIndex(dir string, n int) (string, error) {
	names, err := ix.SortedNames(dir)
	if err != nil {
		return "", err
	}
	if err := checkIndex(n, len(names)); err != nil {
		return "", err
	}
	return names[n], nil
}

// Entries returns the files of dir with their metadata in SortedNames order.
// Fails with EUNREADABLE if the directory or any entry cannot be inspected.
func (ix *Indexer) Entries(dir string) ([]rush.FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, rush.Wrapf(err, rush.EUNREADABLE, "cannot read directory %q", dir)
	}

	entries := make([]rush.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}

		// Info can fail if the file vanished after the listing.
		info, err := de.Info()
		if err != nil {
			return nil, rush.Wrapf(err, rush.EUNREADABLE, "cannot stat %q in %q", de.Name(), dir)
		}

		entries = append(entries, rush.FileEntry{
			Name:       de.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	slices.SortStableFunc(entries, func(a, b rush.FileEntry) int {
		return a.ModifiedAt.Compare(b.ModifiedAt)
	})

	return entries, nil
}

// checkIndex returns EOUTOFRANGE unless 0 <= n < length.
func checkIndex(n, length int) error {
	if length == 0 {
		return rush.Errorf(rush.EOUTOFRANGE, "index %d out of range: corpus is empty", n)
	}
	if n < 0 || n >= length {
		return rush.Errorf(rush.EOUTOFRANGE, "index %d out of range [0, %d)", n, length)
	}
	return nil
}
