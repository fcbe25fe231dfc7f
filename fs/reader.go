package fs

import (
	"os"
	"path/filepath"

	"github.com/vecna/rush"
)

// Ensure Reader implements rush.FileReader at compile time.
var _ rush.FileReader = (*Reader)(nil)

// Reader reads single files of a corpus directory.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the contents of dir/name.
func (r *Reader) ReadFile(dir, name string) ([]byte, error) {
	path, err := joinName(dir, name)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, rush.Wrapf(err, rush.EUNREADABLE, "cannot read %q", path)
	}
	return b, nil
}

// joinName joins a bare file name onto dir. Names that would escape dir
// are rejected.
func joinName(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", rush.Errorf(rush.EINVALID, "invalid file name %q", name)
	}
	return filepath.Join(dir, name), nil
}
