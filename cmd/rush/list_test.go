package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecna/rush"
	main "github.com/vecna/rush/cmd/rush"
	"github.com/vecna/rush/mock"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints files with posts as JSON", func(t *testing.T) {
		t.Parallel()

		var gotDir string
		svc := &mock.CorpusService{
			ListWithContentFn: func(_ context.Context, dir string) ([]*rush.CorpusFile, error) {
				gotDir = dir
				return []*rush.CorpusFile{
					{Name: "t1.html", Index: 0, Size: 10, Entries: 1, ContentHash: "abc", Posts: []rush.Post{{Text: "hi", AuthorName: "alice"}}},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Dir:    "/data",
			Corpus: svc,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/data", gotDir)
		var files []rush.CorpusFile
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &files))
		require.Len(t, files, 1)
		assert.Equal(t, "t1.html", files[0].Name)
		assert.Equal(t, 1, files[0].Entries)
		assert.Equal(t, "alice", files[0].Posts[0].AuthorName)
		assert.Empty(t, stderr.String())
	})

	t.Run("prints empty JSON array for empty corpus", func(t *testing.T) {
		t.Parallel()

		svc := &mock.CorpusService{
			ListWithContentFn: func(_ context.Context, _ string) ([]*rush.CorpusFile, error) {
				return []*rush.CorpusFile{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Corpus: svc,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", stdout.String())
	})

	t.Run("returns error when listing fails", func(t *testing.T) {
		t.Parallel()

		svc := &mock.CorpusService{
			ListWithContentFn: func(_ context.Context, dir string) ([]*rush.CorpusFile, error) {
				return nil, rush.Errorf(rush.EUNREADABLE, "read directory %s", dir)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Dir:    "/missing",
			Corpus: svc,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: read directory /missing")
		assert.Empty(t, stdout.String())
	})
}
