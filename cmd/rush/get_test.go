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

func getService(t *testing.T, wantIndex int, doc *rush.CorpusDocument, err error) *mock.CorpusService {
	t.Helper()
	return &mock.CorpusService{
		GetOneFn: func(_ context.Context, _ string, index int) (*rush.CorpusDocument, error) {
			assert.Equal(t, wantIndex, index)
			return doc, err
		},
	}
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	doc := &rush.CorpusDocument{
		Name:  "thread.html",
		Index: 2,
		Posts: []rush.Post{
			{Text: "Hello **world**", AuthorName: "alice", PostDate: "2020-01-01T00:00:00Z"},
			{Text: "reply"},
		},
	}

	t.Run("prints document as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Corpus: getService(t, 2, doc, nil),
		}

		err := (&main.GetCmd{Index: 2}).Run(deps)

		require.NoError(t, err)
		var got rush.CorpusDocument
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, *doc, got)
		assert.NotContains(t, stdout.String(), `"postDate": ""`)
	})

	t.Run("prints posts as markdown", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Corpus: getService(t, 2, doc, nil),
		}

		err := (&main.GetCmd{Index: 2, Markdown: true}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "# thread.html")
		assert.Contains(t, output, "## Post 1 by alice (2020-01-01T00:00:00Z)")
		assert.Contains(t, output, "Hello **world**")
		assert.Contains(t, output, "## Post 2")
	})

	t.Run("says so when document has no posts", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Corpus: getService(t, 0, &rush.CorpusDocument{Name: "empty.html", Posts: []rush.Post{}}, nil),
		}

		err := (&main.GetCmd{Index: 0, Markdown: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No posts found.")
	})

	t.Run("prints hint for out of range index", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Corpus: getService(t, 7, nil, rush.Errorf(rush.EOUTOFRANGE, "index 7 out of range [0, 3)")),
		}

		err := (&main.GetCmd{Index: 7}).Run(deps)

		assert.Equal(t, rush.EOUTOFRANGE, rush.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: index 7 out of range [0, 3)")
		assert.Contains(t, stderr.String(), "Hint:")
		assert.Empty(t, stdout.String())
	})

	t.Run("prints no hint for read failures", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Corpus: getService(t, 0, nil, rush.Errorf(rush.EUNREADABLE, "read thread.html")),
		}

		err := (&main.GetCmd{Index: 0}).Run(deps)

		assert.Equal(t, rush.EUNREADABLE, rush.ErrorCode(err))
		assert.NotContains(t, stderr.String(), "Hint:")
	})
}
