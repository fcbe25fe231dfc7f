package inmem_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecna/rush"
	"github.com/vecna/rush/inmem"
)

// Ensure Cache implements rush.ContentCache at compile time.
var _ rush.ContentCache = (*inmem.Cache)(nil)

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing for unknown content", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()

		posts, ok := cache.Get("<div class=\"post\"></div>")

		assert.False(t, ok)
		assert.Nil(t, posts)
	})

	t.Run("returns stored posts for identical content", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()
		posts := []rush.Post{{Text: "hello", AuthorName: "alice"}}

		cache.Set("<html>thread</html>", posts)
		got, ok := cache.Get("<html>thread</html>")

		require.True(t, ok)
		assert.Equal(t, posts, got)
	})

	t.Run("addresses entries by content not by source", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()
		content := "<html>same bytes</html>"
		// Two different files with byte-identical content.
		fromA := string([]byte(content))
		fromB := string([]byte(content))

		cache.Set(fromA, []rush.Post{{Text: "shared"}})
		got, ok := cache.Get(fromB)

		require.True(t, ok)
		assert.Equal(t, "shared", got[0].Text)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("distinguishes content differing by one byte", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()
		cache.Set("<p>a</p>", []rush.Post{{Text: "a"}})

		_, ok := cache.Get("<p>b</p>")

		assert.False(t, ok)
	})

	t.Run("overwrites existing entry", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()
		cache.Set("doc", []rush.Post{{Text: "old"}})
		cache.Set("doc", []rush.Post{{Text: "new"}})

		got, ok := cache.Get("doc")

		require.True(t, ok)
		assert.Equal(t, "new", got[0].Text)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("caches documents without posts", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()
		cache.Set("<html></html>", []rush.Post{})

		got, ok := cache.Get("<html></html>")

		assert.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("isolates cached posts from caller mutation", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()
		posts := []rush.Post{{Text: "original"}}
		cache.Set("doc", posts)

		posts[0].Text = "mutated after set"
		got, _ := cache.Get("doc")
		got[0].Text = "mutated after get"
		again, _ := cache.Get("doc")

		assert.Equal(t, "original", again[0].Text)
	})
}

func TestCache_WithMaxEntries(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently used entry", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache(inmem.WithMaxEntries(2))
		cache.Set("a", []rush.Post{{Text: "a"}})
		cache.Set("b", []rush.Post{{Text: "b"}})

		// Touch "a" so "b" becomes the oldest.
		_, _ = cache.Get("a")
		cache.Set("c", []rush.Post{{Text: "c"}})

		_, okA := cache.Get("a")
		_, okB := cache.Get("b")
		_, okC := cache.Get("c")
		assert.True(t, okA)
		assert.False(t, okB)
		assert.True(t, okC)
		assert.Equal(t, 2, cache.Len())
	})

	t.Run("zero means unbounded", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache(inmem.WithMaxEntries(0))
		for i := range 100 {
			cache.Set(fmt.Sprintf("doc-%d", i), nil)
		}

		assert.Equal(t, 100, cache.Len())
	})
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	cache := inmem.NewCache()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			content := fmt.Sprintf("doc-%d", i%5)
			cache.Set(content, []rush.Post{{Text: content}})
			got, ok := cache.Get(content)
			if assert.True(t, ok) {
				assert.Equal(t, content, got[0].Text)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Len())
}

func TestKey(t *testing.T) {
	t.Parallel()

	t.Run("is a 256-bit hex digest", func(t *testing.T) {
		t.Parallel()

		key := inmem.Key("hello")

		assert.Len(t, key, 64)
		assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", key)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, inmem.Key("<html></html>"), inmem.Key("<html></html>"))
	})
}
