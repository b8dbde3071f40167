package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "library_data.json"))
}

func sampleBooks() []model.Book {
	return []model.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: model.StatusAvailable},
		{ID: 2, Title: "Мастер и Маргарита", Author: "Михаил Булгаков", Year: 1967, Status: model.StatusIssued},
		{ID: 3, Title: "Solaris", Author: "Stanisław Lem", Year: 1961, Status: model.StatusAvailable},
	}
}

func TestLoad(t *testing.T) {
	t.Run("nonexistent file yields empty collection, no error", func(t *testing.T) {
		s := testStorage(t)

		books, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("unparseable file yields empty collection, no error", func(t *testing.T) {
		s := testStorage(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte("{{{ not json"), 0644))

		books, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("JSON object instead of array is treated as unparseable", func(t *testing.T) {
		s := testStorage(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte(`{"id": 1}`), 0644))

		books, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("unrecognized status in a valid array fails hard", func(t *testing.T) {
		s := testStorage(t)
		doc := `[{"id": 1, "title": "T", "author": "A", "year": 2000, "status": "lost"}]`
		require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0644))

		_, err := s.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unrecognized status")
	})

	t.Run("record missing a key fails hard", func(t *testing.T) {
		s := testStorage(t)
		doc := `[{"id": 1, "title": "T", "year": 2000, "status": "в наличии"}]`
		require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0644))

		_, err := s.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "author")
	})
}

func TestSave(t *testing.T) {
	t.Run("round trip preserves every field", func(t *testing.T) {
		s := testStorage(t)
		books := sampleBooks()

		require.NoError(t, s.Save(books))

		loaded, err := s.Load()
		require.NoError(t, err)
		if diff := cmp.Diff(books, loaded); diff != "" {
			t.Fatalf("round trip mismatch (-saved +loaded):\n%s", diff)
		}
	})

	t.Run("empty collection writes an empty array", func(t *testing.T) {
		s := testStorage(t)

		require.NoError(t, s.Save(nil))

		data, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		assert.Equal(t, "[]", strings.TrimSpace(string(data)))

		books, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("output is indented and keeps non-ASCII literal", func(t *testing.T) {
		s := testStorage(t)
		require.NoError(t, s.Save(sampleBooks()[:1]))

		data, err := os.ReadFile(s.Path())
		require.NoError(t, err)

		text := string(data)
		assert.Contains(t, text, "\n    {")
		assert.Contains(t, text, `"status": "в наличии"`)
		assert.NotContains(t, text, `\u`)
	})

	t.Run("save overwrites the previous contents entirely", func(t *testing.T) {
		s := testStorage(t)
		require.NoError(t, s.Save(sampleBooks()))
		require.NoError(t, s.Save(sampleBooks()[:1]))

		loaded, err := s.Load()
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "Dune", loaded[0].Title)
	})
}
