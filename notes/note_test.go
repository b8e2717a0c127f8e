package notes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bysecret/noteflux/notes"
)

func TestDecodeDocument(t *testing.T) {
	t.Run("well-formed document", func(t *testing.T) {
		doc, err := notes.DecodeDocument([]byte(`{
			"sitePassword": "s3cret",
			"adminPassword": "adm1n",
			"notes": [{"id": "abc123abc123", "title": "First", "content": "hello", "updatedAt": "2025-01-02T15:04:05Z"}]
		}`))
		require.NoError(t, err)
		require.Equal(t, "s3cret", doc.SitePassword)
		require.Equal(t, "adm1n", doc.AdminPassword)
		require.Len(t, doc.Notes, 1)
		require.Equal(t, "abc123abc123", doc.Notes[0].ID)
		require.Equal(t, "First", doc.Notes[0].Title)
	})

	t.Run("non-object root yields defaults", func(t *testing.T) {
		for _, raw := range []string{`[]`, `"hello"`, `42`, `null`, `true`} {
			doc, err := notes.DecodeDocument([]byte(raw))
			require.NoError(t, err, raw)
			require.Equal(t, notes.DefaultDocument(), doc, raw)
		}
	})

	t.Run("undecodable input errors", func(t *testing.T) {
		_, err := notes.DecodeDocument([]byte(`{"sitePassword":`))
		require.Error(t, err)
	})

	t.Run("missing fields restored from defaults", func(t *testing.T) {
		doc, err := notes.DecodeDocument([]byte(`{}`))
		require.NoError(t, err)
		require.Equal(t, notes.DefaultSitePassword, doc.SitePassword)
		require.Equal(t, notes.DefaultAdminPassword, doc.AdminPassword)
		require.NotNil(t, doc.Notes)
		require.Empty(t, doc.Notes)
	})

	t.Run("wrong field types coerced", func(t *testing.T) {
		doc, err := notes.DecodeDocument([]byte(`{
			"sitePassword": 1234,
			"adminPassword": true,
			"notes": {"not": "a list"}
		}`))
		require.NoError(t, err)
		require.Equal(t, "1234", doc.SitePassword)
		require.Equal(t, "true", doc.AdminPassword)
		require.Empty(t, doc.Notes)
	})

	t.Run("non-object note entries discarded", func(t *testing.T) {
		doc, err := notes.DecodeDocument([]byte(`{
			"notes": ["junk", 7, null, {"title": "Survivor"}]
		}`))
		require.NoError(t, err)
		require.Len(t, doc.Notes, 1)
		require.Equal(t, "Survivor", doc.Notes[0].Title)
	})

	t.Run("note fields filled in", func(t *testing.T) {
		doc, err := notes.DecodeDocument([]byte(`{"notes": [{}]}`))
		require.NoError(t, err)
		require.Len(t, doc.Notes, 1)

		n := doc.Notes[0]
		require.Len(t, n.ID, 12)
		require.Regexp(t, "^[0-9a-f]{12}$", n.ID)
		require.Equal(t, notes.DefaultNoteTitle, n.Title)
		require.Empty(t, n.Content)
		require.NotEmpty(t, n.UpdatedAt)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("empty passwords restored", func(t *testing.T) {
		doc := notes.Normalize(notes.Document{})
		require.Equal(t, notes.DefaultSitePassword, doc.SitePassword)
		require.Equal(t, notes.DefaultAdminPassword, doc.AdminPassword)
		require.NotNil(t, doc.Notes)
	})

	t.Run("idempotent", func(t *testing.T) {
		doc := notes.Normalize(notes.Document{
			SitePassword: "pw",
			Notes:        []notes.Note{{Title: "kept"}},
		})
		require.Equal(t, doc, notes.Normalize(doc))
	})

	t.Run("existing note fields untouched", func(t *testing.T) {
		in := notes.Note{ID: "deadbeef0000", Title: "T", Content: "C", UpdatedAt: "2025-01-02T15:04:05Z"}
		doc := notes.Normalize(notes.Document{Notes: []notes.Note{in}})
		require.Equal(t, []notes.Note{in}, doc.Notes)
	})
}

func TestNewNoteID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := notes.NewNoteID()
		require.Regexp(t, "^[0-9a-f]{12}$", id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
