package notes_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bysecret/noteflux/notes"
)

func TestFileRepo_Load(t *testing.T) {
	t.Run("absent file creates and persists the default", func(t *testing.T) {
		folder := t.TempDir()
		repo := notes.NewFileRepo(folder)

		doc := repo.Load()
		require.Equal(t, notes.DefaultDocument(), doc)

		data, err := os.ReadFile(filepath.Join(folder, "store.json"))
		require.NoError(t, err)
		require.Contains(t, string(data), `"sitePassword": "1234"`)
	})

	t.Run("malformed file treated as absent", func(t *testing.T) {
		folder := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(folder, "store.json"), []byte("{{{not json"), 0o644))

		repo := notes.NewFileRepo(folder)
		doc := repo.Load()
		require.Equal(t, notes.DefaultDocument(), doc)
	})

	t.Run("corrupted fields substituted per field", func(t *testing.T) {
		folder := t.TempDir()
		raw := `{"sitePassword": 99, "adminPassword": null, "notes": [{"title": "a"}, "junk"]}`
		require.NoError(t, os.WriteFile(filepath.Join(folder, "store.json"), []byte(raw), 0o644))

		repo := notes.NewFileRepo(folder)
		doc := repo.Load()
		require.Equal(t, "99", doc.SitePassword)
		require.Equal(t, notes.DefaultAdminPassword, doc.AdminPassword)
		require.Len(t, doc.Notes, 1)
	})
}

func TestFileRepo_SaveLoadRoundTrip(t *testing.T) {
	folder := t.TempDir()
	repo := notes.NewFileRepo(folder)

	saved := repo.Save(notes.Document{
		SitePassword: "pw1",
		Notes:        []notes.Note{{Title: "  "}, {ID: "a1a1a1a1a1a1", Title: "Keep"}},
	})

	loaded := repo.Load()
	require.Equal(t, saved, loaded)

	// save(load()) is idempotent
	require.Equal(t, loaded, repo.Save(loaded))
	require.Equal(t, loaded, repo.Load())
}

func TestFileRepo_PrettyPrintedJSON(t *testing.T) {
	folder := t.TempDir()
	repo := notes.NewFileRepo(folder)
	repo.Save(notes.DefaultDocument())

	data, err := os.ReadFile(filepath.Join(folder, "store.json"))
	require.NoError(t, err)
	require.True(t, json.Valid(data))
	require.Contains(t, string(data), "\n  \"sitePassword\"")
}

func TestFileRepo_CachedCopyIsolatedFromCallers(t *testing.T) {
	folder := t.TempDir()
	repo := notes.NewFileRepo(folder)
	repo.Save(notes.Document{Notes: []notes.Note{{ID: "c3c3c3c3c3c3", Title: "Original"}}})

	loaded := repo.Load()
	loaded.Notes[0].Title = "Mutated"

	// Corrupt the file so the next load serves the cached copy; the
	// in-place edit above must not have reached it
	require.NoError(t, os.WriteFile(filepath.Join(folder, "store.json"), []byte("{{{not json"), 0o644))
	require.Equal(t, "Original", repo.Load().Notes[0].Title)
}

func TestFileRepo_DegradesToMemoryOnWriteFailure(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	folder := t.TempDir()
	repo := notes.NewFileRepo(folder)
	repo.Load() // seed the file and the cache

	// Make the folder unwritable so the next save fails on disk
	require.NoError(t, os.Remove(filepath.Join(folder, "store.json")))
	require.NoError(t, os.Chmod(folder, 0o555))
	t.Cleanup(func() { _ = os.Chmod(folder, 0o755) })

	doc := notes.DefaultDocument()
	doc.Notes = append(doc.Notes, notes.Note{ID: "b2b2b2b2b2b2", Title: "In memory only"})
	repo.Save(doc)

	// The in-memory copy is now the source of truth
	loaded := repo.Load()
	require.Len(t, loaded.Notes, 1)
	require.Equal(t, "In memory only", loaded.Notes[0].Title)
}
