package notes

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/bysecret/noteflux/internal/errors"
)

const storeFileName = "store.json"

// FileRepo persists the document as a single pretty-printed JSON file.
// The mutex only guards the file and the cached copy; read-modify-write
// sequences across requests are not serialized, so concurrent writers can
// still lose updates (last writer wins).
type FileRepo struct {
	folder string
	path   string

	mu     sync.Mutex
	cached *Document // last known-good copy, source of truth when disk fails
}

// NewFileRepo creates a repo storing store.json under folder.
func NewFileRepo(folder string) *FileRepo {
	return &FileRepo{
		folder: folder,
		path:   filepath.Join(folder, storeFileName),
	}
}

// Ensure creates the data folder and seeds the default document when the
// store file does not exist yet.
func (r *FileRepo) Ensure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureLocked()
}

func (r *FileRepo) ensureLocked() error {
	if err := os.MkdirAll(r.folder, 0o755); err != nil {
		return errors.Wrapf(err, "create data folder %s", r.folder)
	}
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", r.path)
	}
	return r.writeLocked(DefaultDocument())
}

// Load reads the persisted document. Malformed content and I/O failures
// degrade to the cached copy, then to the hard-coded default; request
// handling never sees an error.
func (r *FileRepo) Load() Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLocked(); err != nil {
		log.Warn().Err(err).Msg("store: ensure failed, serving in-memory copy")
	}

	data, err := os.ReadFile(r.path)
	if err == nil {
		doc, derr := DecodeDocument(data)
		if derr == nil {
			r.cached = &doc
			return cloneDocument(doc)
		}
		log.Warn().Err(derr).Str("path", r.path).Msg("store: malformed document, serving in-memory copy")
	} else {
		log.Warn().Err(err).Str("path", r.path).Msg("store: read failed, serving in-memory copy")
	}

	if r.cached != nil {
		return cloneDocument(*r.cached)
	}
	doc := DefaultDocument()
	r.cached = &doc
	return cloneDocument(doc)
}

// cloneDocument copies the note slice so in-place edits on a loaded
// document cannot reach the cached copy before Save.
func cloneDocument(doc Document) Document {
	doc.Notes = append(make([]Note, 0, len(doc.Notes)), doc.Notes...)
	return doc
}

// Save normalizes and writes the whole document. A failed write is
// swallowed with a warning; the in-memory copy then serves subsequent
// loads for the remainder of the process lifetime.
func (r *FileRepo) Save(doc Document) Document {
	normalized := Normalize(doc)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.cached = &normalized
	if err := r.writeLocked(normalized); err != nil {
		log.Warn().Err(err).Msg("store: write failed, keeping in-memory copy")
	}
	return normalized
}

func (r *FileRepo) writeLocked(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode store document")
	}
	if err := os.MkdirAll(r.folder, 0o755); err != nil {
		return errors.Wrapf(err, "create data folder %s", r.folder)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", r.path)
	}
	return nil
}
