package notes

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bysecret/noteflux/internal/errors"
)

// Default credentials seeded into a fresh store. These are deliberately
// weak shared secrets; admins rotate them from the management panel.
const (
	DefaultSitePassword  = "1234"
	DefaultAdminPassword = "admin123"

	// DefaultNoteTitle is the placeholder used when a note is created or
	// saved with an empty title.
	DefaultNoteTitle = "Untitled note"

	noteIDBytes = 6
)

// Note is a single note in the store. The ID is assigned at creation and
// never changes.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt"`
}

// Document is the whole persisted store: both shared passwords plus the
// full note list. It is read and written as one JSON object.
type Document struct {
	SitePassword  string `json:"sitePassword"`
	AdminPassword string `json:"adminPassword"`
	Notes         []Note `json:"notes"`
}

// DefaultDocument returns the document a fresh deployment starts with.
func DefaultDocument() Document {
	return Document{
		SitePassword:  DefaultSitePassword,
		AdminPassword: DefaultAdminPassword,
		Notes:         make([]Note, 0),
	}
}

// NewNoteID returns a fresh random 12-hex-character note identifier.
func NewNoteID() string {
	b := make([]byte, noteIDBytes)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Normalize coerces an already-typed document into the canonical shape:
// empty passwords fall back to the defaults, a nil note list becomes an
// empty one, and every note gets an id, a title and a timestamp.
func Normalize(doc Document) Document {
	out := DefaultDocument()
	if doc.SitePassword != "" {
		out.SitePassword = doc.SitePassword
	}
	if doc.AdminPassword != "" {
		out.AdminPassword = doc.AdminPassword
	}
	for _, n := range doc.Notes {
		out.Notes = append(out.Notes, fillNote(n))
	}
	return out
}

// DecodeDocument parses untrusted persisted JSON into a canonical
// Document. Any decodable value is accepted: a non-object root yields the
// defaults, wrong field types are coerced to strings, non-object note
// entries are dropped. Only undecodable input returns an error, which
// callers treat the same as an absent file.
func DecodeDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Document{}, errors.Wrapf(err, "decode store document")
	}
	return normalizeValue(raw), nil
}

func normalizeValue(v any) Document {
	doc := DefaultDocument()
	obj, ok := v.(map[string]any)
	if !ok {
		return doc
	}
	if pw := coerceString(obj["sitePassword"]); pw != "" {
		doc.SitePassword = pw
	}
	if pw := coerceString(obj["adminPassword"]); pw != "" {
		doc.AdminPassword = pw
	}
	rawNotes, _ := obj["notes"].([]any)
	for _, entry := range rawNotes {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		doc.Notes = append(doc.Notes, fillNote(Note{
			ID:        coerceString(m["id"]),
			Title:     coerceString(m["title"]),
			Content:   coerceString(m["content"]),
			UpdatedAt: coerceString(m["updatedAt"]),
		}))
	}
	return doc
}

func fillNote(n Note) Note {
	if n.ID == "" {
		n.ID = NewNoteID()
	}
	if n.Title == "" {
		n.Title = DefaultNoteTitle
	}
	if n.UpdatedAt == "" {
		n.UpdatedAt = time.Now().Format(time.RFC3339)
	}
	return n
}

// coerceString renders any decoded JSON value as a string. Scalars keep
// their JSON text; composite values are re-encoded.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
