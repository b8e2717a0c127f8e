package repofakes

import (
	"sync"

	"github.com/bysecret/noteflux/notes"
)

// FakeRepo is an in-memory implementation of notes.Repo for tests.
type FakeRepo struct {
	mu        sync.Mutex
	doc       notes.Document
	SaveCount int
}

// NewFakeRepo creates a fake repo seeded with the default document.
func NewFakeRepo() *FakeRepo {
	return &FakeRepo{doc: notes.DefaultDocument()}
}

// SetDocument replaces the stored document, normalizing it first.
func (r *FakeRepo) SetDocument(doc notes.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = notes.Normalize(doc)
}

// Load returns the stored document.
func (r *FakeRepo) Load() notes.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc
}

// Save normalizes and stores the document.
func (r *FakeRepo) Save(doc notes.Document) notes.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = notes.Normalize(doc)
	r.SaveCount++
	return r.doc
}
