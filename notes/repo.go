package notes

// Repo is the storage contract for the NoteFlux document. Durability is
// best effort: implementations never fail a request over storage I/O, they
// degrade to the last known-good in-memory copy instead.
type Repo interface {
	// Load returns the persisted document in canonical shape, creating it
	// with the defaults when absent.
	Load() Document

	// Save normalizes the document and overwrites the previous content,
	// returning the document as written.
	Save(doc Document) Document
}
