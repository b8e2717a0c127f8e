package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bysecret/noteflux/internal/errors"
	"github.com/bysecret/noteflux/notes"
)

// NoteView is a note prepared for page rendering
type NoteView struct {
	ID        string
	Title     string
	Content   string
	UpdatedAt string // display-formatted
}

// NotesPageData contains data for rendering the notes page
type NotesPageData struct {
	AppName string
	Notes   []NoteView
}

func noteViews(all []notes.Note) []NoteView {
	views := make([]NoteView, 0, len(all))
	for _, n := range all {
		views = append(views, NoteView{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			UpdatedAt: displayTime(n.UpdatedAt),
		})
	}
	return views
}

// NotesPageHandler lists all notes with inline edit forms (GET /notes)
func (s *Server) NotesPageHandler() http.HandlerFunc {
	notesTmpl, err := ParseTemplate("notes.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse notes template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		data := NotesPageData{
			AppName: s.config.GetAppName(),
			Notes:   noteViews(s.notes.Notes()),
		}

		s.setSessionCookie(w, r, session)
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := notesTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render notes template")
			http.Error(w, "Failed to render notes page", http.StatusInternalServerError)
		}
	}
}

// NoteNewRedirectHandler sends stray GETs on the creation endpoint back to
// the notes list (GET /notes/new)
func (s *Server) NoteNewRedirectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.redirectWithSession(w, r, RouteNotes, s.sessionFromContext(r))
	}
}

// NoteCreateHandler creates a note from the title field (POST /notes/new)
func (s *Server) NoteCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		s.notes.CreateNote(r.FormValue("title"))
		s.redirectWithSession(w, r, RouteNotes, session)
	}
}

// NoteSaveHandler updates a note's title and content (POST /notes/{id}/save).
// An unknown id is a silent no-op: the list redirect happens either way.
func (s *Server) NoteSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		id := r.PathValue("id")
		if err := s.notes.UpdateNote(id, r.FormValue("title"), r.FormValue("content")); errors.Is(err, errors.ErrNoteNotFound) {
			log.Debug().Str("note_id", id).Msg("save for unknown note id ignored")
		}

		s.redirectWithSession(w, r, RouteNotes, session)
	}
}
