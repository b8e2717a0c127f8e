package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   bool
}

// LoginPageHandler displays the site login page (GET /)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl, err := ParseTemplate("login.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse login template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		// Already site-authed visitors go straight to their notes
		if session.SiteAuthed {
			s.redirectWithSession(w, r, RouteNotes, session)
			return
		}

		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error") != "",
		}

		s.setSessionCookie(w, r, session)
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := loginTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render login template")
			http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		}
	}
}

// LoginSubmissionHandler processes the site login form submission
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		if s.notes.CheckSitePassword(r.FormValue("password")) {
			session.SiteAuthed = true
			s.redirectWithSession(w, r, RouteNotes, session)
			return
		}

		// Wrong password: back to the form with an inline error flag
		s.redirectWithSession(w, r, "/?error=1", session)
	}
}

// LogoutHandler clears both authentication flags and returns to the login page
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)
		session.Reset()
		s.redirectWithSession(w, r, "/", session)
	}
}

// NotFoundHandler handles 404 errors
func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 - Page not found", http.StatusNotFound)
	}
}

// renderServerError writes the generic 500 page used by the recovery
// middleware. Nothing about the failure is leaked to the client.
func (s *Server) renderServerError(w http.ResponseWriter) {
	tmpl, err := ParseTemplate("error.html")
	if err != nil {
		http.Error(w, "Temporary error. Refresh the page and try again.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusInternalServerError)
	_ = tmpl.Execute(w, map[string]interface{}{
		"AppName": s.config.GetAppName(),
	})
}

// displayTime formats a stored timestamp for page display, falling back
// to the current time when the stored value does not parse. Besides
// RFC 3339, older stores carry offset-less microsecond timestamps, so
// that layout is accepted too.
func displayTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05.999999", value)
	}
	if err != nil {
		t = time.Now()
	}
	return t.Local().Format("02.01.2006 15:04:05")
}
