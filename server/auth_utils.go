package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bysecret/noteflux/sessions"
)

// sessionCookieName is the name of the signed stateless session cookie
const sessionCookieName = "sid"

// setSessionCookie re-issues the signed session cookie. Every response
// that renders a page or redirects attaches it, sliding the session
// forward rather than ever expiring it.
func (s *Server) setSessionCookie(w http.ResponseWriter, r *http.Request, session *sessions.Session) {
	value, err := s.codec.Encode(*session)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

// redirectWithSession attaches the session cookie and redirects.
func (s *Server) redirectWithSession(w http.ResponseWriter, r *http.Request, path string, session *sessions.Session) {
	s.setSessionCookie(w, r, session)
	http.Redirect(w, r, path, http.StatusSeeOther)
}
