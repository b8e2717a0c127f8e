package server

import (
	"context"
	"net/http"

	"github.com/bysecret/noteflux/sessions"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the resolved per-request session
const ContextKeySession ContextKey = "session"

// ResolveSessionMiddleware decodes the session cookie into the request
// context. A missing or tampered cookie resolves to a fresh anonymous
// session; handlers mutate the shared pointer and re-issue the cookie on
// every response.
func (s *Server) ResolveSessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := &sessions.Session{}
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			*session = s.codec.Decode(cookie.Value)
		}

		ctx := context.WithValue(r.Context(), ContextKeySession, session)
		next(w, r.WithContext(ctx))
	}
}

// RequireSite is the access gate for note routes: anonymous sessions are
// redirected to the login page with their (possibly newly minted) cookie
// attached, so a first-time visitor is never left without an identity.
func (s *Server) RequireSite() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session := s.sessionFromContext(r)
			if !session.SiteAuthed {
				s.redirectWithSession(w, r, "/", session)
				return
			}
			next(w, r)
		}
	}
}

// RequireAdmin is the access gate for the management panel. Admin access
// strictly implies site access: an unauthenticated session goes to the
// site login, a site-authed one to the admin login.
func (s *Server) RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session := s.sessionFromContext(r)
			if !session.SiteAuthed {
				s.redirectWithSession(w, r, "/", session)
				return
			}
			if !session.AdminAuthed {
				s.redirectWithSession(w, r, RouteAdminLogin, session)
				return
			}
			next(w, r)
		}
	}
}

func (s *Server) sessionFromContext(r *http.Request) *sessions.Session {
	if session, ok := r.Context().Value(ContextKeySession).(*sessions.Session); ok {
		return session
	}
	return &sessions.Session{}
}
