package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// AdminLoginPageData contains data for rendering the admin login page
type AdminLoginPageData struct {
	AppName string
	Error   bool
}

// AdminPageData contains data for rendering the management panel
type AdminPageData struct {
	AppName string
	Notes   []NoteView
}

// AdminLoginPageHandler displays the admin login page (GET /admin/login)
func (s *Server) AdminLoginPageHandler() http.HandlerFunc {
	adminLoginTmpl, err := ParseTemplate("admin_login.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse admin login template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		// Already admin-authed visitors go straight to the panel
		if session.AdminAuthed {
			s.redirectWithSession(w, r, RouteAdmin, session)
			return
		}

		data := AdminLoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error") != "",
		}

		s.setSessionCookie(w, r, session)
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := adminLoginTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render admin login template")
			http.Error(w, "Failed to render admin login page", http.StatusInternalServerError)
		}
	}
}

// AdminLoginSubmissionHandler processes the admin login form (POST /admin/login)
func (s *Server) AdminLoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		if s.notes.CheckAdminPassword(r.FormValue("password")) {
			session.AdminAuthed = true
			s.redirectWithSession(w, r, RouteAdmin, session)
			return
		}

		s.redirectWithSession(w, r, RouteAdminLogin+"?error=1", session)
	}
}

// AdminLogoutHandler clears the admin flag only; site access remains
func (s *Server) AdminLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)
		session.AdminAuthed = false
		s.redirectWithSession(w, r, RouteAdminLogin, session)
	}
}

// AdminPageHandler renders the management panel: all notes with delete
// controls plus both password-change forms (GET /admin)
func (s *Server) AdminPageHandler() http.HandlerFunc {
	adminTmpl, err := ParseTemplate("admin.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse admin template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		data := AdminPageData{
			AppName: s.config.GetAppName(),
			Notes:   noteViews(s.notes.Notes()),
		}

		s.setSessionCookie(w, r, session)
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := adminTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render admin template")
			http.Error(w, "Failed to render admin page", http.StatusInternalServerError)
		}
	}
}

// AdminDeleteHandler deletes a note by id (POST /admin/delete/{id})
func (s *Server) AdminDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)
		s.notes.DeleteNote(r.PathValue("id"))
		s.redirectWithSession(w, r, RouteAdmin, session)
	}
}

// AdminChangeSitePasswordHandler rotates the site password
// (POST /admin/change-site-password). Empty submissions are ignored.
func (s *Server) AdminChangeSitePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		s.notes.SetSitePassword(r.FormValue("newPassword"))
		s.redirectWithSession(w, r, RouteAdmin, session)
	}
}

// AdminChangeAdminPasswordHandler rotates the admin password
// (POST /admin/change-admin-password). Empty submissions are ignored.
func (s *Server) AdminChangeAdminPasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessionFromContext(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		s.notes.SetAdminPassword(r.FormValue("newPassword"))
		s.redirectWithSession(w, r, RouteAdmin, session)
	}
}
