package server

func (s *Server) initRoutes() {
	// LOGIN
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware(s.RequireSite())...))

	// Note routes (require site access)
	s.RegisterRouteHandler("GET "+RouteNotes, ChainMiddleware(s.NotesPageHandler(), s.HTMLMiddleware(s.RequireSite())...))
	s.RegisterRouteHandler("GET "+RouteNoteNew, ChainMiddleware(s.NoteNewRedirectHandler(), s.HTMLMiddleware(s.RequireSite())...))
	s.RegisterRouteHandler("POST "+RouteNoteNew, ChainMiddleware(s.NoteCreateHandler(), s.HTMLMiddleware(s.RequireSite())...))
	s.RegisterRouteHandler("POST "+RouteNoteSave, ChainMiddleware(s.NoteSaveHandler(), s.HTMLMiddleware(s.RequireSite())...))

	// Admin login routes (require site access; admin implies site)
	s.RegisterRouteHandler("GET "+RouteAdminLogin, ChainMiddleware(s.AdminLoginPageHandler(), s.HTMLMiddleware(s.RequireSite())...))
	s.RegisterRouteHandler("POST "+RouteAdminLogin, ChainMiddleware(s.AdminLoginSubmissionHandler(), s.HTMLMiddleware(s.RequireSite())...))
	s.RegisterRouteHandler("POST "+RouteAdminLogout, ChainMiddleware(s.AdminLogoutHandler(), s.HTMLMiddleware(s.RequireSite())...))

	// Admin panel routes (require admin access)
	s.RegisterRouteHandler("GET "+RouteAdmin, ChainMiddleware(s.AdminPageHandler(), s.HTMLMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("POST "+RouteAdminDelete, ChainMiddleware(s.AdminDeleteHandler(), s.HTMLMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("POST "+RouteAdminChangeSitePass, ChainMiddleware(s.AdminChangeSitePasswordHandler(), s.HTMLMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("POST "+RouteAdminChangeAdminPass, ChainMiddleware(s.AdminChangeAdminPasswordHandler(), s.HTMLMiddleware(s.RequireAdmin())...))

	// Static assets
	s.RegisterRouteFunc("GET "+RouteStaticStylesheet, s.StylesheetHandler())

	// Everything else is a 404
	s.RegisterRouteFunc("/", s.NotFoundHandler())
}
