package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - Login & Logout
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	// Note Routes
	RouteNotes    = "/notes"
	RouteNoteNew  = "/notes/new"
	RouteNoteSave = "/notes/{id}/save"

	// Admin Routes
	RouteAdmin                = "/admin"
	RouteAdminLogin           = "/admin/login"
	RouteAdminLogout          = "/admin/logout"
	RouteAdminDelete          = "/admin/delete/{id}"
	RouteAdminChangeSitePass  = "/admin/change-site-password"
	RouteAdminChangeAdminPass = "/admin/change-admin-password"

	// Static Asset Routes
	RouteStaticStylesheet = "/static/style.css"
)
