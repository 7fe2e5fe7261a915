// Package paths names every page route so handlers and guards redirect consistently.
package paths

const (
	Register  = "/register"
	Login     = "/login"
	Logout    = "/logout"
	Dashboard = "/dashboard"

	AdminCities   = "/admin/cities"
	AdminAreas    = "/admin/areas"
	AdminNotFound = "/admin/404"

	UserIndex    = "/user"
	UserNotFound = "/user/404"
)
