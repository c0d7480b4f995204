// Package constants defines application-wide constant values.
package constants

const (
	// DashboardPageSize is the fixed number of complaints shown per
	// dashboard page.
	DashboardPageSize = 6

	// DefaultPage is the first (1-indexed) page.
	DefaultPage = 1

	// MaxAttachmentSize is the upper bound for uploaded attachment blobs.
	MaxAttachmentSize = 5 << 20 // 5 MiB

	// SessionCookieName is the cookie carrying the admin session token.
	SessionCookieName = "admin_session"

	// DashboardRoute is the single route pattern protected by the
	// session gate.
	DashboardRoute = "/admin/dashboard"

	// PublicEntryRoute is where denied requests are redirected.
	PublicEntryRoute = "/"

	// ContextKeyAdminUser carries the authenticated admin username
	// through the request context.
	ContextKeyAdminUser = "admin_user"
)
