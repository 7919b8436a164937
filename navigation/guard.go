package navigation

import (
	"github.com/darasa/darasa-go/core"
	"github.com/darasa/darasa-go/core/session"
)

const (
	forbiddenRoute = "/403"
	notFoundRoute  = "/404"

	msgLoginRequired = "please log in first"
	msgNoAccess      = "you do not have permission to access this page"
)

// SessionState is the slice of the session store the guard reads.
type SessionState interface {
	IsLoggedIn() bool
	Role() session.Role
	DefaultRoute() string
}

// Decision is the outcome of one guard run. The guard never errors:
// unauthorized and unauthenticated transitions become redirects.
type Decision struct {
	Allow      bool
	RedirectTo string
}

type Guard struct {
	session SessionState
	notify  core.Notifier
}

func NewGuard(sess SessionState, notify core.Notifier) *Guard {
	if notify == nil {
		notify = core.NopNotifier()
	}
	return &Guard{session: sess, notify: notify}
}

// Before gates one transition target before it is allowed to mount.
func (g *Guard) Before(m *Match) Decision {
	if m.RequiresAuth() {
		if !g.session.IsLoggedIn() {
			g.notify.Warn(msgLoginRequired)
			return Decision{RedirectTo: session.RouteLogin}
		}
		if role := m.RequiredRole(); role != "" && role != g.session.Role() {
			g.notify.Error(msgNoAccess)
			return Decision{RedirectTo: forbiddenRoute}
		}
		return Decision{Allow: true}
	}

	// a logged-in user has no business on the auth pages
	if g.session.IsLoggedIn() && isGuestOnly(m.Path) {
		return Decision{RedirectTo: g.session.DefaultRoute()}
	}
	return Decision{Allow: true}
}

func isGuestOnly(path string) bool {
	return path == session.RouteLogin || path == "/register"
}
