package navigation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darasa/darasa-go/core/session"
	"github.com/darasa/darasa-go/navigation"
	"github.com/darasa/darasa-go/services/notifysvc"
)

type fakeSession struct {
	loggedIn bool
	role     session.Role
}

func (f fakeSession) IsLoggedIn() bool   { return f.loggedIn }
func (f fakeSession) Role() session.Role { return f.role }

func (f fakeSession) DefaultRoute() string {
	switch f.role {
	case session.RoleAdmin:
		return session.RouteAdminDashboard
	case session.RoleTeacher:
		return session.RouteTeacherDashboard
	case session.RoleStudent:
		return session.RouteStudentDashboard
	}
	return session.RouteLogin
}

type recordTitler struct {
	mu     sync.Mutex
	titles []string
}

func (r *recordTitler) SetTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
}

func (r *recordTitler) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.titles) == 0 {
		return ""
	}
	return r.titles[len(r.titles)-1]
}

func newRouter(sess navigation.SessionState, notify *notifysvc.Memory, titler *recordTitler) *navigation.Router {
	guard := navigation.NewGuard(sess, notify)
	opts := []navigation.RouterOption{}
	if titler != nil {
		opts = append(opts, navigation.WithTitler(titler))
	}
	return navigation.NewRouter(navigation.Routes(), guard, "Darasa", opts...)
}

func TestRouter_Push(t *testing.T) {
	tests := []struct {
		name        string
		sess        fakeSession
		path        string
		wantCurrent string
		wantNotify  string // level of the single expected notification, "" for none
	}{
		{
			name:        "guest on a protected page lands on login",
			path:        "/student/dashboard",
			wantCurrent: "/login",
			wantNotify:  "warn",
		},
		{
			name:        "student on an admin page is forbidden",
			sess:        fakeSession{loggedIn: true, role: session.RoleStudent},
			path:        "/admin/dashboard",
			wantCurrent: "/403",
			wantNotify:  "error",
		},
		{
			name:        "teacher on the login page is sent home",
			sess:        fakeSession{loggedIn: true, role: session.RoleTeacher},
			path:        "/login",
			wantCurrent: "/teacher/dashboard",
		},
		{
			name:        "student reaches a student page",
			sess:        fakeSession{loggedIn: true, role: session.RoleStudent},
			path:        "/student/courses/15",
			wantCurrent: "/student/courses/15",
		},
		{
			name:        "root redirects a guest to login",
			path:        "/",
			wantCurrent: "/login",
		},
		{
			name:        "unknown path lands on the not-found page",
			sess:        fakeSession{loggedIn: true, role: session.RoleStudent},
			path:        "/there/is/no/such/page",
			wantCurrent: "/404",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notify := notifysvc.NewMemory()
			router := newRouter(tt.sess, notify, nil)

			router.Push(tt.path)
			assert.Equal(t, tt.wantCurrent, router.Current())

			msgs := notify.Messages()
			if tt.wantNotify == "" {
				assert.Empty(t, msgs)
			} else if assert.Len(t, msgs, 1) {
				assert.Equal(t, tt.wantNotify, msgs[0].Level)
			}
		})
	}
}

func TestRouter_Titles(t *testing.T) {
	titler := new(recordTitler)
	sess := fakeSession{loggedIn: true, role: session.RoleTeacher}
	router := newRouter(sess, notifysvc.NewMemory(), titler)

	router.Push("/teacher/dashboard")
	assert.Equal(t, "Teacher Dashboard - Darasa", titler.last())

	router.Push("/there/is/no/such/page")
	assert.Equal(t, "Page Not Found - Darasa", titler.last())
}

func TestRouter_RedirectLoopTerminates(t *testing.T) {
	root := &navigation.Route{Children: []*navigation.Route{
		{Path: "a", Redirect: "/b"},
		{Path: "b", Redirect: "/a"},
	}}
	guard := navigation.NewGuard(fakeSession{}, notifysvc.NewMemory())
	router := navigation.NewRouter(root, guard, "Darasa")

	// must give up instead of spinning forever
	router.Push("/a")
	assert.Empty(t, router.Current())
}

func TestGuard_Before(t *testing.T) {
	protected := &navigation.Route{Path: "reports", RequiresAuth: true}
	m := &navigation.Match{Path: "/reports", Chain: []*navigation.Route{protected}}

	t.Run("any authenticated role passes when none is required", func(t *testing.T) {
		guard := navigation.NewGuard(fakeSession{loggedIn: true, role: session.RoleStudent}, nil)
		decision := guard.Before(m)
		assert.True(t, decision.Allow)
	})

	t.Run("guests are redirected to login", func(t *testing.T) {
		guard := navigation.NewGuard(fakeSession{}, nil)
		decision := guard.Before(m)
		assert.False(t, decision.Allow)
		assert.Equal(t, session.RouteLogin, decision.RedirectTo)
	})
}
