package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darasa/darasa-go/core/session"
	"github.com/darasa/darasa-go/navigation"
)

func TestRoute_Resolve(t *testing.T) {
	root := navigation.Routes()

	tests := []struct {
		path         string
		wantName     string
		wantAuth     bool
		wantRole     session.Role
		wantTitle    string
		wantRedirect string
	}{
		{path: "/login", wantName: "Login", wantTitle: "Sign In"},
		{path: "/register", wantName: "Register", wantTitle: "Sign Up"},
		{path: "/", wantRedirect: "/login"},
		{path: "/student/dashboard", wantName: "StudentDashboard", wantAuth: true, wantRole: session.RoleStudent, wantTitle: "Student Dashboard"},
		{path: "/student/courses/15", wantName: "StudentCourseDetail", wantAuth: true, wantRole: session.RoleStudent, wantTitle: "Course Detail"},
		{path: "/teacher/courses/create", wantName: "TeacherCreateCourse", wantAuth: true, wantRole: session.RoleTeacher, wantTitle: "Create Course"},
		{path: "/admin/users", wantName: "UserManagement", wantAuth: true, wantRole: session.RoleAdmin, wantTitle: "User Management"},
		{path: "/403", wantName: "Forbidden", wantTitle: "Forbidden"},
		{path: "/no/such/page", wantRedirect: "/404"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := root.Resolve(tt.path)
			if !assert.NotNil(t, m) {
				return
			}
			leaf := m.Leaf()
			assert.Equal(t, tt.wantName, leaf.Name)
			assert.Equal(t, tt.wantRedirect, leaf.Redirect)
			assert.Equal(t, tt.wantAuth, m.RequiresAuth(), "auth must be inherited from ancestors")
			assert.Equal(t, tt.wantRole, m.RequiredRole())
			assert.Equal(t, tt.wantTitle, m.Title())
		})
	}
}

func TestMatch_DeepestDeclarationWins(t *testing.T) {
	// a child may narrow the required role declared by its parent
	root := &navigation.Route{Children: []*navigation.Route{
		{Path: "portal", RequiresAuth: true, Role: session.RoleTeacher, Title: "Portal", Children: []*navigation.Route{
			{Path: "settings", Role: session.RoleAdmin, Title: "Settings"},
			{Path: "reports"},
		}},
	}}

	m := root.Resolve("/portal/settings")
	if assert.NotNil(t, m) {
		assert.Equal(t, session.RoleAdmin, m.RequiredRole())
		assert.Equal(t, "Settings", m.Title())
	}

	m = root.Resolve("/portal/reports")
	if assert.NotNil(t, m) {
		assert.True(t, m.RequiresAuth())
		assert.Equal(t, session.RoleTeacher, m.RequiredRole())
		// the title falls back to the nearest ancestor that declares one
		assert.Equal(t, "Portal", m.Title())
	}
}

func TestRoute_Resolve_NoMatch(t *testing.T) {
	// without a wildcard nothing matches stray paths
	root := &navigation.Route{Children: []*navigation.Route{{Path: "login"}}}
	assert.Nil(t, root.Resolve("/nope"))
}
