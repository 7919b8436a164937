// Package navigation gates every route transition against the current
// session. Policies are declared once on a static route tree; a node's
// effective policy is resolved by walking its ancestor chain, and views
// never re-check access themselves.
package navigation

import (
	"strings"

	"github.com/darasa/darasa-go/core/session"
)

// Route is one node of the navigable tree. Policies are static; they are
// read on every transition and never mutated at runtime.
type Route struct {
	// Path is this node's own segment(s), eg. "login" or "courses/:courseId".
	// "" matches the root, "*" matches anything left over.
	Path         string
	Name         string
	Title        string
	RequiresAuth bool
	Role         session.Role // empty = any authenticated role
	Redirect     string       // absolute target; terminal when set
	Children     []*Route
}

// Match is a resolved transition target: the leaf plus all its ancestors.
type Match struct {
	Path  string
	Chain []*Route
}

func (m *Match) Leaf() *Route { return m.Chain[len(m.Chain)-1] }

// RequiresAuth holds when the leaf or any ancestor declares it.
func (m *Match) RequiresAuth() bool {
	for _, rt := range m.Chain {
		if rt.RequiresAuth {
			return true
		}
	}
	return false
}

// RequiredRole is the deepest role declared along the chain.
func (m *Match) RequiredRole() session.Role {
	for i := len(m.Chain) - 1; i >= 0; i-- {
		if m.Chain[i].Role != "" {
			return m.Chain[i].Role
		}
	}
	return ""
}

// Title is the deepest title declared along the chain.
func (m *Match) Title() string {
	for i := len(m.Chain) - 1; i >= 0; i-- {
		if m.Chain[i].Title != "" {
			return m.Chain[i].Title
		}
	}
	return ""
}

// Resolve matches path against the tree rooted at r, ancestors included.
// It returns nil when nothing matches, including the wildcard.
func (r *Route) Resolve(path string) *Match {
	segs := splitPath(path)
	chain := matchRoutes(r.Children, segs, nil)
	if chain == nil {
		return nil
	}
	return &Match{Path: "/" + strings.Join(segs, "/"), Chain: chain}
}

func matchRoutes(routes []*Route, segs []string, chain []*Route) []*Route {
	for _, rt := range routes {
		if rt.Path == "*" {
			return appendChain(chain, rt)
		}
		own := splitPath(rt.Path)
		if len(segs) < len(own) {
			continue
		}
		matched := true
		for i, seg := range own {
			if seg != segs[i] && !strings.HasPrefix(seg, ":") {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		rest := segs[len(own):]
		next := appendChain(chain, rt)
		if len(rest) == 0 {
			return next
		}
		if found := matchRoutes(rt.Children, rest, next); found != nil {
			return found
		}
	}
	return nil
}

func appendChain(chain []*Route, rt *Route) []*Route {
	next := make([]*Route, 0, len(chain)+1)
	next = append(next, chain...)
	return append(next, rt)
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Routes builds the platform's navigable tree: public auth pages, one
// role-gated subtree per portal, and the error pages.
func Routes() *Route {
	return &Route{
		Children: []*Route{
			{Path: "", Redirect: session.RouteLogin},
			{Path: "login", Name: "Login", Title: "Sign In"},
			{Path: "register", Name: "Register", Title: "Sign Up"},

			{Path: "student", RequiresAuth: true, Role: session.RoleStudent, Children: []*Route{
				{Path: "dashboard", Name: "StudentDashboard", Title: "Student Dashboard"},
				{Path: "courses", Name: "StudentCourses", Title: "My Courses"},
				{Path: "courses/:courseId", Name: "StudentCourseDetail", Title: "Course Detail"},
				{Path: "ai-assistant", Name: "StudentAIAssistant", Title: "AI Study Assistant"},
				{Path: "exams", Name: "StudentExams", Title: "My Exams"},
				{Path: "grades", Name: "StudentGrades", Title: "My Grades"},
				{Path: "notifications", Name: "StudentNotifications", Title: "Notifications"},
				{Path: "learning-path", Name: "StudentLearningPath", Title: "Learning Path"},
				{Path: "knowledge-graph", Name: "StudentKnowledgeGraph", Title: "Knowledge Graph"},
				{Path: "profile", Name: "StudentProfile", Title: "My Profile"},
			}},

			{Path: "teacher", RequiresAuth: true, Role: session.RoleTeacher, Children: []*Route{
				{Path: "dashboard", Name: "TeacherDashboard", Title: "Teacher Dashboard"},
				{Path: "courses", Name: "TeacherCourses", Title: "Course Management"},
				{Path: "courses/create", Name: "TeacherCreateCourse", Title: "Create Course"},
				{Path: "courses/:courseId", Name: "TeacherCourseDetail", Title: "Course Detail"},
				{Path: "knowledge", Name: "TeacherKnowledgeManagement", Title: "Knowledge Points"},
				{Path: "analytics", Name: "TeacherAnalytics", Title: "Teaching Analytics"},
				{Path: "exams", Name: "TeacherExams", Title: "Exam Management"},
				{Path: "grades", Name: "TeacherGrades", Title: "Grade Management"},
				{Path: "notifications", Name: "TeacherNotifications", Title: "Notifications"},
				{Path: "profile", Name: "TeacherProfile", Title: "My Profile"},
			}},

			{Path: "admin", RequiresAuth: true, Role: session.RoleAdmin, Children: []*Route{
				{Path: "dashboard", Name: "AdminDashboard", Title: "Admin Dashboard"},
				{Path: "users", Name: "UserManagement", Title: "User Management"},
				{Path: "courses", Name: "AdminCourses", Title: "Course Management"},
				{Path: "analytics", Name: "AdminAnalytics", Title: "Platform Analytics"},
				{Path: "exams", Name: "AdminExams", Title: "Exam Management"},
				{Path: "grades", Name: "AdminGrades", Title: "Grade Management"},
				{Path: "questions", Name: "AdminQuestions", Title: "Question Bank"},
				{Path: "notifications", Name: "AdminNotifications", Title: "Notification Management"},
				{Path: "profile", Name: "AdminProfile", Title: "My Profile"},
			}},

			{Path: "403", Name: "Forbidden", Title: "Forbidden"},
			{Path: "404", Name: "NotFound", Title: "Page Not Found"},
			{Path: "*", Redirect: "/404"},
		},
	}
}
