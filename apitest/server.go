// Package apitest runs an in-process fake of the platform API for tests.
// It seeds one account, honors bearer auth, and exposes knobs to force the
// failure modes the pipeline has to classify.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darasa/darasa-go/core/session"
)

const prefix = "/api/v1"

type Server struct {
	srv *httptest.Server

	mu sync.Mutex

	// seeded account
	User     session.User
	Password string
	Token    string

	// knobs
	ForceStatus     int           // non-zero: every request fails with this HTTP status
	BusinessCode    int           // non-zero: every request answers 200 with this envelope code
	BusinessMessage string        // message accompanying BusinessCode
	Delay           time.Duration // per-request sleep, for timeout tests

	// captured from the last request
	LastAuthHeader string
	LastRequestID  string
}

func New() *Server {
	s := &Server{
		User: session.User{
			ID:       1,
			Username: "jelani",
			FullName: "Jelani Mwangi",
			Email:    "jelani@darasa.app",
			Role:     session.RoleTeacher,
		},
		Password: "s3cret",
		Token:    "tok-abc123",
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(s.capture)

	g := e.Group(prefix)
	g.POST("/auth/login", s.login)
	g.POST("/auth/register", s.register)
	g.GET("/auth/health", s.health)

	authed := g.Group("", s.requireAuth)
	authed.GET("/auth/me", s.me)
	authed.PUT("/auth/me", s.updateMe)
	authed.POST("/auth/change-password", s.changePassword)
	authed.POST("/auth/logout", s.logout)
	authed.GET("/auth/login-devices", s.loginDevices)
	authed.GET("/courses", s.courses)
	authed.GET("/notifications", s.notifications)
	authed.GET("/notifications/summary", s.notificationSummary)
	authed.POST("/resources/upload", s.upload)
	authed.GET("/resources/download/:id", s.download)

	s.srv = httptest.NewServer(e)
	return s
}

// URL is the API base, prefix included.
func (s *Server) URL() string { return s.srv.URL + prefix }

func (s *Server) Close() { s.srv.Close() }

// capture records request metadata and applies the failure knobs before any
// handler runs.
func (s *Server) capture(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.LastAuthHeader = c.Request().Header.Get("Authorization")
		s.LastRequestID = c.Request().Header.Get("X-Request-ID")
		forced, bizCode, bizMsg, delay := s.ForceStatus, s.BusinessCode, s.BusinessMessage, s.Delay
		s.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		if forced != 0 {
			return c.JSON(forced, echo.Map{"message": http.StatusText(forced)})
		}
		if bizCode != 0 {
			return c.JSON(http.StatusOK, echo.Map{"code": bizCode, "message": bizMsg})
		}
		return next(c)
	}
}

func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		want := "Bearer " + s.Token
		s.mu.Unlock()
		if c.Request().Header.Get("Authorization") != want {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid or expired token"})
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad request"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if creds.Username != s.User.Username || creds.Password != s.Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "bad credentials"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": s.Token, "user": s.User})
}

func (s *Server) register(c echo.Context) error {
	var reg session.Registration
	if err := c.Bind(&reg); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad request"})
	}
	usr := session.User{
		ID:       2,
		Username: reg.Username,
		FullName: reg.FullName,
		Email:    reg.Email,
		Role:     reg.Role,
	}
	if usr.Role == "" {
		usr.Role = session.RoleStudent
	}
	return c.JSON(http.StatusCreated, usr)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "UP"})
}

func (s *Server) me(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.User)
}

func (s *Server) updateMe(c echo.Context) error {
	var upd session.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad request"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if upd.FullName != "" {
		s.User.FullName = upd.FullName
	}
	if upd.Email != "" {
		s.User.Email = upd.Email
	}
	if upd.AvatarURL != "" {
		s.User.AvatarURL = upd.AvatarURL
	}
	return c.JSON(http.StatusOK, s.User)
}

func (s *Server) changePassword(c echo.Context) error {
	var pc session.PasswordChange
	if err := c.Bind(&pc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad request"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if pc.OldPassword != s.Password {
		// application-level rejection inside an HTTP 200
		return c.JSON(http.StatusOK, echo.Map{"code": 4001, "message": "old password does not match"})
	}
	s.Password = pc.NewPassword
	return c.JSON(http.StatusOK, echo.Map{"code": 200, "message": "ok"})
}

func (s *Server) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{})
}

func (s *Server) loginDevices(c echo.Context) error {
	return c.JSON(http.StatusOK, []echo.Map{
		{"deviceId": "dev-1", "deviceName": "Chrome on Linux", "current": true},
		{"deviceId": "dev-2", "deviceName": "Android App", "current": false},
	})
}

func (s *Server) courses(c echo.Context) error {
	return c.JSON(http.StatusOK, []echo.Map{
		{"id": 10, "title": "Linear Algebra", "teacherId": 1, "teacherName": "Jelani Mwangi", "studentCount": 32},
		{"id": 11, "title": "Intro to Statistics", "teacherId": 1, "teacherName": "Jelani Mwangi", "studentCount": 54},
	})
}

func (s *Server) notifications(c echo.Context) error {
	return c.JSON(http.StatusOK, []echo.Map{
		{"id": 1, "title": "Exam graded", "read": false},
		{"id": 2, "title": "New course resource", "read": true},
	})
}

func (s *Server) notificationSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"total": 2, "unread": 1})
}

func (s *Server) upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file missing"})
	}
	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "open failed"})
	}
	defer src.Close()
	size, _ := io.Copy(io.Discard, src)
	courseID, _ := strconv.ParseInt(c.FormValue("courseId"), 10, 64)
	return c.JSON(http.StatusOK, echo.Map{
		"id":       100,
		"name":     file.Filename,
		"size":     size,
		"courseId": courseID,
	})
}

func (s *Server) download(c echo.Context) error {
	c.Response().Header().Set("Content-Disposition", `attachment; filename="syllabus.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", []byte("%PDF-1.4 fake"))
}
