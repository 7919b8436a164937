package session

import "github.com/darasa/darasa-go/core"

// Role is the single role a platform account holds.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Default dashboard per role; anything else lands on the login page.
const (
	RouteLogin            = "/login"
	RouteStudentDashboard = "/student/dashboard"
	RouteTeacherDashboard = "/teacher/dashboard"
	RouteAdminDashboard   = "/admin/dashboard"
)

// User is the profile the backend returns for an authenticated account.
// Field names follow the platform API's JSON.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Username = core.CleanString(c.Username, true /* lower */)
	return core.TranslateValidationError(core.Validate.Struct(c))
}

// Registration is the sign-up payload.
type Registration struct {
	Username        string `json:"username" validate:"required,min=3,alphanum_"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	PasswordConfirm string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FullName        string `json:"fullName" validate:"required"`
	Role            Role   `json:"role" validate:"omitempty,oneof=STUDENT TEACHER ADMIN"`
}

func (r *Registration) Validate() error {
	r.Username = core.CleanString(r.Username, true /* lower */)
	r.Email = core.CleanString(r.Email, true /* lower */)
	r.FullName = core.CleanString(r.FullName)
	return core.TranslateValidationError(core.Validate.Struct(r))
}

// ProfileUpdate carries the partial fields of a profile edit; empty fields
// are left untouched server-side.
type ProfileUpdate struct {
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (p *ProfileUpdate) Validate() error {
	p.Email = core.CleanString(p.Email, true /* lower */)
	p.FullName = core.CleanString(p.FullName)
	return core.TranslateValidationError(core.Validate.Struct(p))
}

// PasswordChange is the change-password payload.
type PasswordChange struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	PasswordConfirm string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (p *PasswordChange) Validate() error {
	return core.TranslateValidationError(core.Validate.Struct(p))
}

// LoginResult is what the backend answers a successful login with.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
