package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/darasa/darasa-go/core/session"
	"github.com/darasa/darasa-go/transport"
)

// UserService wraps the admin-side /users endpoints.
type UserService struct {
	c *transport.Client
}

func NewUserService(c *transport.Client) *UserService { return &UserService{c: c} }

func (s *UserService) List(ctx context.Context, params url.Values) ([]session.User, error) {
	var users []session.User
	if err := s.c.Get(ctx, "/users", params, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*session.User, error) {
	var usr session.User
	if err := s.c.Get(ctx, "/users/"+itoa(id), nil, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

// NewUser is the admin user-creation payload.
type NewUser struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	FullName string       `json:"fullName"`
	Role     session.Role `json:"role"`
}

func (s *UserService) Create(ctx context.Context, nu NewUser) (*session.User, error) {
	var usr session.User
	if err := s.c.Post(ctx, "/users", nu, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

// UserUpdate carries the editable fields; empty ones are left untouched.
type UserUpdate struct {
	Email    string       `json:"email,omitempty"`
	FullName string       `json:"fullName,omitempty"`
	Role     session.Role `json:"role,omitempty"`
}

func (s *UserService) Update(ctx context.Context, id int64, uu UserUpdate) (*session.User, error) {
	var usr session.User
	if err := s.c.Put(ctx, "/users/"+itoa(id), uu, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/users/"+itoa(id), nil, nil)
}

func (s *UserService) BatchDelete(ctx context.Context, userIDs []int64) error {
	req := &transport.Request{
		Method: http.MethodDelete,
		Path:   "/users/batch",
		Body:   map[string]interface{}{"userIds": userIDs},
	}
	_, err := s.c.Do(ctx, req, nil)
	return err
}

func (s *UserService) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	body := map[string]string{"newPassword": newPassword}
	return s.c.Post(ctx, "/users/"+itoa(id)+"/reset-password", body, nil)
}

func (s *UserService) Activate(ctx context.Context, id int64) error {
	return s.c.Post(ctx, "/users/"+itoa(id)+"/activate", nil, nil)
}

func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	return s.c.Post(ctx, "/users/"+itoa(id)+"/deactivate", nil, nil)
}

func (s *UserService) BatchActivate(ctx context.Context, userIDs []int64) error {
	body := map[string]interface{}{"userIds": userIDs}
	return s.c.Post(ctx, "/users/batch/activate", body, nil)
}

func (s *UserService) BatchDeactivate(ctx context.Context, userIDs []int64) error {
	body := map[string]interface{}{"userIds": userIDs}
	return s.c.Post(ctx, "/users/batch/deactivate", body, nil)
}

func (s *UserService) Statistics(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := s.c.Get(ctx, "/users/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
