package api

import (
	"context"

	"github.com/darasa/darasa-go/core/session"
	"github.com/darasa/darasa-go/transport"
)

// AuthService wraps the /auth endpoints; it is the session store's
// authentication collaborator.
type AuthService struct {
	c *transport.Client
}

var _ session.AuthAPI = (*AuthService)(nil)

func NewAuthService(c *transport.Client) *AuthService { return &AuthService{c: c} }

func (s *AuthService) Login(ctx context.Context, creds session.Credentials) (*session.LoginResult, error) {
	var res session.LoginResult
	if err := s.c.Post(ctx, "/auth/login", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *AuthService) Register(ctx context.Context, reg session.Registration) (*session.User, error) {
	var usr session.User
	if err := s.c.Post(ctx, "/auth/register", reg, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *AuthService) Me(ctx context.Context) (*session.User, error) {
	var usr session.User
	if err := s.c.Get(ctx, "/auth/me", nil, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *AuthService) UpdateMe(ctx context.Context, upd session.ProfileUpdate) (*session.User, error) {
	var usr session.User
	if err := s.c.Put(ctx, "/auth/me", upd, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, pc session.PasswordChange) error {
	return s.c.Post(ctx, "/auth/change-password", pc, nil)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.Post(ctx, "/auth/logout", nil, nil)
}

// Device is one active login session on another client.
type Device struct {
	ID        string `json:"deviceId"`
	Name      string `json:"deviceName"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	LastSeen  string `json:"lastSeenAt"`
	Current   bool   `json:"current"`
}

func (s *AuthService) LoginDevices(ctx context.Context) ([]Device, error) {
	var devices []Device
	if err := s.c.Get(ctx, "/auth/login-devices", nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (s *AuthService) LogoutDevice(ctx context.Context, deviceID string) error {
	body := map[string]string{"deviceId": deviceID}
	return s.c.Post(ctx, "/auth/logout-device", body, nil)
}

func (s *AuthService) Health(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := s.c.Get(ctx, "/auth/health", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
