package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Claims are the fields of interest inside the platform's access token.
// The client only peeks at them for display and expiry checks; signature
// verification is the server's job.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// ParseClaims decodes token without verifying its signature.
func ParseClaims(token string) (*Claims, error) {
	claims := new(Claims)
	parser := new(jwt.Parser)
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "session.ParseClaims")
	}
	return claims, nil
}

// Expired reports whether the claims carry an expiry in the past.
func (c *Claims) Expired() bool {
	if c.ExpiresAt == 0 {
		return false
	}
	return time.Now().Unix() >= c.ExpiresAt
}
