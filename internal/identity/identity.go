// Package identity resolves the current operator from a validated admin
// JWT and answers capability questions from role grants.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"sitedoctor/internal/doctor/ports"
)

// Claims are the admin token claims.
type Claims struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

type contextKeyUser struct{}

// WithUser injects an authenticated user into a context. The transport
// middleware does this after token validation; tests use it directly.
func WithUser(ctx context.Context, u *ports.User) context.Context {
	return context.WithValue(ctx, contextKeyUser{}, u)
}

// userFromContext retrieves the authenticated user, if any.
func userFromContext(ctx context.Context) (*ports.User, bool) {
	u, ok := ctx.Value(contextKeyUser{}).(*ports.User)
	return u, ok && u != nil
}

// DefaultGrants is the stock role-to-capability mapping. The "*" grant
// means every capability.
func DefaultGrants() map[string][]string {
	return map[string][]string{
		"admin":  {"*"},
		"editor": {"files:view"},
	}
}

// Service implements the doctor's Identity port.
type Service struct {
	signingKey []byte
	grants     map[string][]string
}

// New builds a Service with an HS256 signing key and role grants. Nil
// grants fall back to DefaultGrants.
func New(signingKey string, grants map[string][]string) *Service {
	if grants == nil {
		grants = DefaultGrants()
	}
	return &Service{signingKey: []byte(signingKey), grants: grants}
}

// ValidateToken parses and validates an admin token.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", err)
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Current implements ports.Identity. The user is read from the request
// context, where the auth middleware placed it.
func (s *Service) Current(ctx context.Context) (*ports.User, bool) {
	return userFromContext(ctx)
}

// Allowed implements ports.Identity.
func (s *Service) Allowed(u *ports.User, capability string) bool {
	if u == nil {
		return false
	}
	for _, role := range u.Roles {
		for _, grant := range s.grants[role] {
			if grant == "*" || grant == capability {
				return true
			}
		}
	}
	return false
}
