// Package identity holds the console's authentication seam. The shipped
// implementation is a deliberate stub: a single fixed administrator who is
// always logged in. It is a placeholder the way a test double is, not an
// access-control layer; a real provider plugs in behind Authenticator.
package identity

import (
	"go.uber.org/zap"

	"github.com/gymwear/storeadmin/internal/domain"
)

// Authenticator answers who is using the console.
type Authenticator interface {
	Current() domain.AuthUser
	IsAuthenticated() bool
	HasRole(role string) bool
	IsAdmin() bool
	Logout()
}

// StubAuthenticator always reports the fixed administrator identity. No
// session, no token, no network call.
type StubAuthenticator struct {
	admin domain.AuthUser
}

var _ Authenticator = (*StubAuthenticator)(nil)

func NewStub() *StubAuthenticator {
	return &StubAuthenticator{
		admin: domain.AuthUser{
			ID:    1,
			Name:  "Administrador",
			Email: "admin@gymwear.com",
			Role:  domain.RoleAdmin,
		},
	}
}

func (s *StubAuthenticator) Current() domain.AuthUser { return s.admin }

func (s *StubAuthenticator) IsAuthenticated() bool { return true }

func (s *StubAuthenticator) HasRole(role string) bool { return s.admin.Role == role }

func (s *StubAuthenticator) IsAdmin() bool { return true }

// Logout is disabled while the console runs in fixed-admin mode.
func (s *StubAuthenticator) Logout() {
	zap.L().Info("logout requested; console runs in fixed-admin mode, ignoring")
}
