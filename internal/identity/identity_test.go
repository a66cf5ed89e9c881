package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gymwear/storeadmin/internal/domain"
)

func TestStubReportsFixedAdmin(t *testing.T) {
	auth := NewStub()

	u := auth.Current()
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Administrador", u.Name)
	assert.Equal(t, "admin@gymwear.com", u.Email)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	assert.True(t, auth.IsAuthenticated())
	assert.True(t, auth.IsAdmin())
	assert.True(t, auth.HasRole(domain.RoleAdmin))
	assert.False(t, auth.HasRole(domain.RoleCustomer))
}

func TestLogoutIsIgnored(t *testing.T) {
	auth := NewStub()
	auth.Logout()

	assert.True(t, auth.IsAuthenticated(), "logout must not change the fixed identity")
	assert.Equal(t, "Administrador", auth.Current().Name)
}
