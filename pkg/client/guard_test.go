package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func authWith(role string) *Auth {
	a := NewAuth(New("", NewMemoryStore()))
	a.setLoading(false)
	if role != "" {
		a.setUser(&User{ID: "u1", Role: role})
	}
	return a
}

func TestGuard_SemSessaoVaiParaLogin(t *testing.T) {
	d := Guard(authWith(""), GuardOptions{})
	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.Redirect)
}

func TestGuard_CarregandoNaoRedireciona(t *testing.T) {
	a := NewAuth(New("", NewMemoryStore()))
	d := Guard(a, GuardOptions{})
	assert.False(t, d.Allowed)
	assert.Empty(t, d.Redirect)
}

func TestGuard_AdminOnly(t *testing.T) {
	assert.True(t, Guard(authWith(RoleAdmin), GuardOptions{AdminOnly: true}).Allowed)

	d := Guard(authWith(RoleSupervisor), GuardOptions{AdminOnly: true})
	assert.False(t, d.Allowed)
	assert.Equal(t, ForbiddenPath, d.Redirect)
}

func TestGuard_AllowedRoles(t *testing.T) {
	opts := GuardOptions{AllowedRoles: []string{RoleAdmin, RoleManager}}
	assert.True(t, Guard(authWith(RoleManager), opts).Allowed)
	assert.Equal(t, ForbiddenPath, Guard(authWith(RoleViewer), opts).Redirect)
}

func TestRoleGate(t *testing.T) {
	assert.True(t, RoleGate(authWith(RoleViewer)))
	assert.True(t, RoleGate(authWith(RoleSupervisor), RoleAdmin, RoleSupervisor))
	assert.False(t, RoleGate(authWith(RoleViewer), RoleAdmin))
	assert.False(t, RoleGate(authWith("")))
}

func TestIsSupervisor_AdminConta(t *testing.T) {
	assert.True(t, authWith(RoleAdmin).IsSupervisor())
	assert.True(t, authWith(RoleSupervisor).IsSupervisor())
	assert.False(t, authWith(RoleManager).IsSupervisor())
	assert.False(t, authWith(RoleSupervisor).IsAdmin())
}
