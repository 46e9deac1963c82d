package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Success(t *testing.T) {
	u, err := NewUser("Alice", "Alice@Example.com", "secret-pass", RoleStaff)

	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, RoleStaff, u.Role)
	assert.Equal(t, StatusActive, u.Status)
	assert.NotEqual(t, "secret-pass", u.PasswordHash)
	assert.True(t, u.CheckPassword("secret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestNewUser_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		userName string
		email    string
		password string
		role     Role
	}{
		{"empty name", "", "a@b.com", "password1", RoleAdmin},
		{"bad email", "Alice", "not-an-email", "password1", RoleAdmin},
		{"short password", "Alice", "a@b.com", "short", RoleAdmin},
		{"bad role", "Alice", "a@b.com", "password1", Role("root")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.userName, tc.email, tc.password, tc.role)
			assert.Error(t, err)
		})
	}
}

func TestUser_ChangeRole(t *testing.T) {
	u, _ := NewUser("Alice", "a@b.com", "password1", RoleCustomer)

	require.NoError(t, u.ChangeRole(RoleAdmin))
	assert.Equal(t, RoleAdmin, u.Role)

	assert.Error(t, u.ChangeRole(Role("superuser")))
	assert.Equal(t, RoleAdmin, u.Role)
}

func TestUser_ChangeStatus(t *testing.T) {
	u, _ := NewUser("Alice", "a@b.com", "password1", RoleCustomer)

	require.NoError(t, u.ChangeStatus(StatusDisabled))
	assert.Equal(t, StatusDisabled, u.Status)

	assert.Error(t, u.ChangeStatus(Status("banned")))
}

func TestUser_RecordLogin(t *testing.T) {
	u, _ := NewUser("Alice", "a@b.com", "password1", RoleCustomer)
	now := time.Now()

	u.RecordLogin(now)

	require.NotNil(t, u.LastLoginAt)
	assert.WithinDuration(t, now, *u.LastLoginAt, time.Second)
}
