//go:build unit

package user_test

import (
	"testing"

	"webmall/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("nimal@example.lk")
	require.NoError(t, err)

	t.Run("defaults name to email local-part", func(t *testing.T) {
		u := user.NewUser(uuid.New(), email, "", user.RoleCustomer)
		assert.Equal(t, "nimal", u.Name())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.NotEqual(t, uuid.Nil, u.ID())
	})

	t.Run("keeps provider metadata name when present", func(t *testing.T) {
		u := user.NewUser(uuid.New(), email, "Nimal Perera", user.RoleCustomer)
		assert.Equal(t, "Nimal Perera", u.Name())
	})
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"customer", "admin"} {
		_, err := user.NewRole(s)
		assert.NoError(t, err)
	}
	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewEmail(t *testing.T) {
	_, err := user.NewEmail("not-an-email")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	e, err := user.NewEmail("  amara@shop.lk ")
	require.NoError(t, err)
	assert.Equal(t, "amara@shop.lk", e.Value())
}
