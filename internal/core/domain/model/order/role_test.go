package order_test

import (
	"testing"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses known client types", func(t *testing.T) {
		role, err := order.RoleFromString("admin")
		require.NoError(t, err)
		assert.Equal(t, order.RoleAdmin, role)

		role, err = order.RoleFromString("ios")
		require.NoError(t, err)
		assert.Equal(t, order.RoleApp, role)
	})

	t.Run("rejects unknown client types", func(t *testing.T) {
		for _, s := range []string{"", "android", "Admin", "root"} {
			_, err := order.RoleFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, order.RoleAdmin.Validate())
	require.NoError(t, order.RoleApp.Validate())
	require.Error(t, order.RoleUnknown.Validate())
	require.Error(t, order.Role(42).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "admin", order.RoleAdmin.String())
	assert.Equal(t, "ios", order.RoleApp.String())
	assert.Equal(t, "unknown", order.RoleUnknown.String())
}
