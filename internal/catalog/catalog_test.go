package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	roles, err := Load()

	require.NoError(t, err)
	require.NotEmpty(t, roles)

	seen := make(map[string]bool)
	for _, role := range roles {
		assert.NotEmpty(t, role.RoleID)
		assert.NotEmpty(t, role.Title)
		assert.NotEmpty(t, role.Sector)
		assert.NotEmpty(t, role.Skills, role.RoleID)
		assert.False(t, seen[role.RoleID], "duplicate roleId %s", role.RoleID)
		seen[role.RoleID] = true

		for _, skill := range role.Skills {
			assert.NotEmpty(t, skill.Name)
			assert.GreaterOrEqual(t, skill.Weight, 0.0)
			assert.LessOrEqual(t, skill.Weight, 1.0)
		}
	}
}

func TestLoad_Memoized(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
}

func TestFindRole(t *testing.T) {
	roles, err := Load()
	require.NoError(t, err)

	role := FindRole(roles, "data_analyst")
	require.NotNil(t, role)
	assert.Equal(t, "Data Analyst", role.Title)

	assert.Nil(t, FindRole(roles, "no_such_role"))
}
