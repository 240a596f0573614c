// Package catalog provides the fixed job-role catalog. Roles are
// embedded at compile time, parsed once at process start and never
// mutate; ranking iterates the full catalog per request (no index is
// needed at this scale).
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

//go:embed roles.json
var roleFiles embed.FS

var (
	loadOnce sync.Once
	roles    []types.Role
	loadErr  error
)

// Load returns the role catalog, parsing the embedded file on first
// call. The returned slice must be treated as read-only.
func Load() ([]types.Role, error) {
	loadOnce.Do(func() {
		data, err := roleFiles.ReadFile("roles.json")
		if err != nil {
			loadErr = fmt.Errorf("failed to read embedded role catalog: %w", err)
			return
		}
		if err := json.Unmarshal(data, &roles); err != nil {
			loadErr = fmt.Errorf("failed to parse role catalog: %w", err)
			return
		}
		loadErr = validate(roles)
	})
	return roles, loadErr
}

// MustLoad returns the catalog or panics. Use at process start where a
// broken embedded catalog is unrecoverable.
func MustLoad() []types.Role {
	catalog, err := Load()
	if err != nil {
		panic(err)
	}
	return catalog
}

// FindRole returns the catalog role with the given ID, or nil.
func FindRole(catalog []types.Role, roleID string) *types.Role {
	for i := range catalog {
		if catalog[i].RoleID == roleID {
			return &catalog[i]
		}
	}
	return nil
}

// validate checks structural invariants: unique non-empty role IDs,
// titles, and at least one skill per role.
func validate(catalog []types.Role) error {
	seen := make(map[string]struct{}, len(catalog))
	for _, role := range catalog {
		if role.RoleID == "" {
			return fmt.Errorf("role catalog entry %q has empty roleId", role.Title)
		}
		if role.Title == "" {
			return fmt.Errorf("role %s has empty title", role.RoleID)
		}
		if len(role.Skills) == 0 {
			return fmt.Errorf("role %s has no skills", role.RoleID)
		}
		if _, dup := seen[role.RoleID]; dup {
			return fmt.Errorf("duplicate roleId %s in catalog", role.RoleID)
		}
		seen[role.RoleID] = struct{}{}
	}
	return nil
}
