package store

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	identity "github.com/eddy7896/buildsite-flow-sub004"
)

// RoleGrants implements identity.RoleStore on top of the user_roles table.
type RoleGrants struct {
	db *bun.DB
}

func NewRoleGrants(db *bun.DB) *RoleGrants {
	return &RoleGrants{db: db}
}

// FetchRoleGrants returns every grant for the user. No rows is a valid,
// empty result; the caller substitutes the baseline role.
func (r *RoleGrants) FetchRoleGrants(ctx context.Context, userID string) ([]identity.RoleGrant, error) {
	var records []RoleGrantRecord

	err := r.db.NewSelect().
		Model(&records).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to fetch role grants")
	}

	grants := make([]identity.RoleGrant, 0, len(records))
	for _, record := range records {
		grants = append(grants, identity.RoleGrant{
			UserID: record.UserID,
			Role:   identity.RoleName(record.Role),
		})
	}

	return grants, nil
}

var _ identity.RoleStore = (*RoleGrants)(nil)
