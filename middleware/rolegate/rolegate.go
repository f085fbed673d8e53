// Package rolegate gates routes on the minimum effective role resolved by
// the identity core. The gate reads facts from the IdentityContext facade
// and makes the comparison itself; the facade stays decision-free.
package rolegate

import (
	"github.com/goliatone/go-router"

	identity "github.com/eddy7896/buildsite-flow-sub004"
)

// Source exposes the resolved session facts the gate reads. It is satisfied
// by *identity.IdentityContext.
type Source interface {
	CurrentIdentity() (identity.Identity, bool)
	EffectiveRole() identity.RoleName
}

// Allows reports whether an effective role satisfies the required minimum.
// An unresolved (empty) or unranked role never passes.
func Allows(role, min identity.RoleName) bool {
	return role.AtLeast(min)
}

// New builds a middleware that rejects requests whose session lacks the
// minimum role: 401 without an authenticated identity, 403 with one whose
// effective role ranks too low or is still unresolved. Rejections are
// returned as RouterErrors so the router's error handler renders them.
func New(source Source, min identity.RoleName) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			if _, ok := source.CurrentIdentity(); !ok {
				return router.NewUnauthorizedError("authentication required")
			}

			if !Allows(source.EffectiveRole(), min) {
				return router.NewForbiddenError("insufficient role")
			}

			return c.Next()
		}
	}
}
