package identity

import (
	"context"
)

// IdentityContext is the read-only facade the rest of the application
// consumes. It exposes resolved facts about the current session plus the
// three lifecycle operations; it performs no authorization decisions itself.
// Components gating behavior by role read EffectiveRole and compare it
// against the canonical role set.
type IdentityContext struct {
	manager *SessionManager
}

// NewIdentityContext wraps a SessionManager in the consumer-facing facade.
func NewIdentityContext(manager *SessionManager) *IdentityContext {
	return &IdentityContext{manager: manager}
}

// CurrentIdentity returns the authenticated principal, when one exists.
func (c *IdentityContext) CurrentIdentity() (Identity, bool) {
	snapshot := c.manager.Snapshot()
	if snapshot.Identity == nil {
		return Identity{}, false
	}
	return *snapshot.Identity, true
}

// CurrentProfile returns the cached profile, or nil while it is still
// unresolved or its fetch failed.
func (c *IdentityContext) CurrentProfile() *Profile {
	return c.manager.Snapshot().Profile
}

// EffectiveRole returns the single resolved role, or the empty string until
// role grants have been fetched.
func (c *IdentityContext) EffectiveRole() RoleName {
	return c.manager.Snapshot().EffectiveRole
}

// IsSessionLoading is true only during the initial token-restoration phase.
// A slow background profile fetch never re-enters the loading state.
func (c *IdentityContext) IsSessionLoading() bool {
	return c.manager.State() == StateRestoring
}

// SignIn authenticates against the login collaborator and establishes the
// session. Credential failures carry a user-facing message.
func (c *IdentityContext) SignIn(ctx context.Context, email, password string) error {
	_, err := c.manager.SignIn(ctx, email, password)
	return err
}

// SignUp registers a new account and establishes the session on success.
func (c *IdentityContext) SignUp(ctx context.Context, email, password, displayName string) error {
	_, err := c.manager.SignUp(ctx, email, password, displayName)
	return err
}

// SignOut clears all session state and the persisted token.
func (c *IdentityContext) SignOut(ctx context.Context) {
	c.manager.SignOut(ctx)
}

// OnChange registers an observer for session state changes, so UI layers can
// re-render when identity facts move.
func (c *IdentityContext) OnChange(fn func(Snapshot)) {
	c.manager.OnChange(fn)
}
