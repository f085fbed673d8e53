package identity

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// AuthResult is what a gateway returns on a successful login or registration.
type AuthResult struct {
	// Token is the raw session token minted by the gateway.
	Token string
	// Identity is the authenticated principal described by the gateway.
	Identity Identity
	// Grants optionally carries role grants the gateway resolved itself.
	// When non-nil the session manager skips the RoleStore fetch.
	Grants []RoleGrant
}

// AuthGateway is the external login/registration collaborator. The core
// never inspects credentials itself.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, email, password, displayName string) (*AuthResult, error)
}

// ProfileStore fetches the per-user profile record.
type ProfileStore interface {
	FetchProfile(ctx context.Context, userID string) (*Profile, error)
}

// RoleStore fetches all role grants for a user. An empty set is valid.
type RoleStore interface {
	FetchRoleGrants(ctx context.Context, userID string) ([]RoleGrant, error)
}

// TokenStore persists exactly one raw token value in client-local storage.
// Load returns an empty string when no token is stored; absence means
// "logged out".
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, raw string) error
	Clear(ctx context.Context) error
}

// Config holds session options
type Config interface {
	GetStorageKey() string
	GetSeededLoginEnabled() bool
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] IDENTITY "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] IDENTITY "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] IDENTITY "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] IDENTITY "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
