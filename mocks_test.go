package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	identity "github.com/eddy7896/buildsite-flow-sub004"
)

const testSigningKey = "test-signing-key"

// stubGateway implements identity.AuthGateway with overridable behavior.
type stubGateway struct {
	login    func(ctx context.Context, email, password string) (*identity.AuthResult, error)
	register func(ctx context.Context, email, password, displayName string) (*identity.AuthResult, error)

	loginCalls    int
	registerCalls int
}

func (s *stubGateway) Login(ctx context.Context, email, password string) (*identity.AuthResult, error) {
	s.loginCalls++
	if s.login == nil {
		return nil, identity.ErrInvalidCredentials
	}
	return s.login(ctx, email, password)
}

func (s *stubGateway) Register(ctx context.Context, email, password, displayName string) (*identity.AuthResult, error) {
	s.registerCalls++
	if s.register == nil {
		return nil, identity.ErrInvalidCredentials
	}
	return s.register(ctx, email, password, displayName)
}

// stubProfiles implements identity.ProfileStore.
type stubProfiles struct {
	fetch func(ctx context.Context, userID string) (*identity.Profile, error)
}

func (s stubProfiles) FetchProfile(ctx context.Context, userID string) (*identity.Profile, error) {
	if s.fetch == nil {
		return nil, identity.ErrProfileNotFound
	}
	return s.fetch(ctx, userID)
}

// stubRoles implements identity.RoleStore.
type stubRoles struct {
	fetch func(ctx context.Context, userID string) ([]identity.RoleGrant, error)
}

func (s stubRoles) FetchRoleGrants(ctx context.Context, userID string) ([]identity.RoleGrant, error) {
	if s.fetch == nil {
		return []identity.RoleGrant{}, nil
	}
	return s.fetch(ctx, userID)
}

// mintTestToken builds a signed three-segment token carrying the claims the
// codec extracts.
func mintTestToken(t *testing.T, subjectID, email string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   subjectID,
		"email": email,
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return signed
}

// watchSnapshots subscribes to manager changes with a buffered channel.
func watchSnapshots(manager *identity.SessionManager) <-chan identity.Snapshot {
	ch := make(chan identity.Snapshot, 32)
	manager.OnChange(func(s identity.Snapshot) { ch <- s })
	return ch
}

// waitForSnapshot receives snapshots until one satisfies cond.
func waitForSnapshot(t *testing.T, ch <-chan identity.Snapshot, cond func(identity.Snapshot) bool) identity.Snapshot {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-ch:
			if cond(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for session snapshot")
			return identity.Snapshot{}
		}
	}
}
