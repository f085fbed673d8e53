package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/eddy7896/buildsite-flow-sub004"
)

func TestSessionContextRoundTrip(t *testing.T) {
	snapshot := identity.Snapshot{
		State:         identity.StateAuthenticated,
		Identity:      &identity.Identity{ID: "user-1", Email: "ada@agency.test"},
		EffectiveRole: identity.RoleAdmin,
	}

	ctx := identity.WithSessionContext(context.Background(), snapshot)

	got, ok := identity.SessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, snapshot, got)
}

func TestSessionFromContextMissing(t *testing.T) {
	_, ok := identity.SessionFromContext(context.Background())
	assert.False(t, ok)
}
