package identity_test

import (
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"

	identity "github.com/eddy7896/buildsite-flow-sub004"
)

func TestIsRecoverableTokenError(t *testing.T) {
	assert.True(t, identity.IsRecoverableTokenError(identity.ErrInvalidToken))
	assert.True(t, identity.IsRecoverableTokenError(identity.ErrTokenExpired))

	assert.False(t, identity.IsRecoverableTokenError(nil))
	assert.False(t, identity.IsRecoverableTokenError(identity.ErrInvalidCredentials))
	assert.False(t, identity.IsRecoverableTokenError(errors.New("boom", errors.CategoryInternal)))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, identity.IsAuthError(identity.ErrInvalidCredentials))
	assert.True(t, identity.IsAuthError(identity.ErrAccountInactive))
	assert.True(t, identity.IsAuthError(identity.ErrEmailNotConfirmed))

	assert.False(t, identity.IsAuthError(nil))
	assert.False(t, identity.IsAuthError(identity.ErrProfileNotFound))
	assert.False(t, identity.IsAuthError(errors.New("boom", errors.CategoryInternal)))
}

func TestErrorTextCodes(t *testing.T) {
	cases := map[string]*errors.Error{
		"INVALID_SESSION_TOKEN": identity.ErrInvalidToken,
		"SESSION_TOKEN_EXPIRED": identity.ErrTokenExpired,
		"INVALID_CREDENTIALS":   identity.ErrInvalidCredentials,
		"PROFILE_NOT_FOUND":     identity.ErrProfileNotFound,
	}

	for code, err := range cases {
		assert.Equal(t, code, err.TextCode, "error %v", err)
	}
}
