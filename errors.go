package identity

import (
	"github.com/goliatone/go-errors"
)

const (
	textCodeInvalidToken       = "INVALID_SESSION_TOKEN"
	textCodeTokenExpired       = "SESSION_TOKEN_EXPIRED"
	textCodeInvalidCredentials = "INVALID_CREDENTIALS"
	textCodeAccountInactive    = "ACCOUNT_INACTIVE"
	textCodeEmailNotConfirmed  = "EMAIL_NOT_CONFIRMED"
	textCodeProfileNotFound    = "PROFILE_NOT_FOUND"
	textCodeInvalidPayload     = "INVALID_AUTH_PAYLOAD"
)

// ErrInvalidToken means a stored token failed to decode. The session manager
// recovers it silently as "no session"; it is never surfaced to the user.
var ErrInvalidToken = errors.New("session token is malformed", errors.CategoryAuth).
	WithTextCode(textCodeInvalidToken).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired means a token decoded but its expiry has passed. Recovered
// silently as sign-out; an expected lifecycle event, not an error condition.
var ErrTokenExpired = errors.New("session token is expired", errors.CategoryAuth).
	WithTextCode(textCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrInvalidCredentials is surfaced to the caller of SignIn/SignUp.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode(textCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrAccountInactive is surfaced when the gateway rejects a deactivated account.
var ErrAccountInactive = errors.New("account is inactive", errors.CategoryAuth).
	WithTextCode(textCodeAccountInactive).
	WithCode(errors.CodeUnauthorized)

// ErrEmailNotConfirmed is surfaced when the account email is not verified yet.
var ErrEmailNotConfirmed = errors.New("email address not confirmed", errors.CategoryAuth).
	WithTextCode(textCodeEmailNotConfirmed).
	WithCode(errors.CodeUnauthorized)

// ErrProfileNotFound is returned by profile stores for unknown users. The
// session manager degrades to an empty profile rather than failing the session.
var ErrProfileNotFound = errors.New("profile not found", errors.CategoryNotFound).
	WithTextCode(textCodeProfileNotFound).
	WithCode(errors.CodeNotFound)

// IsRecoverableTokenError reports whether err is one of the token lifecycle
// failures the manager absorbs as a silent logout.
func IsRecoverableTokenError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrTokenExpired)
}

// IsAuthError reports whether err is a user-facing credential failure.
func IsAuthError(err error) bool {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.Category == errors.CategoryAuth
}
