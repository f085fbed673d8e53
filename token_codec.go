package identity

import (
	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the subset of embedded claims the codec extracts from the
// middle segment of the token.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// DecodeToken extracts the claims embedded in a raw bearer token. The raw
// value is a three-segment structure; the middle, base64url-encoded segment
// holds the subject id, email, and expiry. Decoding is pure and performs no
// I/O; the signature segment is not verified, matching the trust model of
// the issuing endpoint.
//
// Any malformed input (wrong segment count, invalid encoding, missing
// claims) returns ErrInvalidToken. Callers must treat decode failure
// identically to "no session".
func DecodeToken(raw string) (*SessionToken, error) {
	claims := &tokenClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.Email == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &SessionToken{
		Raw:       raw,
		SubjectID: claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}
