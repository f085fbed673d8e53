package identity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated principal for the lifetime of a session.
// It is issued by the auth gateway (or reconstructed from token claims at
// restore time) and never mutated afterwards.
type Identity struct {
	ID             string `json:"id,omitempty"`
	Email          string `json:"email,omitempty"`
	EmailConfirmed bool   `json:"email_confirmed,omitempty"`
	IsActive       bool   `json:"is_active,omitempty"`
}

// UUID parses the identity id into a uuid.UUID.
func (i Identity) UUID() (uuid.UUID, error) {
	return uuid.Parse(i.ID)
}

// SessionToken carries the raw bearer token plus the claims the codec was
// able to extract from it. The raw value is opaque beyond those claims.
type SessionToken struct {
	Raw       string `json:"-"`
	SubjectID string `json:"subject_id,omitempty"`
	Email     string `json:"email,omitempty"`
	// ExpiresAt is the expiry claim in unix seconds.
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// IsLive reports whether the token expiry is still in the future. The
// boundary is exclusive: a token expiring exactly now is not live.
func (t SessionToken) IsLive(now time.Time) bool {
	return t.ExpiresAt > now.Unix()
}

// Profile is per-user business metadata owned by the profile collaborator.
// The core fetches it once per session and caches it until sign-out.
type Profile struct {
	UserID    string `json:"user_id,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Phone     string `json:"phone_number,omitempty"`
	AgencyID  string `json:"agency_id,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
}

// RoleGrant assigns one role name to one user. A user may hold any number
// of grants; the role store is the source of truth.
type RoleGrant struct {
	UserID string   `json:"user_id,omitempty"`
	Role   RoleName `json:"role,omitempty"`
}
