package identity

// State is the session lifecycle state owned by the SessionManager.
type State string

const (
	// StateUnauthenticated means no session exists.
	StateUnauthenticated State = "unauthenticated"
	// StateRestoring means a persisted token is being validated at startup.
	StateRestoring State = "restoring"
	// StateAuthenticating means an explicit sign-in or sign-up is in flight.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated means an identity and token are committed.
	StateAuthenticated State = "authenticated"
)

// Session is the aggregate the manager owns: who the user is, the token that
// proves it, and the lazily resolved profile and effective role. There is
// exactly one session per running process.
type Session struct {
	Identity Identity     `json:"identity"`
	Token    SessionToken `json:"token"`
	// Profile stays nil until the background fetch completes; a fetch failure
	// leaves it nil without reverting the session.
	Profile *Profile `json:"profile,omitempty"`
	// EffectiveRole stays empty until role grants have been resolved.
	EffectiveRole RoleName `json:"effective_role,omitempty"`
}

// Snapshot is the immutable view of session state published to observers.
type Snapshot struct {
	State         State
	Identity      *Identity
	Profile       *Profile
	EffectiveRole RoleName
}

// Authenticated reports whether the snapshot carries a committed identity.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.Identity != nil
}
