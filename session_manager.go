package identity

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-errors"
)

// SessionManager owns the in-memory session state and its lifecycle:
//
//	Unauthenticated -> Restoring       -> Authenticated | Unauthenticated
//	Unauthenticated -> Authenticating  -> Authenticated | Unauthenticated
//	Authenticated   -> Unauthenticated (sign-out)
//
// Expired or undecodable tokens are recovered silently as "no session".
// Profile and role-grant fetches run in the background after the identity is
// committed; their failures degrade the optional session fields without
// reverting the session. A sign-in or sign-out that lands while a resolution
// is in flight always wins: the stale result is discarded on arrival.
type SessionManager struct {
	gateway  AuthGateway
	seeded   AuthGateway
	profiles ProfileStore
	roles    RoleStore
	tokens   TokenStore
	config   Config
	logger   Logger
	now      func() time.Time

	mu        sync.Mutex
	state     State
	session   *Session
	epoch     uint64
	listeners []func(Snapshot)

	resolveWG sync.WaitGroup
}

// NewSessionManager wires the manager to its collaborators. Pass a nil
// config to use defaults (seeded login disabled).
func NewSessionManager(gateway AuthGateway, profiles ProfileStore, roles RoleStore, tokens TokenStore, cfg Config) *SessionManager {
	if cfg == nil {
		cfg = SimpleConfig{}
	}
	return &SessionManager{
		gateway:  gateway,
		profiles: profiles,
		roles:    roles,
		tokens:   tokens,
		config:   cfg,
		logger:   defLogger{},
		now:      time.Now,
		state:    StateUnauthenticated,
	}
}

func (m *SessionManager) WithLogger(logger Logger) *SessionManager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithClock injects a custom clock (useful for tests).
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	if now != nil {
		m.now = now
	}
	return m
}

// WithSeededProvider installs the demo-credential collaborator. It is only
// consulted when the configuration enables seeded login.
func (m *SessionManager) WithSeededProvider(provider AuthGateway) *SessionManager {
	m.seeded = provider
	return m
}

// State returns the current lifecycle state.
func (m *SessionManager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshot returns an immutable view of the current session.
func (m *SessionManager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// OnChange registers an observer invoked after every committed state change,
// including background resolution results. Observers run outside the manager
// lock on the mutating goroutine.
func (m *SessionManager) OnChange(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Restore re-establishes a session from the persisted token at process
// startup. Absent, malformed, or expired tokens resolve to Unauthenticated
// without surfacing an error; a live token commits the identity immediately
// and resolves profile and role grants in the background.
func (m *SessionManager) Restore(ctx context.Context) State {
	m.setState(StateRestoring)
	m.publish()

	raw, err := m.tokens.Load(ctx)
	if err != nil {
		m.logger.Warn("session restore: token storage read failed: %v", err)
		return m.abandonRestore(ctx, false)
	}
	if raw == "" {
		return m.abandonRestore(ctx, false)
	}

	token, err := DecodeToken(raw)
	if err != nil {
		m.logger.Debug("session restore: discarding undecodable token")
		return m.abandonRestore(ctx, true)
	}
	if !token.IsLive(m.now()) {
		m.logger.Debug("session restore: discarding expired token")
		return m.abandonRestore(ctx, true)
	}

	// the token holder authenticated before; confirmed/active until the
	// profile fetch says otherwise
	identity := Identity{
		ID:             token.SubjectID,
		Email:          token.Email,
		EmailConfirmed: true,
		IsActive:       true,
	}

	epoch := m.commitSession(identity, *token)
	m.publish()
	m.startResolution(ctx, epoch, identity.ID, nil)

	return StateAuthenticated
}

// SignIn delegates the credential check to the gateway (or the seeded
// provider when enabled), persists the returned token, and commits the
// session. On failure no partial state is committed and the error carries a
// user-facing message.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) (Snapshot, error) {
	if err := validateSignIn(email, password); err != nil {
		return m.Snapshot(), err
	}

	m.setState(StateAuthenticating)
	m.publish()

	result, err := m.login(ctx, email, password)
	if err != nil {
		m.logger.Debug("sign in rejected for %s: %v", email, err)
		m.revertAttempt()
		m.publish()
		return m.Snapshot(), err
	}

	return m.establish(ctx, result)
}

// SignUp delegates to the external registration collaborator and, on
// success, establishes a session exactly like a sign-in.
func (m *SessionManager) SignUp(ctx context.Context, email, password, displayName string) (Snapshot, error) {
	if err := validateSignUp(email, password, displayName); err != nil {
		return m.Snapshot(), err
	}

	m.setState(StateAuthenticating)
	m.publish()

	result, err := m.gateway.Register(ctx, email, password, displayName)
	if err != nil {
		m.logger.Debug("sign up rejected for %s: %v", email, err)
		m.revertAttempt()
		m.publish()
		return m.Snapshot(), err
	}

	return m.establish(ctx, result)
}

// SignOut unconditionally clears the session and the persisted token, then
// transitions to Unauthenticated. It is idempotent and cannot leave stale
// credentials behind; an in-flight resolution becomes a no-op on arrival.
func (m *SessionManager) SignOut(ctx context.Context) {
	m.mu.Lock()
	m.session = nil
	m.state = StateUnauthenticated
	m.epoch++
	m.mu.Unlock()

	if err := m.tokens.Clear(ctx); err != nil {
		m.logger.Warn("sign out: failed to clear persisted token: %v", err)
	}
	m.publish()
}

// WaitForResolution blocks until any in-flight profile/role resolution has
// settled. Used at shutdown and by tests; the UI never needs it.
func (m *SessionManager) WaitForResolution() {
	m.resolveWG.Wait()
}

func (m *SessionManager) login(ctx context.Context, email, password string) (*AuthResult, error) {
	if m.seeded != nil && m.config.GetSeededLoginEnabled() {
		result, err := m.seeded.Login(ctx, email, password)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrSeededIdentityUnknown) {
			return nil, err
		}
	}
	return m.gateway.Login(ctx, email, password)
}

func (m *SessionManager) establish(ctx context.Context, result *AuthResult) (Snapshot, error) {
	if result == nil || result.Token == "" {
		m.revertAttempt()
		m.publish()
		return m.Snapshot(), ErrInvalidCredentials
	}

	if err := m.tokens.Save(ctx, result.Token); err != nil {
		// the session is still established; it just will not survive restart
		m.logger.Warn("failed to persist session token: %v", err)
	}

	token := m.tokenFromResult(result)
	epoch := m.commitSession(result.Identity, token)
	m.publish()
	m.startResolution(ctx, epoch, result.Identity.ID, result.Grants)

	return m.Snapshot(), nil
}

func (m *SessionManager) tokenFromResult(result *AuthResult) SessionToken {
	token, err := DecodeToken(result.Token)
	if err == nil {
		return *token
	}

	m.logger.Warn("gateway token did not decode; keeping raw value only")
	return SessionToken{
		Raw:       result.Token,
		SubjectID: result.Identity.ID,
		Email:     result.Identity.Email,
	}
}

// commitSession installs a fresh session and bumps the epoch so any older
// in-flight resolution is discarded on arrival.
func (m *SessionManager) commitSession(identity Identity, token SessionToken) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.epoch++
	m.session = &Session{Identity: identity, Token: token}
	m.state = StateAuthenticated
	return m.epoch
}

func (m *SessionManager) startResolution(ctx context.Context, epoch uint64, userID string, grants []RoleGrant) {
	m.resolveWG.Add(1)
	go m.resolveDetails(context.WithoutCancel(ctx), epoch, userID, grants)
}

// resolveDetails fetches the profile and role grants for a committed session
// and applies whichever parts succeeded. Fetch failures are logged and leave
// the corresponding field unset; the session itself stays authenticated.
func (m *SessionManager) resolveDetails(ctx context.Context, epoch uint64, userID string, grants []RoleGrant) {
	defer m.resolveWG.Done()

	var wg sync.WaitGroup
	var profile *Profile
	var profileErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		profile, profileErr = m.profiles.FetchProfile(ctx, userID)
	}()

	var roleErr error
	if grants == nil {
		grants, roleErr = m.roles.FetchRoleGrants(ctx, userID)
	}
	wg.Wait()

	var role RoleName
	if roleErr != nil {
		m.logger.Warn("role grant fetch failed for %s; leaving effective role unset: %v", userID, roleErr)
	} else {
		names := make([]RoleName, 0, len(grants))
		for _, grant := range grants {
			names = append(names, grant.Role)
		}
		role = ResolveEffectiveRole(names)
		if !role.IsCanonical() {
			m.logger.Warn("resolved non-canonical effective role %q for %s", role, userID)
		}
	}

	if profileErr != nil {
		if errors.Is(profileErr, ErrProfileNotFound) {
			m.logger.Debug("no profile record for %s", userID)
		} else {
			m.logger.Warn("profile fetch failed for %s: %v", userID, profileErr)
		}
		profile = nil
	}

	m.mu.Lock()
	if m.epoch != epoch || m.session == nil || m.session.Identity.ID != userID {
		m.mu.Unlock()
		m.logger.Debug("discarding stale session resolution for %s", userID)
		return
	}
	if profile != nil {
		m.session.Profile = profile
	}
	if roleErr == nil {
		m.session.EffectiveRole = role
	}
	m.mu.Unlock()
	m.publish()
}

func (m *SessionManager) setState(state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}

// revertAttempt restores the pre-attempt state after a failed sign-in or
// sign-up: an existing session stays untouched, otherwise back to
// Unauthenticated.
func (m *SessionManager) revertAttempt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil {
		m.state = StateAuthenticated
	} else {
		m.state = StateUnauthenticated
	}
}

// abandonRestore ends a restoration without a session, optionally discarding
// the stored token that failed validation.
func (m *SessionManager) abandonRestore(ctx context.Context, clearStored bool) State {
	m.mu.Lock()
	m.session = nil
	m.state = StateUnauthenticated
	m.epoch++
	m.mu.Unlock()

	if clearStored {
		if err := m.tokens.Clear(ctx); err != nil {
			m.logger.Warn("failed to discard stored token: %v", err)
		}
	}
	m.publish()
	return StateUnauthenticated
}

func (m *SessionManager) snapshotLocked() Snapshot {
	snapshot := Snapshot{State: m.state}
	if m.session != nil {
		identity := m.session.Identity
		snapshot.Identity = &identity
		snapshot.EffectiveRole = m.session.EffectiveRole
		if m.session.Profile != nil {
			profile := *m.session.Profile
			snapshot.Profile = &profile
		}
	}
	return snapshot
}

func (m *SessionManager) publish() {
	m.mu.Lock()
	snapshot := m.snapshotLocked()
	listeners := make([]func(Snapshot), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
