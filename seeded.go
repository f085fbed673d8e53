package identity

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
)

// ErrSeededIdentityUnknown signals that the seeded provider has no matching
// credential pair; the session manager falls through to the real gateway.
var ErrSeededIdentityUnknown = errors.New("seeded identity not found", errors.CategoryNotFound).
	WithTextCode("SEEDED_IDENTITY_UNKNOWN").
	WithCode(errors.CodeNotFound)

// ErrSeededRegistration is returned for registration attempts; the seeded
// provider only answers logins.
var ErrSeededRegistration = errors.New("seeded provider cannot register users", errors.CategoryOperation).
	WithTextCode("SEEDED_REGISTRATION_UNSUPPORTED")

const defaultSeededTokenTTL = 24 * time.Hour

type seededUser struct {
	email        string
	fullName     string
	role         RoleName
	passwordHash string
}

// SeededProvider is the demo-credential collaborator: a fixed table of
// built-in identities mapped directly to roles. The session manager may
// consult it before the real gateway when enabled by configuration; it never
// participates in production logins.
type SeededProvider struct {
	users      map[string]seededUser
	signingKey []byte
	tokenTTL   time.Duration
	logger     Logger
	now        func() time.Time
}

// NewSeededProvider returns an empty provider; add identities with AddUser.
func NewSeededProvider(signingKey []byte) *SeededProvider {
	return &SeededProvider{
		users:      map[string]seededUser{},
		signingKey: signingKey,
		tokenTTL:   defaultSeededTokenTTL,
		logger:     defLogger{},
		now:        time.Now,
	}
}

func (p *SeededProvider) WithLogger(logger Logger) *SeededProvider {
	if logger != nil {
		p.logger = logger
	}
	return p
}

func (p *SeededProvider) WithTokenTTL(ttl time.Duration) *SeededProvider {
	if ttl > 0 {
		p.tokenTTL = ttl
	}
	return p
}

// WithClock injects a custom clock (useful for tests).
func (p *SeededProvider) WithClock(now func() time.Time) *SeededProvider {
	if now != nil {
		p.now = now
	}
	return p
}

// AddUser registers a demo identity. The cleartext password is hashed at
// registration time and never kept around.
func (p *SeededProvider) AddUser(email, password string, role RoleName, fullName string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	key := normalizeEmail(email)
	if key == "" {
		return errors.New("seeded email must not be empty", errors.CategoryValidation)
	}

	p.users[key] = seededUser{
		email:        key,
		fullName:     fullName,
		role:         role,
		passwordHash: hash,
	}
	return nil
}

// Login matches the credential pair against the seeded table and mints a
// session token for it. Role grants are returned inline so the manager does
// not consult the role store for demo identities.
func (p *SeededProvider) Login(_ context.Context, email, password string) (*AuthResult, error) {
	entry, ok := p.users[normalizeEmail(email)]
	if !ok {
		return nil, ErrSeededIdentityUnknown
	}

	if err := ComparePasswordAndHash(password, entry.passwordHash); err != nil {
		// a non-matching password falls through to the real gateway
		// instead of leaking which demo identities exist
		return nil, ErrSeededIdentityUnknown
	}

	id, err := hashid.NewUUID(entry.email)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to derive seeded identity id")
	}

	token, err := p.mintToken(id.String(), entry.email)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("seeded login for %s as %s", entry.email, entry.role)

	return &AuthResult{
		Token: token,
		Identity: Identity{
			ID:             id.String(),
			Email:          entry.email,
			EmailConfirmed: true,
			IsActive:       true,
		},
		Grants: []RoleGrant{{UserID: id.String(), Role: entry.role}},
	}, nil
}

// Register satisfies AuthGateway; seeded identities are fixed at build time.
func (p *SeededProvider) Register(_ context.Context, _, _, _ string) (*AuthResult, error) {
	return nil, ErrSeededRegistration
}

func (p *SeededProvider) mintToken(subjectID, email string) (string, error) {
	now := p.now()
	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign seeded token")
	}
	return signed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ AuthGateway = (*SeededProvider)(nil)
