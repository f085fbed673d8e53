package identity

// DefaultStorageKey is the fixed name under which the raw session token is
// persisted in client-local storage.
const DefaultStorageKey = "bflow.auth.token"

// SimpleConfig is a plain-struct Config implementation.
type SimpleConfig struct {
	// StorageKey overrides the persisted token key. Empty uses DefaultStorageKey.
	StorageKey string `json:"storage_key,omitempty"`
	// SeededLoginEnabled lets the session manager consult the seeded identity
	// provider before the real gateway. Must stay off in production builds.
	SeededLoginEnabled bool `json:"seeded_login_enabled,omitempty"`
}

func (c SimpleConfig) GetStorageKey() string {
	if c.StorageKey == "" {
		return DefaultStorageKey
	}
	return c.StorageKey
}

func (c SimpleConfig) GetSeededLoginEnabled() bool {
	return c.SeededLoginEnabled
}

var _ Config = SimpleConfig{}
