package identity

import (
	"context"
)

var sessionCtxKey = &contextKey{"session"}

type contextKey struct {
	name string
}

// WithSessionContext sets the session snapshot in the given context so
// request-scoped code can read the resolved identity facts.
func WithSessionContext(ctx context.Context, snapshot Snapshot) context.Context {
	return context.WithValue(ctx, sessionCtxKey, snapshot)
}

// SessionFromContext finds the session snapshot from the context.
func SessionFromContext(ctx context.Context) (Snapshot, bool) {
	raw, ok := ctx.Value(sessionCtxKey).(Snapshot)
	return raw, ok
}
