// Package credentials persists the session bearer token across restarts.
package credentials

import "context"

// Store is the durable home of exactly one credential value. Load returns ""
// when nothing is stored; Clear on an empty store is a no-op.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
