// Package snapshot persists store state as whole-value key-value snapshots.
// Each store serialises its full state and writes it back under a fixed key
// on every mutation; at startup the stores read those keys back. There is no
// schema versioning and no migration of persisted data.
package snapshot

import "context"

// Fixed snapshot keys. The catalogue is seeded in code and never persisted,
// so it has no key.
const (
	KeyCart    = "apex_cart"
	KeySession = "apex_user"
	KeyOrders  = "apex_orders"
)

// Store is a durable key-value snapshot store.
type Store interface {
	// Load returns the snapshot stored under key, or (nil, nil) when no
	// snapshot exists.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the snapshot stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the snapshot stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error
}
