// Package inventory provides the per-room-type capacity store behind the
// reservation engine. The stored value is the number of rooms not yet
// committed to an active booking; the engine owns the read-check-write
// critical section, the store only has to serialize its own writes.
package inventory

import "context"

type Store interface {
	Get(ctx context.Context, roomType string) (int, error)
	Set(ctx context.Context, roomType string, count int) error
	All(ctx context.Context) (map[string]int, error)
}
