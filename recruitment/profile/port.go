package profile

import "context"

// Slot is one persistent key/value cell holding a serialized profile
type Slot interface {
	// Read returns ErrSlotEmpty when nothing is stored
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored value
	Write(ctx context.Context, data []byte) error

	// Clear removes the stored value. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
