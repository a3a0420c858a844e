package ports

import (
	"context"
	"time"
)

// SequenceAllocator hands out strictly increasing per-day sequence numbers
// for work-order codes. Implementations must be safe for concurrent use
// across process instances: two concurrent calls for the same day never
// observe the same value.
type SequenceAllocator interface {
	// Next returns the next sequence number for the given date, starting
	// at 1 each day.
	Next(ctx context.Context, date time.Time) (int64, error)
}
