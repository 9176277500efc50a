package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// slotTTL caps how long a slot can stay locked if a release is lost; a
// create request finishes well inside it.
const slotTTL = 30 * time.Second

// SlotLock serializes booking creation per (venue, date) so two concurrent
// requests cannot both pass the availability check and double-book a day.
// Key format: slot:<venue_id>:<YYYY-MM-DD>
type SlotLock struct {
	client *redis.Client
}

// NewSlotLock creates a SlotLock wrapping the given Redis client.
func NewSlotLock(client *redis.Client) *SlotLock {
	return &SlotLock{client: client}
}

// Acquire takes the lock for the venue/date. It returns false when another
// request currently holds it.
func (l *SlotLock) Acquire(ctx context.Context, venueID string, date time.Time) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(venueID, date), "1", slotTTL).Result()
	if err != nil {
		return false, fmt.Errorf("slot lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock.
func (l *SlotLock) Release(ctx context.Context, venueID string, date time.Time) error {
	return l.client.Del(ctx, l.key(venueID, date)).Err()
}

func (l *SlotLock) key(venueID string, date time.Time) string {
	return fmt.Sprintf("slot:%s:%s", venueID, date.Format("2006-01-02"))
}
