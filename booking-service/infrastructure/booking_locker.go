package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/draftea/booking-system/shared/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var (
	_ domain.BookingLocker = (*MemoryBookingLocker)(nil)
	_ domain.BookingLocker = (*RedisBookingLocker)(nil)
)

// MemoryBookingLocker is a try-lock keyed by booking ID, valid within one process
type MemoryBookingLocker struct {
	mu   sync.Mutex
	held map[models.ID]struct{}
}

func NewMemoryBookingLocker() *MemoryBookingLocker {
	return &MemoryBookingLocker{held: make(map[models.ID]struct{})}
}

func (l *MemoryBookingLocker) Acquire(_ context.Context, bookingID models.ID) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[bookingID]; ok {
		return nil, domain.ErrBookingLocked
	}
	l.held[bookingID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, bookingID)
			l.mu.Unlock()
		})
	}, nil
}

const (
	bookingLockPrefix     = "booking_lock:"
	defaultBookingLockTTL = 2 * time.Minute
)

// releaseScript deletes the key only if it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisBookingLocker is a try-lock shared by every instance using the same Redis.
// The TTL bounds how long a crashed holder can block a booking.
type RedisBookingLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisBookingLocker(client *redis.Client, ttl time.Duration) *RedisBookingLocker {
	if ttl <= 0 {
		ttl = defaultBookingLockTTL
	}
	return &RedisBookingLocker{client: client, ttl: ttl}
}

func (l *RedisBookingLocker) Acquire(ctx context.Context, bookingID models.ID) (func(), error) {
	key := bookingLockPrefix + bookingID.String()
	token := uuid.New().String()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire booking lock")
	}
	if !ok {
		return nil, domain.ErrBookingLocked
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()

			if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				logger.WithContext(ctx).Warn("failed to release booking lock",
					"booking_id", bookingID,
					"error", err,
				)
			}
		})
	}, nil
}
