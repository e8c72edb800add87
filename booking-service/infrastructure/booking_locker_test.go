package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBookingLocker(t *testing.T) {
	locker := NewMemoryBookingLocker()
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "b-1")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "b-1")
	assert.ErrorIs(t, err, domain.ErrBookingLocked)

	otherRelease, err := locker.Acquire(ctx, "b-2")
	require.NoError(t, err)
	otherRelease()

	release()
	release()

	again, err := locker.Acquire(ctx, "b-1")
	require.NoError(t, err)
	again()
}

func newRedisLocker(t *testing.T, ttl time.Duration) (*RedisBookingLocker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisBookingLocker(client, ttl), mr
}

func TestRedisBookingLocker(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Minute)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("booking_lock:b-1"))

	_, err = locker.Acquire(ctx, "b-1")
	assert.ErrorIs(t, err, domain.ErrBookingLocked)

	release()
	assert.False(t, mr.Exists("booking_lock:b-1"))

	again, err := locker.Acquire(ctx, "b-1")
	require.NoError(t, err)
	again()
}

func TestRedisBookingLocker_ExpiredLockIsNotStolenBack(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Minute)
	ctx := context.Background()

	staleRelease, err := locker.Acquire(ctx, "b-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	release, err := locker.Acquire(ctx, "b-1")
	require.NoError(t, err)

	// The first holder's release must not delete the second holder's lock
	staleRelease()
	assert.True(t, mr.Exists("booking_lock:b-1"))

	release()
	assert.False(t, mr.Exists("booking_lock:b-1"))
}

func TestRedisBookingLocker_Unreachable(t *testing.T) {
	locker, mr := newRedisLocker(t, 0)
	mr.Close()

	_, err := locker.Acquire(context.Background(), "b-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBookingLocked)
}
