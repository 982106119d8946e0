package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rawatanuj07/eventease/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, ttl), mr
}

func TestRedisLocker_LockUnlock(t *testing.T) {
	l, mr := newTestLocker(t, time.Second)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "booking:evt:user")
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+"booking:evt:user"))

	_, err = l.Lock(ctx, "booking:evt:user")
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdateConflict)

	unlock()
	assert.False(t, mr.Exists(keyPrefix+"booking:evt:user"))

	unlock2, err := l.Lock(ctx, "booking:evt:user")
	require.NoError(t, err)
	unlock2()
}

func TestRedisLocker_DifferentKeys(t *testing.T) {
	l, _ := newTestLocker(t, time.Second)
	ctx := context.Background()

	unlockA, err := l.Lock(ctx, "booking:evt:a")
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := l.Lock(ctx, "booking:evt:b")
	require.NoError(t, err)
	defer unlockB()
}

func TestRedisLocker_ExpiredLockIsNotStolen(t *testing.T) {
	l, mr := newTestLocker(t, time.Second)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "k")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	unlockOther, err := l.Lock(ctx, "k")
	require.NoError(t, err)

	// the first holder's release must not remove the second holder's key
	unlock()
	assert.True(t, mr.Exists(keyPrefix+"k"))

	unlockOther()
	assert.False(t, mr.Exists(keyPrefix+"k"))
}

func TestRedisLocker_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	l := NewRedisLocker(client, time.Second)

	_, err := l.Lock(context.Background(), "k")

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
