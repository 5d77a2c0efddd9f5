package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// Locker hands out cluster wide mutexes keyed by name.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type redisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	tries  int
	log    log.Logger
}

func New(client *redis.Client, expiry time.Duration, tries int, log log.Logger) Locker {
	return &redisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
		tries:  tries,
		log:    log,
	}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex("lock:"+key, redsync.WithExpiry(l.expiry), redsync.WithTries(l.tries))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}

	return func() {
		// the caller's context may already be done
		if ok, err := mutex.UnlockContext(context.Background()); !ok || err != nil {
			l.log.Warn(ctx, fmt.Sprintf("error release lock %s: %v", key, err))
		}
	}, nil
}
