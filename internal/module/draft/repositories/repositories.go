package repositories

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "draft:"

type repositories struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         log.Logger
}

type Repositories interface {
	// redis
	Save(ctx context.Context, draft *entity.Draft) error
	Find(ctx context.Context, id string) (*entity.Draft, error)
	Delete(ctx context.Context, id string) error
}

func New(redisClient *redis.Client, ttl time.Duration, log log.Logger) Repositories {
	return &repositories{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

// Save refreshes the draft's expiry on every write.
func (r *repositories) Save(ctx context.Context, draft *entity.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return errors.InternalServerError("error marshal draft")
	}

	if err := r.redisClient.Set(ctx, keyPrefix+draft.ID, data, r.ttl).Err(); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error save draft %s: %v", draft.ID, err))
		return errors.InternalServerError("error save draft")
	}

	return nil
}

func (r *repositories) Find(ctx context.Context, id string) (*entity.Draft, error) {
	data, err := r.redisClient.Get(ctx, keyPrefix+id).Bytes()
	if goerrors.Is(err, redis.Nil) {
		return nil, errors.NotFound("draft not found")
	}
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find draft %s: %v", id, err))
		return nil, errors.InternalServerError("error find draft")
	}

	var draft entity.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error unmarshal draft %s: %v", id, err))
		return nil, errors.InternalServerError("error read draft")
	}

	return &draft, nil
}

func (r *repositories) Delete(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, keyPrefix+id).Err(); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error delete draft %s: %v", id, err))
		return errors.InternalServerError("error delete draft")
	}
	return nil
}
