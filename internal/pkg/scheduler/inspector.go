package scheduler

import (
	"github.com/GLCRealm/cyber-lane-reservations/config"

	"github.com/hibiken/asynq"
)

func (s *Scheduler) InitInspector(cfg *config.RedisConfig) *asynq.Inspector {
	return asynq.NewInspector(redisOpt(cfg))
}
