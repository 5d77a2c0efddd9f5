package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/repositories"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	log_internal "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"

	"github.com/go-redis/redismock/v9"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

var (
	redisMock redismock.ClientMock
	client    *redis.Client
	repo      repositories.Repositories
	now       = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
)

func setup() {
	client, redisMock = redismock.NewClientMock()
	repo = repositories.New(client, 2*time.Hour, log_internal.Nop())
}

func teardown() {
	client.Close()
}

func TestSave(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		draft := entity.New("d1", now)
		data, _ := json.Marshal(draft)
		redisMock.ExpectSet("draft:d1", data, 2*time.Hour).SetVal("OK")

		err := repo.Save(context.Background(), draft)

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestFind(t *testing.T) {
	setup()
	defer teardown()

	t.Run("found", func(t *testing.T) {
		draft := entity.New("d1", now)
		draft.Date = "2030-01-02"
		draft.SelectedSlots = []string{"05:00 PM"}
		data, _ := json.Marshal(draft)
		redisMock.ExpectGet("draft:d1").SetVal(string(data))

		got, err := repo.Find(context.Background(), "d1")

		assert.NoError(t, err)
		assert.Equal(t, draft, got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("expired", func(t *testing.T) {
		redisMock.ExpectGet("draft:gone").RedisNil()

		_, err := repo.Find(context.Background(), "gone")

		assert.Equal(t, errors.NotFound("draft not found"), err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	setup()
	defer teardown()

	redisMock.ExpectDel("draft:d1").SetVal(1)

	assert.NoError(t, repo.Delete(context.Background(), "d1"))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
