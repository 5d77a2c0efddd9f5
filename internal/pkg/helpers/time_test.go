package helpers_test

import (
	"testing"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"

	"github.com/stretchr/testify/assert"
)

func TestIsPastDate(t *testing.T) {
	t.Run("yesterday", func(t *testing.T) {
		assert.True(t, helpers.IsPastDate(time.Now().AddDate(0, 0, -1).Format(helpers.DateLayout)))
	})

	t.Run("today", func(t *testing.T) {
		assert.False(t, helpers.IsPastDate(helpers.Today()))
	})

	t.Run("tomorrow", func(t *testing.T) {
		assert.False(t, helpers.IsPastDate(time.Now().AddDate(0, 0, 1).Format(helpers.DateLayout)))
	})
}
