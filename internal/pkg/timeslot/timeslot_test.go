package timeslot_test

import (
	"testing"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T) timeslot.Grid {
	g, err := timeslot.NewGrid("04:30 PM", "08:00 PM", 30*time.Minute)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	t.Run("default cafe grid", func(t *testing.T) {
		g := newGrid(t)

		assert.Equal(t, []string{
			"04:30 PM", "05:00 PM", "05:30 PM", "06:00 PM",
			"06:30 PM", "07:00 PM", "07:30 PM", "08:00 PM",
		}, g.Labels())
	})

	t.Run("last before first", func(t *testing.T) {
		_, err := timeslot.NewGrid("08:00 PM", "04:30 PM", 30*time.Minute)
		assert.Error(t, err)
	})

	t.Run("invalid step", func(t *testing.T) {
		_, err := timeslot.NewGrid("04:30 PM", "08:00 PM", 0)
		assert.Error(t, err)
	})
}

func TestAvailable(t *testing.T) {
	g := newGrid(t)

	t.Run("nothing booked", func(t *testing.T) {
		slots := timeslot.Available(g, nil, nil)

		assert.Len(t, slots, 8)
		for _, s := range slots {
			assert.True(t, s.Available, s.Label)
		}
	})

	t.Run("booked range is inclusive", func(t *testing.T) {
		slots := timeslot.Available(g, []timeslot.Range{{Start: "05:00 PM", End: "06:00 PM"}}, nil)

		got := map[string]bool{}
		for _, s := range slots {
			got[s.Label] = s.Available
		}
		assert.True(t, got["04:30 PM"])
		assert.False(t, got["05:00 PM"])
		assert.False(t, got["05:30 PM"])
		assert.False(t, got["06:00 PM"])
		assert.True(t, got["06:30 PM"])
	})

	t.Run("reversed range and held slots", func(t *testing.T) {
		slots := timeslot.Available(g,
			[]timeslot.Range{{Start: "07:30 PM", End: "07:00 PM"}},
			[]string{"4:30 PM", "not a slot"},
		)

		got := map[string]bool{}
		for _, s := range slots {
			got[s.Label] = s.Available
		}
		assert.False(t, got["04:30 PM"])
		assert.False(t, got["07:00 PM"])
		assert.False(t, got["07:30 PM"])
		assert.True(t, got["08:00 PM"])
	})

	t.Run("deterministic", func(t *testing.T) {
		booked := []timeslot.Range{{Start: "05:00 PM", End: "05:30 PM"}}
		assert.Equal(t, timeslot.Available(g, booked, nil), timeslot.Available(g, booked, nil))
	})
}

func TestSpan(t *testing.T) {
	g := newGrid(t)

	testCases := []struct {
		name      string
		labels    []string
		wantStart string
		wantEnd   string
		wantErr   error
	}{
		{name: "selection order does not matter", labels: []string{"06:00 PM", "05:00 PM", "05:30 PM"}, wantStart: "05:00 PM", wantEnd: "06:00 PM"},
		{name: "single slot", labels: []string{"5:00 PM"}, wantStart: "05:00 PM", wantEnd: "05:00 PM"},
		{name: "empty", labels: nil, wantErr: timeslot.ErrEmptySelection},
		{name: "off grid", labels: []string{"09:00 PM"}, wantErr: timeslot.ErrUnknownSlot},
		{name: "duplicate", labels: []string{"05:00 PM", "5:00 PM"}, wantErr: timeslot.ErrDuplicateSlot},
		{name: "gap between slots", labels: []string{"05:00 PM", "07:00 PM"}, wantErr: timeslot.ErrNotContiguous},
		{name: "gap in a longer selection", labels: []string{"04:30 PM", "05:00 PM", "06:00 PM"}, wantErr: timeslot.ErrNotContiguous},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := g.Span(tc.labels)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestOverlapping(t *testing.T) {
	booked := []timeslot.Range{{Start: "05:00 PM", End: "05:30 PM"}}

	t.Run("overlap at the range ends", func(t *testing.T) {
		got := timeslot.Overlapping(booked, []string{"04:30 PM", "05:30 PM", "06:00 PM"})

		assert.Equal(t, []string{"05:30 PM"}, got)
	})

	t.Run("adjacent selection is free", func(t *testing.T) {
		assert.Empty(t, timeslot.Overlapping(booked, []string{"06:00 PM", "06:30 PM"}))
	})

	t.Run("a booked span blocks only what was paid for", func(t *testing.T) {
		g := newGrid(t)
		start, end, err := g.Span([]string{"05:00 PM", "05:30 PM"})
		assert.NoError(t, err)

		blocked := timeslot.Overlapping([]timeslot.Range{{Start: start, End: end}}, g.Labels())

		assert.Len(t, blocked, 2)
	})
}

func TestAmount(t *testing.T) {
	for k := 0; k <= 8; k++ {
		assert.Equal(t, int64(k)*50000, timeslot.Amount(k, 50000))
	}
	assert.Equal(t, int64(100000), timeslot.Amount(2, 50000))
}
