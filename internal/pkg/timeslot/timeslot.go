// Package timeslot models the daily grid of bookable slots and derives availability from existing bookings.
package timeslot

import (
	"errors"
	"fmt"
	"time"
)

// LabelLayout renders slot labels such as "05:00 PM".
const LabelLayout = "03:04 PM"

var (
	ErrUnknownSlot    = errors.New("unknown time slot")
	ErrDuplicateSlot  = errors.New("duplicate time slot")
	ErrEmptySelection = errors.New("no time slot selected")
	ErrNotContiguous  = errors.New("time slots must be consecutive")
)

type TimeSlot struct {
	Label     string `json:"time"`
	Available bool   `json:"available"`
}

// Range is an inclusive span of slot labels, as stored on a booking.
type Range struct {
	Start string `db:"start_time"`
	End   string `db:"end_time"`
}

type Grid struct {
	labels []string
	index  map[string]int
}

func NewGrid(first, last string, step time.Duration) (Grid, error) {
	if step <= 0 {
		return Grid{}, fmt.Errorf("slot step must be positive, got %s", step)
	}

	start, err := parse(first)
	if err != nil {
		return Grid{}, err
	}
	end, err := parse(last)
	if err != nil {
		return Grid{}, err
	}
	if end.Before(start) {
		return Grid{}, fmt.Errorf("last slot %q is before first slot %q", last, first)
	}

	g := Grid{index: make(map[string]int)}
	for t := start; !t.After(end); t = t.Add(step) {
		label := t.Format(LabelLayout)
		g.index[label] = len(g.labels)
		g.labels = append(g.labels, label)
	}

	return g, nil
}

func (g Grid) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Normalize maps "5:00 PM" and "05:00 PM" to the grid label, if any.
func (g Grid) Normalize(label string) (string, error) {
	t, err := parse(label)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, label)
	}
	normalized := t.Format(LabelLayout)
	if _, ok := g.index[normalized]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, label)
	}
	return normalized, nil
}

// Span returns the earliest and latest selected label by time of day. A booking
// stores only this range, so the selection must cover it without gaps.
func (g Grid) Span(labels []string) (string, string, error) {
	if len(labels) == 0 {
		return "", "", ErrEmptySelection
	}

	seen := make(map[int]bool, len(labels))
	lo, hi := len(g.labels), -1
	for _, label := range labels {
		normalized, err := g.Normalize(label)
		if err != nil {
			return "", "", err
		}
		i := g.index[normalized]
		if seen[i] {
			return "", "", fmt.Errorf("%w: %q", ErrDuplicateSlot, label)
		}
		seen[i] = true
		if i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}

	if hi-lo+1 != len(labels) {
		return "", "", fmt.Errorf("%w: %s to %s has gaps", ErrNotContiguous, g.labels[lo], g.labels[hi])
	}

	return g.labels[lo], g.labels[hi], nil
}

// Available lists every grid slot in order. Slots inside a booked range
// (both ends inclusive) or currently held by a pending checkout are unavailable.
func Available(g Grid, booked []Range, held []string) []TimeSlot {
	taken := make(map[string]bool)

	for _, label := range Overlapping(booked, g.labels) {
		taken[label] = true
	}

	for _, label := range held {
		if normalized, err := g.Normalize(label); err == nil {
			taken[normalized] = true
		}
	}

	slots := make([]TimeSlot, 0, len(g.labels))
	for _, label := range g.labels {
		slots = append(slots, TimeSlot{Label: label, Available: !taken[label]})
	}

	return slots
}

// Overlapping returns the labels that fall inside any booked range, both ends inclusive.
func Overlapping(booked []Range, labels []string) []string {
	var out []string
	for _, label := range labels {
		t, err := parse(label)
		if err != nil {
			continue
		}
		for _, r := range booked {
			start, err := parse(r.Start)
			if err != nil {
				continue
			}
			end, err := parse(r.End)
			if err != nil {
				continue
			}
			if end.Before(start) {
				start, end = end, start
			}
			if !t.Before(start) && !t.After(end) {
				out = append(out, label)
				break
			}
		}
	}
	return out
}

// Amount is count slots priced at rate minor units each.
func Amount(count int, rate int64) int64 {
	return int64(count) * rate
}

func parse(label string) (time.Time, error) {
	t, err := time.Parse("3:04 PM", label)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot label %q: %w", label, err)
	}
	return t, nil
}
