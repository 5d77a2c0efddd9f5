// Package entity holds the booking draft, a step by step selection that ends in a checkout.
package entity

import (
	"fmt"
	"strings"
	"time"

	catalogEntity "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"
)

type Step string

const (
	StepChoosingActivity Step = "choosing_activity"
	StepChoosingFacility Step = "choosing_facility"
	StepChoosingSlots    Step = "choosing_slots"
	StepEnteringContact  Step = "entering_contact"
	StepSubmitting       Step = "submitting"
	StepSucceeded        Step = "succeeded"
	StepFailed           Step = "failed"
)

type Draft struct {
	ID            string                   `json:"id"`
	Step          Step                     `json:"step"`
	Activity      *catalogEntity.Activity  `json:"activity,omitempty"`
	Facility      *catalogEntity.Facility  `json:"facility,omitempty"`
	Date          string                   `json:"date,omitempty"`
	SelectedSlots []string                 `json:"selected_slots"`
	CustomerEmail string                   `json:"customer_email,omitempty"`
	CustomerPhone string                   `json:"customer_phone,omitempty"`
	Facilities    []catalogEntity.Facility `json:"facilities,omitempty"`
	Slots         []timeslot.TimeSlot      `json:"slots,omitempty"`
	CheckoutURL   string                   `json:"checkout_url,omitempty"`
	OrderID       string                   `json:"order_id,omitempty"`
	LastError     string                   `json:"last_error,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func New(id string, now time.Time) *Draft {
	return &Draft{
		ID:            id,
		Step:          StepChoosingActivity,
		SelectedSlots: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func illegal(op string, step Step) error {
	return errors.IllegalTransition(fmt.Sprintf("cannot %s while %s", op, step))
}

// SelectActivity picks the activity and its facilities. A different activity
// drops the facility, date and slots chosen for the previous one.
func (d *Draft) SelectActivity(activity catalogEntity.Activity, facilities []catalogEntity.Facility) error {
	if d.Step != StepChoosingActivity {
		return illegal("select an activity", d.Step)
	}

	if d.Activity == nil || d.Activity.ID != activity.ID {
		d.Facility = nil
		d.Date = ""
		d.Slots = nil
		d.SelectedSlots = []string{}
	}

	a := activity
	d.Activity = &a
	d.Facilities = facilities
	d.Step = StepChoosingFacility
	return nil
}

func (d *Draft) SelectFacility(facility catalogEntity.Facility) error {
	if d.Step != StepChoosingFacility {
		return illegal("select a facility", d.Step)
	}
	if d.Activity == nil || facility.ActivityID != d.Activity.ID {
		return errors.InvalidRequest("facility does not belong to the selected activity")
	}
	if !facility.IsAvailable {
		return errors.InvalidRequest(fmt.Sprintf("facility %s is not available", facility.Name))
	}

	if d.Facility == nil || d.Facility.ID != facility.ID {
		d.Date = ""
		d.Slots = nil
		d.SelectedSlots = []string{}
	}

	f := facility
	d.Facility = &f
	d.Step = StepChoosingSlots
	return nil
}

// SetAvailability loads the slots of date. Picking another date clears the selection.
func (d *Draft) SetAvailability(date string, slots []timeslot.TimeSlot) error {
	if d.Step != StepChoosingSlots {
		return illegal("choose a date", d.Step)
	}

	if d.Date != date {
		d.SelectedSlots = []string{}
	}
	d.Date = date
	d.Slots = slots
	return nil
}

// ToggleSlot removes label when selected and appends it otherwise.
func (d *Draft) ToggleSlot(label string) error {
	if d.Step != StepChoosingSlots {
		return illegal("toggle a slot", d.Step)
	}

	for i, s := range d.SelectedSlots {
		if s == label {
			d.SelectedSlots = append(d.SelectedSlots[:i:i], d.SelectedSlots[i+1:]...)
			return nil
		}
	}

	available := false
	for _, s := range d.Slots {
		if s.Label == label {
			available = s.Available
			break
		}
	}
	if !available {
		return errors.InvalidRequest(fmt.Sprintf("time slot %s is not available", label))
	}

	d.SelectedSlots = append(d.SelectedSlots, label)
	return nil
}

func (d *Draft) ConfirmSlots() error {
	if d.Step != StepChoosingSlots {
		return illegal("confirm slots", d.Step)
	}
	if d.Date == "" {
		return errors.InvalidRequest("choose a date first")
	}
	if len(d.SelectedSlots) == 0 {
		return errors.InvalidRequest("select at least one time slot")
	}
	if !d.contiguous() {
		return errors.InvalidRequest("selected time slots must be consecutive")
	}

	d.Step = StepEnteringContact
	return nil
}

// contiguous reports whether the selection has no gaps in the loaded slot order.
func (d *Draft) contiguous() bool {
	position := make(map[string]int, len(d.Slots))
	for i, s := range d.Slots {
		position[s.Label] = i
	}

	lo, hi := len(d.Slots), -1
	for _, label := range d.SelectedSlots {
		i, ok := position[label]
		if !ok {
			return false
		}
		if i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	return hi-lo+1 == len(d.SelectedSlots)
}

// TotalAmount is the price of the selected slots in minor units.
func (d *Draft) TotalAmount() int64 {
	if d.Activity == nil {
		return 0
	}
	return timeslot.Amount(len(d.SelectedSlots), d.Activity.HourlyRate)
}

func (d *Draft) BeginSubmit(email, phone string) error {
	if d.Step != StepEnteringContact && d.Step != StepFailed {
		return illegal("submit", d.Step)
	}
	if !strings.Contains(email, "@") {
		return errors.InvalidRequest("a valid email is required")
	}
	if strings.TrimSpace(phone) == "" {
		return errors.InvalidRequest("a phone number is required")
	}

	d.CustomerEmail = email
	d.CustomerPhone = phone
	d.LastError = ""
	d.Step = StepSubmitting
	return nil
}

func (d *Draft) Succeed(checkoutURL, orderID string) error {
	if d.Step != StepSubmitting {
		return illegal("complete", d.Step)
	}
	d.CheckoutURL = checkoutURL
	d.OrderID = orderID
	d.Step = StepSucceeded
	return nil
}

// Fail keeps every selection so the customer can fix the input and resubmit.
func (d *Draft) Fail(msg string) error {
	if d.Step != StepSubmitting {
		return illegal("fail", d.Step)
	}
	d.LastError = msg
	d.Step = StepFailed
	return nil
}

// Back returns to the previous step without dropping selections.
func (d *Draft) Back() error {
	switch d.Step {
	case StepChoosingFacility:
		d.Step = StepChoosingActivity
	case StepChoosingSlots:
		d.Step = StepChoosingFacility
	case StepEnteringContact:
		d.Step = StepChoosingSlots
	case StepFailed:
		d.Step = StepEnteringContact
	default:
		return illegal("go back", d.Step)
	}
	return nil
}
