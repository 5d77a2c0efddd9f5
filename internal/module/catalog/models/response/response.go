package response

import "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

type Availability struct {
	FacilityID string              `json:"facility_id"`
	Date       string              `json:"date"`
	Slots      []timeslot.TimeSlot `json:"slots"`
}
