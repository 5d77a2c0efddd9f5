package request

type SelectActivity struct {
	ActivityID string `json:"activityId" validate:"required"`
}

type SelectFacility struct {
	FacilityID string `json:"facilityId" validate:"required"`
}

type SelectDate struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type ToggleSlot struct {
	Time string `json:"time" validate:"required"`
}

type Contact struct {
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}
