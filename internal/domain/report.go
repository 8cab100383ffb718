package domain

// ReportForm carries the user-entered fields of a live-crime report.
// Location and evidence are owned by the composer session, not the form.
type ReportForm struct {
	Category          CrimeCategory `json:"category" validate:"required,crime_category"`
	Description       string        `json:"description" validate:"required,min=20"`
	InProgress        bool          `json:"in_progress"`
	EmergencyContacts []string      `json:"emergency_contacts" validate:"omitempty,dive,required"`
}
