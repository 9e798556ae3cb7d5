package prescriptions

import "time"

// Prescription statuses as the backend spells them.
const (
	StatusActive       = "Active"
	StatusCompleted    = "Completed"
	StatusDiscontinued = "Discontinued"
)

// Statuses lists the valid prescription statuses in display order.
func Statuses() []string {
	return []string{StatusActive, StatusCompleted, StatusDiscontinued}
}

// ValidStatus reports whether s is a known prescription status.
func ValidStatus(s string) bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// PersonRef is the denormalized patient/doctor sub-object embedded in each
// prescription.
type PersonRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Prescription is one record of the prescriptions collection.
type Prescription struct {
	ID         string    `json:"_id"`
	Patient    PersonRef `json:"patient"`
	Doctor     PersonRef `json:"doctor"`
	Medication string    `json:"medication"`
	Dosage     string    `json:"dosage"`
	Frequency  string    `json:"frequency"`
	Duration   string    `json:"duration,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"startDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Draft is the create payload.
type Draft struct {
	PatientID  string `json:"patient"`
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency"`
	Duration   string `json:"duration,omitempty"`
	Notes      string `json:"notes,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
}
