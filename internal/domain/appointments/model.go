package appointments

import "time"

// Appointment statuses as the backend spells them.
const (
	StatusScheduled  = "Scheduled"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Statuses lists the valid appointment statuses in display order.
func Statuses() []string {
	return []string{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}
}

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// PersonRef is the denormalized patient/doctor sub-object the backend embeds
// in each appointment so the portal needs no second lookup.
type PersonRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Appointment is one record of the appointments collection.
type Appointment struct {
	ID        string    `json:"_id"`
	Patient   PersonRef `json:"patient"`
	Doctor    PersonRef `json:"doctor"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Draft is the create payload. It mirrors the POST body and never aliases a
// fetched Appointment.
type Draft struct {
	PatientID string `json:"patient"`
	DoctorID  string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
}
