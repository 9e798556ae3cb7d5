package reports

import "time"

// Medical report statuses as the backend spells them.
const (
	StatusDraft     = "Draft"
	StatusCompleted = "Completed"
	StatusReviewed  = "Reviewed"
	StatusArchived  = "Archived"
)

// Statuses lists the valid report statuses in display order.
func Statuses() []string {
	return []string{StatusDraft, StatusCompleted, StatusReviewed, StatusArchived}
}

// ValidStatus reports whether s is a known report status.
func ValidStatus(s string) bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Report types offered by the authoring form.
const (
	TypeConsultation = "Consultation"
	TypeLabResult    = "Lab Result"
	TypeImaging      = "Imaging"
	TypeDischarge    = "Discharge Summary"
)

// PersonRef is the denormalized patient/doctor sub-object embedded in each
// report.
type PersonRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Report is one record of the medical reports collection.
type Report struct {
	ID              string    `json:"_id"`
	Patient         PersonRef `json:"patient"`
	Doctor          PersonRef `json:"doctor"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Findings        string    `json:"findings"`
	Recommendations string    `json:"recommendations,omitempty"`
	Status          string    `json:"status"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Draft is the create/update payload.
type Draft struct {
	PatientID       string `json:"patient"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Findings        string `json:"findings"`
	Recommendations string `json:"recommendations,omitempty"`
	Date            string `json:"date,omitempty"`
}
