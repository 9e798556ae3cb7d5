package caretasks

import "time"

// Care task statuses as the backend spells them.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Statuses lists the valid care task statuses in display order.
func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// ValidStatus reports whether s is a known care task status.
func ValidStatus(s string) bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// PersonRef is the denormalized patient/nurse sub-object embedded in each
// task.
type PersonRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Task is one record of the care tasks collection.
type Task struct {
	ID          string    `json:"_id"`
	Patient     PersonRef `json:"patient"`
	AssignedTo  PersonRef `json:"assignedTo"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority,omitempty"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft is the create payload.
type Draft struct {
	PatientID   string `json:"patient"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate"`
}
