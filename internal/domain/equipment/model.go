package equipment

import "time"

// Equipment statuses as the backend spells them.
const (
	StatusOperational  = "Operational"
	StatusMaintenance  = "Maintenance"
	StatusOutOfService = "Out of Service"
)

// Statuses lists the valid equipment statuses in display order.
func Statuses() []string {
	return []string{StatusOperational, StatusMaintenance, StatusOutOfService}
}

// ValidStatus reports whether s is a known equipment status.
func ValidStatus(s string) bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Item is one machine in the lab equipment inventory.
type Item struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	SerialNumber    string    `json:"serialNumber"`
	Manufacturer    string    `json:"manufacturer,omitempty"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	LastMaintenance time.Time `json:"lastMaintenance,omitempty"`
	NextMaintenance time.Time `json:"nextMaintenance,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Draft is the payload for registering new equipment or editing an existing
// entry.
type Draft struct {
	Name            string `json:"name"`
	SerialNumber    string `json:"serialNumber"`
	Manufacturer    string `json:"manufacturer,omitempty"`
	Location        string `json:"location"`
	LastMaintenance string `json:"lastMaintenance,omitempty"`
	NextMaintenance string `json:"nextMaintenance,omitempty"`
}
