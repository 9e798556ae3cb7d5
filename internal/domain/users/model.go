package users

import "github.com/hms/portal/internal/platform/auth"

// User is one account in the hospital directory. The screens use it to
// populate patient and doctor pickers on their create forms.
type User struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
}

// FullName renders the display name the way the screens show it.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
