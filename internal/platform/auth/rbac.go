package auth

import "fmt"

// Role is the portal role a session acts under.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePatient      Role = "patient"
)

// ParseRole validates a role string from a token or config.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Capability names one thing a screen lets a role do. "view" covers listing
// and filtering; "manage" covers create, status changes and deletion.
type Capability string

const (
	CapAppointmentsView    Capability = "appointments:view"
	CapAppointmentsManage  Capability = "appointments:manage"
	CapCareTasksView       Capability = "care-tasks:view"
	CapCareTasksManage     Capability = "care-tasks:manage"
	CapReportsView         Capability = "reports:view"
	CapReportsManage       Capability = "reports:manage"
	CapPrescriptionsView   Capability = "prescriptions:view"
	CapPrescriptionsManage Capability = "prescriptions:manage"
	CapEquipmentView       Capability = "equipment:view"
	CapEquipmentManage     Capability = "equipment:manage"
	CapUsersView           Capability = "users:view"
)

// roleCapabilities is pure data: what each role may do. Admin is handled in
// Can, not enumerated here.
var roleCapabilities = map[Role][]Capability{
	RoleDoctor: {
		CapAppointmentsView, CapAppointmentsManage,
		CapCareTasksView,
		CapReportsView, CapReportsManage,
		CapPrescriptionsView, CapPrescriptionsManage,
		CapUsersView,
	},
	RoleNurse: {
		CapAppointmentsView,
		CapCareTasksView, CapCareTasksManage,
		CapPrescriptionsView,
		CapEquipmentView, CapEquipmentManage,
		CapUsersView,
	},
	RoleReceptionist: {
		CapAppointmentsView, CapAppointmentsManage,
		CapEquipmentView,
		CapUsersView,
	},
	RolePatient: {
		CapAppointmentsView,
		CapReportsView,
		CapPrescriptionsView,
	},
}

// Can reports whether the role holds the capability. Admin holds all of
// them.
func (r Role) Can(c Capability) bool {
	if r == RoleAdmin {
		return true
	}
	for _, held := range roleCapabilities[r] {
		if held == c {
			return true
		}
	}
	return false
}

// Capabilities returns the role's capability list.
func (r Role) Capabilities() []Capability {
	if r == RoleAdmin {
		return []Capability{
			CapAppointmentsView, CapAppointmentsManage,
			CapCareTasksView, CapCareTasksManage,
			CapReportsView, CapReportsManage,
			CapPrescriptionsView, CapPrescriptionsManage,
			CapEquipmentView, CapEquipmentManage,
			CapUsersView,
		}
	}
	return roleCapabilities[r]
}
