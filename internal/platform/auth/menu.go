package auth

// MenuItem is one entry of the role-conditional navigation.
type MenuItem struct {
	Label      string
	Path       string
	Capability Capability
}

// menu is the full navigation in display order; MenuFor filters it down per
// role. Composition is a lookup, not a hierarchy.
var menu = []MenuItem{
	{Label: "Appointments", Path: "/appointments", Capability: CapAppointmentsView},
	{Label: "Care Tasks", Path: "/care-tasks", Capability: CapCareTasksView},
	{Label: "Medical Reports", Path: "/medical-reports", Capability: CapReportsView},
	{Label: "Prescriptions", Path: "/prescriptions", Capability: CapPrescriptionsView},
	{Label: "Lab Equipment", Path: "/lab-equipment", Capability: CapEquipmentView},
	{Label: "Staff & Patients", Path: "/users", Capability: CapUsersView},
}

// MenuFor returns the navigation items visible to the role.
func MenuFor(r Role) []MenuItem {
	var items []MenuItem
	for _, item := range menu {
		if r.Can(item.Capability) {
			items = append(items, item)
		}
	}
	return items
}
