package hmstest

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hms/portal/internal/domain/appointments"
	"github.com/hms/portal/internal/domain/caretasks"
	"github.com/hms/portal/internal/domain/equipment"
	"github.com/hms/portal/internal/domain/prescriptions"
	"github.com/hms/portal/internal/domain/reports"
	"github.com/hms/portal/internal/domain/users"
	"github.com/hms/portal/internal/platform/auth"
)

// Store holds the fake hospital's data in memory. Collections are kept
// newest-first, matching the ordering the real backend returns.
type Store struct {
	mu sync.Mutex

	appointments  []appointments.Appointment
	tasks         []caretasks.Task
	reports       []reports.Report
	prescriptions []prescriptions.Prescription
	equipment     []equipment.Item
	users         []users.User
}

func NewStore() *Store {
	return &Store{}
}

// Seed loads a small representative data set covering every collection and
// status, enough for pagination and filtering to be observable.
func (s *Store) Seed() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	s.users = []users.User{
		{ID: "user-admin", FirstName: "Olive", LastName: "Mensah", Email: "olive@hospital.test", Role: auth.RoleAdmin},
		{ID: "user-doc-1", FirstName: "Grace", LastName: "Obi", Email: "grace@hospital.test", Role: auth.RoleDoctor},
		{ID: "user-doc-2", FirstName: "Henrik", LastName: "Dahl", Email: "henrik@hospital.test", Role: auth.RoleDoctor},
		{ID: "user-nurse-1", FirstName: "Marta", LastName: "Kowalska", Email: "marta@hospital.test", Role: auth.RoleNurse},
		{ID: "user-recep-1", FirstName: "Sam", LastName: "Iwu", Email: "sam@hospital.test", Role: auth.RoleReceptionist},
		{ID: "user-pat-1", FirstName: "Noor", LastName: "Haddad", Email: "noor@hospital.test", Role: auth.RolePatient},
		{ID: "user-pat-2", FirstName: "Felix", LastName: "Brandt", Email: "felix@hospital.test", Role: auth.RolePatient},
		{ID: "user-pat-3", FirstName: "Ines", LastName: "Costa", Email: "ines@hospital.test", Role: auth.RolePatient},
	}

	doc1 := s.personLocked("user-doc-1")
	doc2 := s.personLocked("user-doc-2")
	pat1 := s.personLocked("user-pat-1")
	pat2 := s.personLocked("user-pat-2")
	pat3 := s.personLocked("user-pat-3")

	today := now.Truncate(24 * time.Hour)
	s.appointments = []appointments.Appointment{
		{ID: "appt-1", Patient: pat1, Doctor: doc1, Date: today, Time: "09:00", Reason: "Annual checkup", Status: appointments.StatusScheduled, CreatedAt: now},
		{ID: "appt-2", Patient: pat2, Doctor: doc1, Date: today, Time: "10:30", Reason: "Back pain follow-up", Status: appointments.StatusInProgress, CreatedAt: now.Add(-time.Hour)},
		{ID: "appt-3", Patient: pat3, Doctor: doc2, Date: today.AddDate(0, 0, 1), Time: "14:00", Reason: "Vaccination", Status: appointments.StatusScheduled, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "appt-4", Patient: pat1, Doctor: doc2, Date: today.AddDate(0, 0, -1), Time: "11:00", Reason: "Blood test results", Status: appointments.StatusCompleted, CreatedAt: now.Add(-26 * time.Hour)},
		{ID: "appt-5", Patient: pat2, Doctor: doc1, Date: today.AddDate(0, 0, -2), Time: "16:00", Reason: "Dermatology consult", Status: appointments.StatusCancelled, CreatedAt: now.Add(-50 * time.Hour)},
	}

	toTaskPerson := func(p appointments.PersonRef) caretasks.PersonRef {
		return caretasks.PersonRef{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
	}
	nurse := s.personLocked("user-nurse-1")
	s.tasks = []caretasks.Task{
		{ID: "task-1", Patient: toTaskPerson(pat1), AssignedTo: toTaskPerson(nurse), Title: "Check vitals", Description: "Every 4 hours", Priority: "high", Status: caretasks.StatusPending, DueDate: today, CreatedAt: now},
		{ID: "task-2", Patient: toTaskPerson(pat2), AssignedTo: toTaskPerson(nurse), Title: "Change dressing", Priority: "medium", Status: caretasks.StatusInProgress, DueDate: today, CreatedAt: now.Add(-time.Hour)},
		{ID: "task-3", Patient: toTaskPerson(pat3), AssignedTo: toTaskPerson(nurse), Title: "Administer medication", Priority: "high", Status: caretasks.StatusCompleted, DueDate: today.AddDate(0, 0, -1), CreatedAt: now.Add(-25 * time.Hour)},
	}

	toReportPerson := func(p appointments.PersonRef) reports.PersonRef {
		return reports.PersonRef{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
	}
	s.reports = []reports.Report{
		{ID: "report-1", Patient: toReportPerson(pat1), Doctor: toReportPerson(doc1), Type: reports.TypeConsultation, Title: "Annual checkup notes", Findings: "Unremarkable", Status: reports.StatusDraft, Date: today, CreatedAt: now},
		{ID: "report-2", Patient: toReportPerson(pat2), Doctor: toReportPerson(doc1), Type: reports.TypeLabResult, Title: "Blood panel", Findings: "Elevated cholesterol", Recommendations: "Diet adjustment", Status: reports.StatusCompleted, Date: today.AddDate(0, 0, -1), CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "report-3", Patient: toReportPerson(pat3), Doctor: toReportPerson(doc2), Type: reports.TypeImaging, Title: "Chest X-ray", Findings: "Clear", Status: reports.StatusReviewed, Date: today.AddDate(0, 0, -3), CreatedAt: now.Add(-72 * time.Hour)},
	}

	toRxPerson := func(p appointments.PersonRef) prescriptions.PersonRef {
		return prescriptions.PersonRef{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
	}
	s.prescriptions = []prescriptions.Prescription{
		{ID: "rx-1", Patient: toRxPerson(pat1), Doctor: toRxPerson(doc1), Medication: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days", Status: prescriptions.StatusActive, StartDate: today, CreatedAt: now},
		{ID: "rx-2", Patient: toRxPerson(pat2), Doctor: toRxPerson(doc1), Medication: "Ibuprofen", Dosage: "400mg", Frequency: "as needed", Status: prescriptions.StatusActive, StartDate: today.AddDate(0, 0, -2), CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "rx-3", Patient: toRxPerson(pat3), Doctor: toRxPerson(doc2), Medication: "Lisinopril", Dosage: "10mg", Frequency: "1x daily", Duration: "30 days", Status: prescriptions.StatusCompleted, StartDate: today.AddDate(0, 0, -40), CreatedAt: now.Add(-960 * time.Hour)},
	}

	s.equipment = []equipment.Item{
		{ID: "equip-1", Name: "Centrifuge", SerialNumber: "CF-100", Manufacturer: "LabCorp", Location: "Lab 1", Status: equipment.StatusOperational, CreatedAt: now},
		{ID: "equip-2", Name: "Microscope", SerialNumber: "MS-7", Manufacturer: "Zeiss", Location: "Lab 2", Status: equipment.StatusMaintenance, CreatedAt: now.Add(-time.Hour)},
		{ID: "equip-3", Name: "Hematology analyzer", SerialNumber: "AN-3", Manufacturer: "Sysmex", Location: "Lab 1", Status: equipment.StatusOutOfService, CreatedAt: now.Add(-2 * time.Hour)},
	}

	return s
}

// personLocked resolves a user id into the denormalized reference embedded
// in other records. Callers must hold mu.
func (s *Store) personLocked(id string) appointments.PersonRef {
	for _, u := range s.users {
		if u.ID == id {
			return appointments.PersonRef{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
		}
	}
	return appointments.PersonRef{ID: id}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
