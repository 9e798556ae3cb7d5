package hmstest

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/portal/internal/domain/appointments"
	"github.com/hms/portal/internal/domain/caretasks"
	"github.com/hms/portal/internal/domain/equipment"
	"github.com/hms/portal/internal/domain/prescriptions"
	"github.com/hms/portal/internal/domain/reports"
	"github.com/hms/portal/internal/domain/users"
	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/internal/platform/auth"
	"github.com/hms/portal/pkg/pagination"
)

// -- Appointments --

func (s *Server) listAppointments(c echo.Context) error {
	pg := pagination.FromContext(c)
	status := c.QueryParam("status")
	date := c.QueryParam("date")
	doctor := c.QueryParam("doctor")
	patient := c.QueryParam("patient")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var matched []appointments.Appointment
	for _, a := range s.store.appointments {
		if status != "" && a.Status != status {
			continue
		}
		if date != "" && a.Date.Format(listview.DateLayout) != date {
			continue
		}
		if doctor != "" && a.Doctor.ID != doctor {
			continue
		}
		if patient != "" && a.Patient.ID != patient {
			continue
		}
		matched = append(matched, a)
	}

	state := pagination.Paginate(len(matched), pg)
	page := slicePage(matched, state.Page, pg.Limit)
	return c.JSON(http.StatusOK, map[string]any{
		"appointments": page,
		"pagination":   state.Envelope("totalAppointments"),
	})
}

func (s *Server) createAppointment(c echo.Context) error {
	var d appointments.Draft
	if err := c.Bind(&d); err != nil {
		return badRequest(err.Error())
	}
	if d.PatientID == "" || d.DoctorID == "" || d.Date == "" || d.Time == "" || d.Reason == "" {
		return badRequest("patient, doctor, date, time and reason are required")
	}
	date, err := time.Parse(listview.DateLayout, d.Date)
	if err != nil {
		return badRequest("date must be YYYY-MM-DD")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	a := appointments.Appointment{
		ID:        newID("appt"),
		Patient:   s.store.personLocked(d.PatientID),
		Doctor:    s.store.personLocked(d.DoctorID),
		Date:      date,
		Time:      d.Time,
		Reason:    d.Reason,
		Notes:     d.Notes,
		Status:    appointments.StatusScheduled,
		CreatedAt: time.Now().UTC(),
	}
	s.store.appointments = append([]appointments.Appointment{a}, s.store.appointments...)
	return c.JSON(http.StatusCreated, a)
}

func (s *Server) updateAppointmentStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(err.Error())
	}
	if !appointments.ValidStatus(body.Status) {
		return badRequest("unknown status " + body.Status)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.appointments {
		if s.store.appointments[i].ID == c.Param("id") {
			s.store.appointments[i].Status = body.Status
			return c.JSON(http.StatusOK, s.store.appointments[i])
		}
	}
	return notFound("appointment")
}

func (s *Server) deleteAppointment(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.appointments {
		if s.store.appointments[i].ID == c.Param("id") {
			s.store.appointments = append(s.store.appointments[:i], s.store.appointments[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "appointment deleted"})
		}
	}
	return notFound("appointment")
}

// -- Care tasks --

// listTasks answers with a bare array, like the endpoint it imitates.
func (s *Server) listTasks(c echo.Context) error {
	patient := c.QueryParam("patient")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	matched := []caretasks.Task{}
	for _, t := range s.store.tasks {
		if patient != "" && t.Patient.ID != patient {
			continue
		}
		matched = append(matched, t)
	}
	return c.JSON(http.StatusOK, matched)
}

func (s *Server) createTask(c echo.Context) error {
	var d caretasks.Draft
	if err := c.Bind(&d); err != nil {
		return badRequest(err.Error())
	}
	if d.PatientID == "" || d.Title == "" || d.DueDate == "" {
		return badRequest("patient, title and dueDate are required")
	}
	due, err := time.Parse(listview.DateLayout, d.DueDate)
	if err != nil {
		return badRequest("dueDate must be YYYY-MM-DD")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	patient := s.store.personLocked(d.PatientID)
	t := caretasks.Task{
		ID:          newID("task"),
		Patient:     caretasks.PersonRef{ID: patient.ID, FirstName: patient.FirstName, LastName: patient.LastName},
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Status:      caretasks.StatusPending,
		DueDate:     due,
		CreatedAt:   time.Now().UTC(),
	}
	s.store.tasks = append([]caretasks.Task{t}, s.store.tasks...)
	return c.JSON(http.StatusCreated, t)
}

func (s *Server) updateTaskStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(err.Error())
	}
	if !caretasks.ValidStatus(body.Status) {
		return badRequest("unknown status " + body.Status)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.tasks {
		if s.store.tasks[i].ID == c.Param("id") {
			s.store.tasks[i].Status = body.Status
			return c.JSON(http.StatusOK, s.store.tasks[i])
		}
	}
	return notFound("care task")
}

func (s *Server) deleteTask(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.tasks {
		if s.store.tasks[i].ID == c.Param("id") {
			s.store.tasks = append(s.store.tasks[:i], s.store.tasks[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "care task deleted"})
		}
	}
	return notFound("care task")
}

// -- Medical reports --

func (s *Server) listReports(c echo.Context) error {
	pg := pagination.FromContext(c)
	status := c.QueryParam("status")
	reportType := c.QueryParam("type")
	doctor := c.QueryParam("doctor")
	patient := c.QueryParam("patient")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var matched []reports.Report
	for _, r := range s.store.reports {
		if status != "" && r.Status != status {
			continue
		}
		if reportType != "" && r.Type != reportType {
			continue
		}
		if doctor != "" && r.Doctor.ID != doctor {
			continue
		}
		if patient != "" && r.Patient.ID != patient {
			continue
		}
		matched = append(matched, r)
	}

	state := pagination.Paginate(len(matched), pg)
	page := slicePage(matched, state.Page, pg.Limit)
	return c.JSON(http.StatusOK, map[string]any{
		"reports":    page,
		"pagination": state.Envelope("totalReports"),
	})
}

func (s *Server) createReport(c echo.Context) error {
	var d reports.Draft
	if err := c.Bind(&d); err != nil {
		return badRequest(err.Error())
	}
	if d.PatientID == "" || d.Type == "" || d.Title == "" || d.Findings == "" {
		return badRequest("patient, type, title and findings are required")
	}

	date := time.Now().UTC()
	if d.Date != "" {
		parsed, err := time.Parse(listview.DateLayout, d.Date)
		if err != nil {
			return badRequest("date must be YYYY-MM-DD")
		}
		date = parsed
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	patient := s.store.personLocked(d.PatientID)
	r := reports.Report{
		ID:              newID("report"),
		Patient:         reports.PersonRef{ID: patient.ID, FirstName: patient.FirstName, LastName: patient.LastName},
		Type:            d.Type,
		Title:           d.Title,
		Findings:        d.Findings,
		Recommendations: d.Recommendations,
		Status:          reports.StatusDraft,
		Date:            date,
		CreatedAt:       time.Now().UTC(),
	}
	s.store.reports = append([]reports.Report{r}, s.store.reports...)
	return c.JSON(http.StatusCreated, r)
}

// updateReport serves both the edit form and the status transition; the
// real endpoint accepts either shape on the same PUT.
func (s *Server) updateReport(c echo.Context) error {
	var body struct {
		reports.Draft
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(err.Error())
	}
	if body.Status != "" && !reports.ValidStatus(body.Status) {
		return badRequest("unknown status " + body.Status)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.reports {
		if s.store.reports[i].ID != c.Param("id") {
			continue
		}
		r := &s.store.reports[i]
		if body.Status != "" {
			r.Status = body.Status
		}
		if body.Title != "" {
			r.Title = body.Title
		}
		if body.Type != "" {
			r.Type = body.Type
		}
		if body.Findings != "" {
			r.Findings = body.Findings
		}
		if body.Recommendations != "" {
			r.Recommendations = body.Recommendations
		}
		return c.JSON(http.StatusOK, *r)
	}
	return notFound("report")
}

func (s *Server) deleteReport(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.reports {
		if s.store.reports[i].ID == c.Param("id") {
			s.store.reports = append(s.store.reports[:i], s.store.reports[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "report deleted"})
		}
	}
	return notFound("report")
}

// -- Prescriptions --

func (s *Server) listPrescriptions(c echo.Context) error {
	pg := pagination.FromContext(c)
	status := c.QueryParam("status")
	doctor := c.QueryParam("doctor")
	patient := c.QueryParam("patient")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var matched []prescriptions.Prescription
	for _, p := range s.store.prescriptions {
		if status != "" && p.Status != status {
			continue
		}
		if doctor != "" && p.Doctor.ID != doctor {
			continue
		}
		if patient != "" && p.Patient.ID != patient {
			continue
		}
		matched = append(matched, p)
	}

	state := pagination.Paginate(len(matched), pg)
	page := slicePage(matched, state.Page, pg.Limit)
	return c.JSON(http.StatusOK, map[string]any{
		"prescriptions": page,
		"pagination":    state.Envelope("total"),
	})
}

func (s *Server) createPrescription(c echo.Context) error {
	var d prescriptions.Draft
	if err := c.Bind(&d); err != nil {
		return badRequest(err.Error())
	}
	if d.PatientID == "" || d.Medication == "" || d.Dosage == "" || d.Frequency == "" {
		return badRequest("patient, medication, dosage and frequency are required")
	}

	start := time.Now().UTC()
	if d.StartDate != "" {
		parsed, err := time.Parse(listview.DateLayout, d.StartDate)
		if err != nil {
			return badRequest("startDate must be YYYY-MM-DD")
		}
		start = parsed
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	patient := s.store.personLocked(d.PatientID)
	p := prescriptions.Prescription{
		ID:         newID("rx"),
		Patient:    prescriptions.PersonRef{ID: patient.ID, FirstName: patient.FirstName, LastName: patient.LastName},
		Medication: d.Medication,
		Dosage:     d.Dosage,
		Frequency:  d.Frequency,
		Duration:   d.Duration,
		Notes:      d.Notes,
		Status:     prescriptions.StatusActive,
		StartDate:  start,
		CreatedAt:  time.Now().UTC(),
	}
	s.store.prescriptions = append([]prescriptions.Prescription{p}, s.store.prescriptions...)
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePrescriptionStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(err.Error())
	}
	if !prescriptions.ValidStatus(body.Status) {
		return badRequest("unknown status " + body.Status)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.prescriptions {
		if s.store.prescriptions[i].ID == c.Param("id") {
			s.store.prescriptions[i].Status = body.Status
			return c.JSON(http.StatusOK, s.store.prescriptions[i])
		}
	}
	return notFound("prescription")
}

func (s *Server) deletePrescription(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.prescriptions {
		if s.store.prescriptions[i].ID == c.Param("id") {
			s.store.prescriptions = append(s.store.prescriptions[:i], s.store.prescriptions[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "prescription deleted"})
		}
	}
	return notFound("prescription")
}

// -- Lab equipment --

// listEquipment answers with an envelope but no pagination block.
func (s *Server) listEquipment(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	items := make([]equipment.Item, len(s.store.equipment))
	copy(items, s.store.equipment)
	return c.JSON(http.StatusOK, map[string]any{"equipment": items})
}

func (s *Server) createEquipment(c echo.Context) error {
	var d equipment.Draft
	if err := c.Bind(&d); err != nil {
		return badRequest(err.Error())
	}
	if d.Name == "" || d.SerialNumber == "" || d.Location == "" {
		return badRequest("name, serialNumber and location are required")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	item := equipment.Item{
		ID:           newID("equip"),
		Name:         d.Name,
		SerialNumber: d.SerialNumber,
		Manufacturer: d.Manufacturer,
		Location:     d.Location,
		Status:       equipment.StatusOperational,
		CreatedAt:    time.Now().UTC(),
	}
	s.store.equipment = append([]equipment.Item{item}, s.store.equipment...)
	return c.JSON(http.StatusCreated, item)
}

func (s *Server) updateEquipment(c echo.Context) error {
	var d equipment.Draft
	if err := c.Bind(&d); err != nil {
		return badRequest(err.Error())
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.equipment {
		if s.store.equipment[i].ID != c.Param("id") {
			continue
		}
		item := &s.store.equipment[i]
		if d.Name != "" {
			item.Name = d.Name
		}
		if d.SerialNumber != "" {
			item.SerialNumber = d.SerialNumber
		}
		if d.Manufacturer != "" {
			item.Manufacturer = d.Manufacturer
		}
		if d.Location != "" {
			item.Location = d.Location
		}
		return c.JSON(http.StatusOK, *item)
	}
	return notFound("equipment")
}

func (s *Server) updateEquipmentStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(err.Error())
	}
	if !equipment.ValidStatus(body.Status) {
		return badRequest("unknown status " + body.Status)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.equipment {
		if s.store.equipment[i].ID == c.Param("id") {
			s.store.equipment[i].Status = body.Status
			return c.JSON(http.StatusOK, s.store.equipment[i])
		}
	}
	return notFound("equipment")
}

func (s *Server) deleteEquipment(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.equipment {
		if s.store.equipment[i].ID == c.Param("id") {
			s.store.equipment = append(s.store.equipment[:i], s.store.equipment[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "equipment deleted"})
		}
	}
	return notFound("equipment")
}

// -- Users --

func (s *Server) listUsers(c echo.Context) error {
	var roles []auth.Role
	if csv := c.QueryParam("roles"); csv != "" {
		for _, part := range strings.Split(csv, ",") {
			role, err := auth.ParseRole(strings.TrimSpace(part))
			if err != nil {
				return badRequest(err.Error())
			}
			roles = append(roles, role)
		}
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	matched := s.store.users
	if len(roles) > 0 {
		matched = nil
		for _, u := range s.store.users {
			for _, role := range roles {
				if u.Role == role {
					matched = append(matched, u)
					break
				}
			}
		}
	}
	if matched == nil {
		matched = []users.User{}
	}
	return c.JSON(http.StatusOK, matched)
}

// slicePage cuts the window for a 1-indexed page out of matched.
func slicePage[T any](matched []T, page, limit int) []T {
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	out := make([]T, end-start)
	copy(out, matched[start:end])
	return out
}
