// Package hmstest runs an in-memory stand-in for the hospital backend.
// Tests point a rest.Client at it, and the demo-server command serves it so
// the CLI can be exercised without a real deployment. It reproduces the
// backend's wire quirks on purpose: per-collection envelope keys, one
// endpoint answering with a bare array, and another without pagination.
package hmstest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/platform/middleware"
)

// Server is the fake hospital API.
type Server struct {
	store  *Store
	echo   *echo.Echo
	logger zerolog.Logger
}

func New(store *Store, logger zerolog.Logger) *Server {
	s := &Server{store: store, logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Timeout(15 * time.Second))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	api.GET("/appointments", s.listAppointments)
	api.POST("/appointments", s.createAppointment)
	api.PUT("/appointments/:id", s.updateAppointmentStatus)
	api.DELETE("/appointments/:id", s.deleteAppointment)

	api.GET("/care-tasks", s.listTasks)
	api.POST("/care-tasks", s.createTask)
	api.PATCH("/care-tasks/:id/status", s.updateTaskStatus)
	api.DELETE("/care-tasks/:id", s.deleteTask)

	api.GET("/medical-reports", s.listReports)
	api.POST("/medical-reports", s.createReport)
	api.PUT("/medical-reports/:id", s.updateReport)
	api.DELETE("/medical-reports/:id", s.deleteReport)

	api.GET("/prescriptions", s.listPrescriptions)
	api.POST("/prescriptions", s.createPrescription)
	api.PATCH("/prescriptions/:id/status", s.updatePrescriptionStatus)
	api.DELETE("/prescriptions/:id", s.deletePrescription)

	api.GET("/lab-equipment", s.listEquipment)
	api.POST("/lab-equipment", s.createEquipment)
	api.PUT("/lab-equipment/:id", s.updateEquipment)
	api.PATCH("/lab-equipment/:id/status", s.updateEquipmentStatus)
	api.DELETE("/lab-equipment/:id", s.deleteEquipment)

	api.GET("/users", s.listUsers)
	api.GET("/auth/users", s.listUsers)

	s.echo = e
	return s
}

// Handler exposes the server as an http.Handler for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr and blocks.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func notFound(collection string) error {
	return echo.NewHTTPError(http.StatusNotFound, collection+" not found")
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}
