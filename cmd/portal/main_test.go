package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/hmstest"
	"github.com/hms/portal/internal/platform/auth"
)

func TestPersonName(t *testing.T) {
	if got := personName("Grace", "Obi"); got != "Grace Obi" {
		t.Errorf("personName = %q", got)
	}
	if got := personName("", "Obi"); got != "Obi" {
		t.Errorf("personName without first = %q", got)
	}
}

func TestDeletionMessage(t *testing.T) {
	if err := deletionMessage(nil); err != nil {
		t.Errorf("nil must pass through, got %v", err)
	}
	rt := &runtime{session: auth.Session{Role: auth.RolePatient}}
	if err := rt.require(auth.CapEquipmentManage); err == nil {
		t.Error("patients must not manage equipment")
	}
	if err := rt.require(auth.CapAppointmentsView); err != nil {
		t.Errorf("patients may view appointments, got %v", err)
	}
}

func demoEnv(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(hmstest.New(hmstest.NewStore().Seed(), zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	t.Setenv("HMS_API_URL", srv.URL)
	t.Setenv("ENV", "development")
	t.Setenv("PORTAL_TOKEN", "")
}

func TestUsersCommand_ListsDoctors(t *testing.T) {
	demoEnv(t)

	cmd := usersCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--roles", "doctor"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Grace Obi") || !strings.Contains(out, "Henrik Dahl") {
		t.Errorf("doctor roster missing from output:\n%s", out)
	}
	if strings.Contains(out, "Noor Haddad") {
		t.Errorf("patient leaked into doctor roster:\n%s", out)
	}
}

func TestAppointmentsListCommand(t *testing.T) {
	demoEnv(t)

	cmd := appointmentsCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"list", "--status", "Scheduled"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Annual checkup") {
		t.Errorf("scheduled appointment missing from output:\n%s", out)
	}
	if strings.Contains(out, "Dermatology consult") {
		t.Errorf("cancelled appointment leaked through the status filter:\n%s", out)
	}
}
