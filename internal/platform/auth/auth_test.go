package auth

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, subject, name, role string) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		Name:             name,
		Role:             role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseSession_Verified(t *testing.T) {
	token := signToken(t, "s3cret", "doc-42", "Grace Hopper", "doctor")

	s, err := ParseSession(token, "s3cret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if s.UserID != "doc-42" || s.Name != "Grace Hopper" || s.Role != RoleDoctor {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestParseSession_WrongSecret(t *testing.T) {
	token := signToken(t, "s3cret", "doc-42", "Grace Hopper", "doctor")

	if _, err := ParseSession(token, "other"); err == nil {
		t.Error("expected signature verification to fail")
	}
}

func TestParseSession_UnverifiedDevelopmentMode(t *testing.T) {
	token := signToken(t, "whatever", "pat-7", "Ada", "patient")

	s, err := ParseSession(token, "")
	if err != nil {
		t.Fatalf("parse unverified: %v", err)
	}
	if s.Role != RolePatient || s.UserID != "pat-7" {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestParseSession_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"unknown role", ""},
		{"missing subject", ""},
	}
	tests[1].token = signToken(t, "s", "u1", "X", "janitor")
	tests[2].token = signToken(t, "s", "", "X", "nurse")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSession(tt.token, ""); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSession_ScopeParam(t *testing.T) {
	tests := []struct {
		role      Role
		wantKey   string
		wantValue string
	}{
		{RoleDoctor, "doctor", "u1"},
		{RolePatient, "patient", "u1"},
		{RoleAdmin, "", ""},
		{RoleNurse, "", ""},
		{RoleReceptionist, "", ""},
	}

	for _, tt := range tests {
		s := Session{UserID: "u1", Role: tt.role}
		k, v := s.ScopeParam()
		if k != tt.wantKey || v != tt.wantValue {
			t.Errorf("%s: got (%q,%q), want (%q,%q)", tt.role, k, v, tt.wantKey, tt.wantValue)
		}
	}
}

func TestRole_Can(t *testing.T) {
	tests := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RoleAdmin, CapEquipmentManage, true},
		{RoleDoctor, CapReportsManage, true},
		{RoleDoctor, CapEquipmentManage, false},
		{RoleNurse, CapCareTasksManage, true},
		{RoleNurse, CapReportsManage, false},
		{RoleReceptionist, CapAppointmentsManage, true},
		{RoleReceptionist, CapPrescriptionsView, false},
		{RolePatient, CapAppointmentsView, true},
		{RolePatient, CapAppointmentsManage, false},
	}

	for _, tt := range tests {
		if got := tt.role.Can(tt.cap); got != tt.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}

func TestMenuFor(t *testing.T) {
	admin := MenuFor(RoleAdmin)
	if len(admin) != len(menu) {
		t.Errorf("admin must see the full menu, got %d of %d", len(admin), len(menu))
	}

	patient := MenuFor(RolePatient)
	var labels []string
	for _, item := range patient {
		labels = append(labels, item.Label)
	}
	want := "Appointments, Medical Reports, Prescriptions"
	if got := strings.Join(labels, ", "); got != want {
		t.Errorf("patient menu = %q, want %q", got, want)
	}

	for _, item := range MenuFor(RoleNurse) {
		if item.Label == "Medical Reports" {
			t.Error("nurse must not see medical reports")
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "doctor", "nurse", "receptionist", "patient"} {
		if _, err := ParseRole(valid); err != nil {
			t.Errorf("ParseRole(%q): %v", valid, err)
		}
	}
	if _, err := ParseRole("root"); err == nil {
		t.Error("expected error for unknown role")
	}
}
