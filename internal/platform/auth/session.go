// Package auth holds the portal's session model: who the user is, which
// role they act under, and what that role is allowed to see and do. The
// portal consumes tokens issued elsewhere; it never issues them.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the portal token payload.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session identifies the signed-in user for the lifetime of the process.
type Session struct {
	UserID string
	Name   string
	Role   Role
}

// ParseSession decodes a portal token into a Session. With a secret the
// signature is verified (HS256); without one the claims are read unverified,
// which is only acceptable against a development backend.
func ParseSession(token, secret string) (Session, error) {
	claims := &Claims{}

	var err error
	if secret == "" {
		_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	} else {
		_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
	}
	if err != nil {
		return Session{}, fmt.Errorf("parse portal token: %w", err)
	}

	role, err := ParseRole(claims.Role)
	if err != nil {
		return Session{}, err
	}
	if claims.Subject == "" {
		return Session{}, fmt.Errorf("portal token has no subject")
	}

	return Session{
		UserID: claims.Subject,
		Name:   claims.Name,
		Role:   role,
	}, nil
}

// ScopeParam returns the identity query parameter this session must attach
// to every list fetch, or empty when the role sees unscoped data. A doctor
// only ever sees their own appointments and reports; a patient only their
// own records. The parameter is attached regardless of any other filter.
func (s Session) ScopeParam() (key, value string) {
	switch s.Role {
	case RoleDoctor:
		return "doctor", s.UserID
	case RolePatient:
		return "patient", s.UserID
	}
	return "", ""
}
