package domain

import (
	"errors"
	"time"
)

const (
	RoleCitizen         = "citizen"
	RoleFieldWorker     = "field-worker"
	RoleDistrictOfficer = "district-officer"
	RoleStateOfficer    = "state-officer"
	RoleNationalAdmin   = "national-admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// KnownRole reports whether role is one of the five roles this system issues.
func KnownRole(role string) bool {
	switch role {
	case RoleCitizen, RoleFieldWorker, RoleDistrictOfficer, RoleStateOfficer, RoleNationalAdmin:
		return true
	}
	return false
}

// User models an authenticated principal in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
