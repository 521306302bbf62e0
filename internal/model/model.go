package model

import (
	"fmt"
	"time"
)

// Role is the closed set of user roles. Anything else is rejected at parse
// time so authorization code can switch over the two values exhaustively.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Slot is a fixed half-hour appointment interval, seeded once and immutable.
type Slot struct {
	ID      string    `json:"id"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// Booking ties exactly one user to exactly one slot. The one-booking-per-slot
// invariant lives in the bookings(slot_id) unique constraint, not here.
type Booking struct {
	ID        string
	UserID    string
	SlotID    string
	CreatedAt time.Time
}
