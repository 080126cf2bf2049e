package models

import (
	"fmt"
	"time"
)

// MembershipStatus represents the enrollment status of a membership
type MembershipStatus string

const (
	// MembershipStatusPending means the signup awaits admin approval (future workflow)
	MembershipStatusPending MembershipStatus = "pending"
	// MembershipStatusAccepted means the student is enrolled and counts toward capacity
	MembershipStatusAccepted MembershipStatus = "accepted"
	// MembershipStatusDeclined means the signup was rejected (future workflow)
	MembershipStatusDeclined MembershipStatus = "declined"
)

// IsValid reports whether s is one of the known membership statuses
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusPending, MembershipStatusAccepted, MembershipStatusDeclined:
		return true
	default:
		return false
	}
}

// CountsTowardRoster reports whether a membership with this status
// appears in the activity roster and consumes a capacity slot.
// Only accepted memberships do; pending and declined rows are attempt
// history and never block a new signup.
func (s MembershipStatus) CountsTowardRoster() (bool, error) {
	switch s {
	case MembershipStatusAccepted:
		return true, nil
	case MembershipStatusPending, MembershipStatusDeclined:
		return false, nil
	default:
		return false, fmt.Errorf("unknown membership status: %q", s)
	}
}

// Membership defines the student-activity enrollment relationship
// based on the 'memberships' table. One row exists per signup attempt.
type Membership struct {
	ID         int64            `json:"id" db:"id" example:"1"`
	StudentID  int64            `json:"studentId" db:"student_id" example:"3"`
	ActivityID int64            `json:"activityId" db:"activity_id" example:"1"`
	Status     MembershipStatus `json:"status" db:"status" example:"accepted"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student  *Student  `json:"student,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}
