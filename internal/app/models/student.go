package models

import "time"

// Student defines the student model based on the 'students' table.
// A row is created lazily the first time an unseen email signs up for
// an activity; name fields stay at their placeholder values until a
// real registration flow exists.
type Student struct {
	ID              int64     `json:"id" db:"id" example:"1"`
	FirstName       *string   `json:"firstName,omitempty" db:"first_name" example:"Michael"`
	LastName        *string   `json:"lastName,omitempty" db:"last_name" example:"Jones"`
	Email           string    `json:"email" db:"email" example:"michael@mergington.edu"`
	PasswordHash    *string   `json:"-" db:"password_hash"` // Reserved for authentication
	RollNumber      *string   `json:"rollNumber,omitempty" db:"roll_number"`
	Grade           *string   `json:"grade,omitempty" db:"grade" example:"10"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl,omitempty" db:"profile_photo_url"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Memberships []*Membership `json:"memberships,omitempty"`
}
