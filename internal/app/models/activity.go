package models

import "time"

// Activity defines an extracurricular activity based on the 'activities' table
type Activity struct {
	ID              int64     `json:"id" db:"id" example:"1"`
	Name            string    `json:"name" db:"name" example:"Chess Club"`
	Description     string    `json:"description" db:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string    `json:"schedule" db:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int       `json:"maxParticipants" db:"max_participants" example:"12"`
	ImageURL        *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Participants []string `json:"participants,omitempty"` // Emails of students with accepted memberships
}
