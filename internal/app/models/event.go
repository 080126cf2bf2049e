package models

import "time"

// Event defines a school event based on the 'events' table.
// Schema only for now; no endpoints operate on events.
type Event struct {
	ID                   int64      `json:"id" db:"id" example:"1"`
	Name                 string     `json:"name" db:"name" example:"Science Fair"`
	Description          string     `json:"description" db:"description"`
	EventDate            time.Time  `json:"eventDate" db:"event_date"`
	Location             string     `json:"location" db:"location" example:"Main Gymnasium"`
	MaxParticipants      *int       `json:"maxParticipants,omitempty" db:"max_participants"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty" db:"registration_deadline"`
	ImageURL             *string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Registrations []*EventRegistration `json:"registrations,omitempty"`
}

// EventRegistration defines a student's registration for an event
// based on the 'event_registrations' table
type EventRegistration struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StudentID int64     `json:"studentId" db:"student_id" example:"3"`
	EventID   int64     `json:"eventId" db:"event_id" example:"1"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Event   *Event   `json:"event,omitempty"`
}
