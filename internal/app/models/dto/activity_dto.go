package dto

// ActivityDetail represents one activity in the activities listing,
// keyed by activity name in the response mapping
type ActivityDetail struct {
	Description     string   `json:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" example:"12"`
	Participants    []string `json:"participants"`
}

// EnrollmentRequest represents the signup/unregister request body.
// The email may alternatively be supplied as a query parameter.
type EnrollmentRequest struct {
	Email string `json:"email" validate:"required" example:"michael@mergington.edu"`
}
