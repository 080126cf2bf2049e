package models

import "time"

// Admin defines the admin/teacher model based on the 'admins' table.
// No endpoints expose admins yet; the table backs the future approval
// workflow and a default record is created during seeding.
type Admin struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"admin@mergington.edu"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         *string   `json:"name,omitempty" db:"name" example:"Principal Martinez"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
