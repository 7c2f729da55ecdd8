package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"ana.li@btech.example.edu"`      // Login email, unique
	Password  string    `json:"-" db:"password"`                                          // Bcrypt password hash (excluded from JSON)
	Name      string    `json:"name" db:"name" example:"Ana Li"`                          // Display name
	Role      RoleType  `json:"role" db:"role" example:"STUDENT"`                         // Account role (STUDENT or FACULTY)
	RegNo     *string   `json:"regNo,omitempty" db:"reg_no" example:"2347101"`            // Registration number (students only)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Account creation timestamp
}

// StudentProfile defines the provisioned roster entry based on the
// 'student_profiles' table. A profile must exist before a student
// account can be registered for the matching official email.
type StudentProfile struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	OfficialEmail string `json:"officialEmail" db:"official_email"`
	RegNo         string `json:"regNo" db:"reg_no"`
	ClassLabel    string `json:"class" db:"class_label"`
	Department    string `json:"department" db:"department"`
}
