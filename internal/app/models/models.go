package models

// RoleType defines the account role
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleFaculty RoleType = "FACULTY"
)

// Option identifies one of the four answer options of a question.
type Option string

const (
	Option1 Option = "option1"
	Option2 Option = "option2"
	Option3 Option = "option3"
	Option4 Option = "option4"
)

// Valid reports whether o names one of the four options.
func (o Option) Valid() bool {
	switch o {
	case Option1, Option2, Option3, Option4:
		return true
	}
	return false
}
