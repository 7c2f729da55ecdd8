package dto

// ResultsResponse is the student-facing result view for one quiz day:
// the question, the student's chosen option, and whether it was correct.
type ResultsResponse struct {
	Question      QuestionResponse `json:"question"`
	UserAnswer    string           `json:"userAnswer" example:"option2"`
	CorrectOption string           `json:"correctOption" example:"option2"`
	Correct       bool             `json:"correct"`
}

// AttendanceEntry is one roster row in the attendance partition
type AttendanceEntry struct {
	RegNo      string `json:"regNo" example:"2347101"`
	Name       string `json:"name" example:"Ana Li"`
	Class      string `json:"class,omitempty" example:"4BTA"`
	Department string `json:"department,omitempty" example:"CSE"`
}

// AttendanceResponse is the faculty dashboard payload: the
// attempted/unattempted bipartition for a day plus the distinct class
// and department labels for filter controls.
type AttendanceResponse struct {
	Date        string            `json:"date" example:"2024-03-01"`
	Attempted   []AttendanceEntry `json:"attempted"`
	Unattempted []AttendanceEntry `json:"unattempted"`
	Classes     []string          `json:"classes"`
	Departments []string          `json:"departments"`
	ClassFilter string            `json:"classFilter,omitempty"`
	DeptFilter  string            `json:"departmentFilter,omitempty"`
}
