package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func rosterFixture() (*fakeUserStore, *fakeProfileStore, *fakeAnswerStore) {
	users := &fakeUserStore{users: []*models.User{
		{ID: 1, Email: "a@btech.example.edu", Name: "Student A", Role: models.RoleStudent, RegNo: strPtr("2347101")},
		{ID: 2, Email: "b@btech.example.edu", Name: "Student B", Role: models.RoleStudent, RegNo: strPtr("2347102")},
		{ID: 3, Email: "c@btech.example.edu", Name: "Student C", Role: models.RoleStudent, RegNo: strPtr("2347103")},
		{ID: 4, Email: "prof@example.edu", Name: "Prof X", Role: models.RoleFaculty},
	}}
	profiles := &fakeProfileStore{profiles: []*models.StudentProfile{
		{ID: 1, Name: "Student A", OfficialEmail: "a@btech.example.edu", RegNo: "2347101", ClassLabel: "4BTA", Department: "CSE"},
		{ID: 2, Name: "Student B", OfficialEmail: "b@btech.example.edu", RegNo: "2347102", ClassLabel: "4BTB", Department: "CSE"},
		{ID: 3, Name: "Student C", OfficialEmail: "c@btech.example.edu", RegNo: "2347103", ClassLabel: "4BTA", Department: "ECE"},
	}}
	answers := &fakeAnswerStore{records: []*models.AnswerRecord{
		{ID: 1, UserID: 1, ChosenOption: models.Option1, QuizDay: day(2024, 3, 1)},
	}}
	return users, profiles, answers
}

func entryNames(entries []dto.AttendanceEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func TestGetAttendancePartition(t *testing.T) {
	// Only A answered on day D: attempted=[A], unattempted=[B,C].
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	res, err := svc.GetAttendance(context.Background(), "2024-03-01", "", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Student A"}, entryNames(res.Attempted))
	assert.Equal(t, []string{"Student B", "Student C"}, entryNames(res.Unattempted))

	// Faculty accounts never appear in the roster partition.
	assert.Len(t, res.Attempted, 1)
	assert.Len(t, res.Unattempted, 2)

	// Bipartition: disjoint and exhaustive over the three students.
	seen := map[string]int{}
	for _, e := range append(res.Attempted, res.Unattempted...) {
		seen[e.Name]++
	}
	assert.Len(t, seen, 3)
	for name, count := range seen {
		assert.Equal(t, 1, count, "student %s appears exactly once", name)
	}

	assert.Equal(t, []string{"4BTA", "4BTB"}, res.Classes)
	assert.Equal(t, []string{"CSE", "ECE"}, res.Departments)
}

func TestGetAttendanceProfileJoin(t *testing.T) {
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	res, err := svc.GetAttendance(context.Background(), "2024-03-01", "", "")
	require.NoError(t, err)

	a := res.Attempted[0]
	assert.Equal(t, "2347101", a.RegNo)
	assert.Equal(t, "4BTA", a.Class)
	assert.Equal(t, "CSE", a.Department)
}

func TestGetAttendanceClassFilter(t *testing.T) {
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	res, err := svc.GetAttendance(context.Background(), "2024-03-01", "4BTA", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Student A"}, entryNames(res.Attempted))
	assert.Equal(t, []string{"Student C"}, entryNames(res.Unattempted))
	assert.Equal(t, "4BTA", res.ClassFilter)
}

func TestGetAttendanceDepartmentFilter(t *testing.T) {
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	res, err := svc.GetAttendance(context.Background(), "2024-03-01", "", "CSE")
	require.NoError(t, err)

	assert.Equal(t, []string{"Student A"}, entryNames(res.Attempted))
	assert.Equal(t, []string{"Student B"}, entryNames(res.Unattempted))
}

func TestGetAttendanceCombinedFilters(t *testing.T) {
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	res, err := svc.GetAttendance(context.Background(), "2024-03-01", "4BTB", "CSE")
	require.NoError(t, err)

	assert.Empty(t, res.Attempted)
	assert.Equal(t, []string{"Student B"}, entryNames(res.Unattempted))
}

func TestGetAttendanceEmptyFilterMatchesUnfiltered(t *testing.T) {
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	unfiltered, err := svc.GetAttendance(context.Background(), "2024-03-01", "", "")
	require.NoError(t, err)
	filtered, err := svc.GetAttendance(context.Background(), "2024-03-01", "", "")
	require.NoError(t, err)

	assert.Equal(t, unfiltered.Attempted, filtered.Attempted)
	assert.Equal(t, unfiltered.Unattempted, filtered.Unattempted)
}

func TestGetAttendanceOtherDay(t *testing.T) {
	// Nobody answered on the requested day: everybody is unattempted.
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	res, err := svc.GetAttendance(context.Background(), "2024-03-02", "", "")
	require.NoError(t, err)

	assert.Empty(t, res.Attempted)
	assert.Len(t, res.Unattempted, 3)
}

func TestGetAttendanceBadDate(t *testing.T) {
	users, profiles, answers := rosterFixture()
	svc := NewAttendanceService(users, profiles, answers, time.UTC)

	_, err := svc.GetAttendance(context.Background(), "not-a-date", "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
