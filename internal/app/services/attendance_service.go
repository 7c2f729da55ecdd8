package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

// AttendanceService partitions the student roster into attempted and
// unattempted sets for a quiz day, with optional class and department
// filters for the faculty dashboard.
type AttendanceService struct {
	userRepo    UserStore
	profileRepo ProfileStore
	answerRepo  AnswerStore
	loc         *time.Location
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(userRepo UserStore, profileRepo ProfileStore, answerRepo AnswerStore, loc *time.Location) *AttendanceService {
	return &AttendanceService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		answerRepo:  answerRepo,
		loc:         loc,
	}
}

// GetAttendance computes the attempted/unattempted bipartition for a
// day. dateParam defaults to today; classFilter and deptFilter apply
// exact string matching against roster profiles, empty means no
// restriction. The response also carries the distinct class and
// department labels for populating filter controls.
func (s *AttendanceService) GetAttendance(ctx context.Context, dateParam, classFilter, deptFilter string) (*dto.AttendanceResponse, error) {
	window := dateutil.Today(s.loc)
	if dateParam != "" {
		day, err := dateutil.ParseDay(dateParam, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		window = dateutil.DayWindow(day, s.loc)
	}

	students, err := s.userRepo.GetAllByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error loading student roster: %w", err)
	}

	records, err := s.answerRepo.GetByWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error loading answer records: %w", err)
	}

	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading student profiles: %w", err)
	}

	attempted, unattempted := partitionRoster(students, records, profiles, classFilter, deptFilter)
	classes, departments := distinctLabels(profiles)

	return &dto.AttendanceResponse{
		Date:        window.Start.Format(dateutil.DayFormat),
		Attempted:   attempted,
		Unattempted: unattempted,
		Classes:     classes,
		Departments: departments,
		ClassFilter: classFilter,
		DeptFilter:  deptFilter,
	}, nil
}

// partitionRoster splits the roster by whether a student has an answer
// record for the day. Records are matched to accounts by owning user
// ID. Every student lands in exactly one of the two lists before
// filtering; filters then restrict both lists the same way.
func partitionRoster(
	students []*models.User,
	records []*models.AnswerRecord,
	profiles []*models.StudentProfile,
	classFilter, deptFilter string,
) (attempted, unattempted []dto.AttendanceEntry) {
	answered := make(map[int64]bool, len(records))
	for _, record := range records {
		answered[record.UserID] = true
	}

	profileByEmail := make(map[string]*models.StudentProfile, len(profiles))
	for _, profile := range profiles {
		profileByEmail[profile.OfficialEmail] = profile
	}

	attempted = []dto.AttendanceEntry{}
	unattempted = []dto.AttendanceEntry{}

	for _, student := range students {
		entry := dto.AttendanceEntry{Name: student.Name}
		if student.RegNo != nil {
			entry.RegNo = *student.RegNo
		}
		if profile, ok := profileByEmail[student.Email]; ok {
			entry.Class = profile.ClassLabel
			entry.Department = profile.Department
		}

		if classFilter != "" && entry.Class != classFilter {
			continue
		}
		if deptFilter != "" && entry.Department != deptFilter {
			continue
		}

		if answered[student.ID] {
			attempted = append(attempted, entry)
		} else {
			unattempted = append(unattempted, entry)
		}
	}

	return attempted, unattempted
}

// distinctLabels collects the sorted distinct class and department
// labels across the roster.
func distinctLabels(profiles []*models.StudentProfile) (classes, departments []string) {
	classSet := make(map[string]struct{})
	deptSet := make(map[string]struct{})
	for _, profile := range profiles {
		classSet[profile.ClassLabel] = struct{}{}
		deptSet[profile.Department] = struct{}{}
	}

	classes = make([]string, 0, len(classSet))
	for label := range classSet {
		classes = append(classes, label)
	}
	departments = make([]string, 0, len(deptSet))
	for label := range deptSet {
		departments = append(departments, label)
	}

	sort.Strings(classes)
	sort.Strings(departments)

	return classes, departments
}
