package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
)

// noTx runs the transaction body directly; the fakes ignore the tx handle.
func noTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeStudentStore struct {
	students map[uuid.UUID]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[uuid.UUID]*models.Student)}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if strings.EqualFold(s.Email, student.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	student.RegisteredAt = time.Now()
	student.UpdatedAt = student.RegisteredAt
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if strings.EqualFold(s.Email, email) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeStudentStore) Search(_ context.Context, query string) ([]*models.Student, error) {
	query = strings.ToLower(query)
	var out []*models.Student
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.FirstName), query) ||
			strings.Contains(strings.ToLower(s.Email), query) {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) GetRegisteredAfter(_ context.Context, since time.Time) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if !s.RegisteredAt.Before(since) {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, s := range f.students {
		if strings.EqualFold(s.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) UpdateStatusTx(_ context.Context, _ pgx.Tx, id uuid.UUID, status models.StudentStatus) error {
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Status = status
	return nil
}

func (f *fakeStudentStore) GetStats(_ context.Context, weekStart time.Time) (*dto.StudentStats, error) {
	stats := &dto.StudentStats{}
	for _, s := range f.students {
		stats.Total++
		if !s.RegisteredAt.Before(weekStart) {
			stats.ThisWeek++
		}
		switch s.Status {
		case models.StudentEnrolled:
			stats.Enrolled++
		case models.StudentCompleted:
			stats.Completed++
		case models.StudentSuspended:
			stats.Suspended++
		}
	}
	return stats, nil
}

func (f *fakeStudentStore) add(student *models.Student) *models.Student {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	if student.RegisteredAt.IsZero() {
		student.RegisteredAt = time.Now()
	}
	f.students[student.ID] = student
	return student
}

type fakeCourseStore struct {
	courses map[uuid.UUID]*models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[uuid.UUID]*models.Course)}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, c := range f.courses {
		if strings.EqualFold(c.Code, course.Code) {
			return apperrors.ErrCourseCodeExists
		}
	}
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	copied := *course
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCourseStore) GetByStatus(_ context.Context, status models.CourseStatus) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.Status == status {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) Search(_ context.Context, query string) ([]*models.Course, error) {
	query = strings.ToLower(query)
	var out []*models.Course
	for _, c := range f.courses {
		if strings.Contains(strings.ToLower(c.Code), query) ||
			strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Category), query) {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ExistsByCode(_ context.Context, code string, excludeID uuid.UUID) (bool, error) {
	for _, c := range f.courses {
		if c.ID != excludeID && strings.EqualFold(c.Code, code) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	copied := *course
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.CourseStatus) error {
	course, ok := f.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.Status = status
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) GetStats(_ context.Context) (*dto.CourseStats, error) {
	stats := &dto.CourseStats{}
	categories := make(map[string]struct{})
	for _, c := range f.courses {
		stats.Total++
		categories[c.Category] = struct{}{}
		switch c.Status {
		case models.CoursePublished:
			stats.Published++
		case models.CourseDraft:
			stats.Draft++
		}
	}
	stats.Categories = int64(len(categories))
	return stats, nil
}

func (f *fakeCourseStore) add(course *models.Course) *models.Course {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	f.courses[course.ID] = course
	return course
}

type fakeApplicationStore struct {
	apps map[uuid.UUID]*models.StudentApplication
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[uuid.UUID]*models.StudentApplication)}
}

func (f *fakeApplicationStore) CreateTx(_ context.Context, _ pgx.Tx, app *models.StudentApplication) error {
	for _, a := range f.apps {
		if a.StudentID == app.StudentID {
			return apperrors.ErrAlreadyApplied
		}
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	app.AppliedAt = time.Now()
	app.UpdatedAt = app.AppliedAt
	copied := *app
	f.apps[app.ID] = &copied
	return nil
}

func (f *fakeApplicationStore) ReplaceTx(_ context.Context, _ pgx.Tx, app *models.StudentApplication) error {
	if _, ok := f.apps[app.ID]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.AppliedAt = time.Now()
	app.UpdatedAt = app.AppliedAt
	app.InterviewDate = nil
	app.AcceptedAt = nil
	app.CompletedAt = nil
	copied := *app
	f.apps[app.ID] = &copied
	return nil
}

func (f *fakeApplicationStore) UpdateTx(_ context.Context, _ pgx.Tx, app *models.StudentApplication) error {
	if _, ok := f.apps[app.ID]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.UpdatedAt = time.Now()
	copied := *app
	f.apps[app.ID] = &copied
	return nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id uuid.UUID) (*models.StudentApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (f *fakeApplicationStore) GetByStudentID(_ context.Context, studentID uuid.UUID) (*models.StudentApplication, error) {
	for _, a := range f.apps {
		if a.StudentID == studentID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (f *fakeApplicationStore) GetAll(_ context.Context) ([]*models.StudentApplication, error) {
	var out []*models.StudentApplication
	for _, a := range f.apps {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeApplicationStore) GetByCourseID(_ context.Context, courseID uuid.UUID) ([]*models.StudentApplication, error) {
	var out []*models.StudentApplication
	for _, a := range f.apps {
		if a.CourseID == courseID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) Search(ctx context.Context, _ string) ([]*models.StudentApplication, error) {
	return f.GetAll(ctx)
}

func (f *fakeApplicationStore) GetAppliedAfter(_ context.Context, since time.Time) ([]*models.StudentApplication, error) {
	var out []*models.StudentApplication
	for _, a := range f.apps {
		if !a.AppliedAt.Before(since) {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) GetStats(_ context.Context, weekStart time.Time) (*dto.ApplicationStats, error) {
	stats := &dto.ApplicationStats{}
	for _, a := range f.apps {
		stats.Total++
		if !a.AppliedAt.Before(weekStart) {
			stats.ThisWeek++
		}
		switch a.Status {
		case models.ApplicationApplied:
			stats.Applied++
		case models.ApplicationUnderReview:
			stats.UnderReview++
		case models.ApplicationInterview:
			stats.Interview++
		case models.ApplicationAccepted:
			stats.Accepted++
		case models.ApplicationRejected:
			stats.Rejected++
		case models.ApplicationCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}
