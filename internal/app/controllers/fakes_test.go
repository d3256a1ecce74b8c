package controllers_test

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/controllers"
	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/app/routes"
	"github.com/trackpro/trackpro/internal/app/services"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func noTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type memStudentStore struct {
	students map[uuid.UUID]*models.Student
}

func (m *memStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range m.students {
		if strings.EqualFold(s.Email, student.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	student.RegisteredAt = time.Now()
	m.students[student.ID] = student
	return nil
}

func (m *memStudentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (m *memStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range m.students {
		if strings.EqualFold(s.Email, email) {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *memStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *memStudentStore) Search(ctx context.Context, query string) ([]*models.Student, error) {
	query = strings.ToLower(query)
	var out []*models.Student
	for _, s := range m.students {
		if strings.Contains(strings.ToLower(s.FirstName), query) ||
			strings.Contains(strings.ToLower(s.Email), query) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStudentStore) GetRegisteredAfter(_ context.Context, since time.Time) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range m.students {
		if !s.RegisteredAt.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStudentStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, s := range m.students {
		if strings.EqualFold(s.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStudentStore) UpdateStatusTx(_ context.Context, _ pgx.Tx, id uuid.UUID, status models.StudentStatus) error {
	student, ok := m.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Status = status
	return nil
}

func (m *memStudentStore) GetStats(_ context.Context, _ time.Time) (*dto.StudentStats, error) {
	return &dto.StudentStats{Total: int64(len(m.students))}, nil
}

type memCourseStore struct {
	courses map[uuid.UUID]*models.Course
}

func (m *memCourseStore) Create(_ context.Context, course *models.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	m.courses[course.ID] = course
	return nil
}

func (m *memCourseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (m *memCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range m.courses {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCourseStore) GetByStatus(_ context.Context, status models.CourseStatus) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range m.courses {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCourseStore) Search(ctx context.Context, query string) ([]*models.Course, error) {
	query = strings.ToLower(query)
	var out []*models.Course
	for _, c := range m.courses {
		if strings.Contains(strings.ToLower(c.Code), query) ||
			strings.Contains(strings.ToLower(c.Title), query) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCourseStore) ExistsByCode(_ context.Context, code string, excludeID uuid.UUID) (bool, error) {
	for _, c := range m.courses {
		if c.ID != excludeID && strings.EqualFold(c.Code, code) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := m.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	m.courses[course.ID] = course
	return nil
}

func (m *memCourseStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.CourseStatus) error {
	course, ok := m.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.Status = status
	return nil
}

func (m *memCourseStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *memCourseStore) GetStats(_ context.Context) (*dto.CourseStats, error) {
	return &dto.CourseStats{Total: int64(len(m.courses))}, nil
}

type memApplicationStore struct {
	apps map[uuid.UUID]*models.StudentApplication
}

func (m *memApplicationStore) CreateTx(_ context.Context, _ pgx.Tx, app *models.StudentApplication) error {
	for _, a := range m.apps {
		if a.StudentID == app.StudentID {
			return apperrors.ErrAlreadyApplied
		}
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	app.AppliedAt = time.Now()
	m.apps[app.ID] = app
	return nil
}

func (m *memApplicationStore) ReplaceTx(_ context.Context, _ pgx.Tx, app *models.StudentApplication) error {
	if _, ok := m.apps[app.ID]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.AppliedAt = time.Now()
	m.apps[app.ID] = app
	return nil
}

func (m *memApplicationStore) UpdateTx(_ context.Context, _ pgx.Tx, app *models.StudentApplication) error {
	if _, ok := m.apps[app.ID]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	m.apps[app.ID] = app
	return nil
}

func (m *memApplicationStore) GetByID(_ context.Context, id uuid.UUID) (*models.StudentApplication, error) {
	app, ok := m.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return app, nil
}

func (m *memApplicationStore) GetByStudentID(_ context.Context, studentID uuid.UUID) (*models.StudentApplication, error) {
	for _, a := range m.apps {
		if a.StudentID == studentID {
			return a, nil
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (m *memApplicationStore) GetAll(_ context.Context) ([]*models.StudentApplication, error) {
	var out []*models.StudentApplication
	for _, a := range m.apps {
		out = append(out, a)
	}
	return out, nil
}

func (m *memApplicationStore) GetByCourseID(_ context.Context, courseID uuid.UUID) ([]*models.StudentApplication, error) {
	var out []*models.StudentApplication
	for _, a := range m.apps {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApplicationStore) Search(ctx context.Context, _ string) ([]*models.StudentApplication, error) {
	return m.GetAll(ctx)
}

func (m *memApplicationStore) GetAppliedAfter(ctx context.Context, _ time.Time) ([]*models.StudentApplication, error) {
	return m.GetAll(ctx)
}

func (m *memApplicationStore) GetStats(_ context.Context, _ time.Time) (*dto.ApplicationStats, error) {
	return &dto.ApplicationStats{Total: int64(len(m.apps))}, nil
}

type memAdminStore struct {
	admins map[uuid.UUID]*models.Admin
}

func (m *memAdminStore) Create(_ context.Context, admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	m.admins[admin.ID] = admin
	return nil
}

func (m *memAdminStore) GetByID(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	admin, ok := m.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

func (m *memAdminStore) GetByIdentifier(_ context.Context, identifier string) (*models.Admin, error) {
	for _, a := range m.admins {
		if strings.EqualFold(a.Email, identifier) || strings.EqualFold(a.Username, identifier) {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (m *memAdminStore) GetAll(_ context.Context) ([]*models.Admin, error) {
	var out []*models.Admin
	for _, a := range m.admins {
		out = append(out, a)
	}
	return out, nil
}

func (m *memAdminStore) Search(ctx context.Context, _ string) ([]*models.Admin, error) {
	return m.GetAll(ctx)
}

func (m *memAdminStore) ExistsByUsername(_ context.Context, username string, excludeID uuid.UUID) (bool, error) {
	for _, a := range m.admins {
		if a.ID != excludeID && strings.EqualFold(a.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAdminStore) ExistsByEmail(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	for _, a := range m.admins {
		if a.ID != excludeID && strings.EqualFold(a.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAdminStore) Update(_ context.Context, admin *models.Admin) error {
	if _, ok := m.admins[admin.ID]; !ok {
		return apperrors.ErrAdminNotFound
	}
	m.admins[admin.ID] = admin
	return nil
}

func (m *memAdminStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	admin, ok := m.admins[id]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	admin.LastLogin = &at
	return nil
}

func (m *memAdminStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.admins[id]; !ok {
		return apperrors.ErrAdminNotFound
	}
	delete(m.admins, id)
	return nil
}

func (m *memAdminStore) GetStats(_ context.Context) (*dto.AdminStats, error) {
	return &dto.AdminStats{Total: int64(len(m.admins))}, nil
}

type memUserStore struct {
	users map[uuid.UUID]*models.User
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserStore) Search(ctx context.Context, _ string) ([]*models.User, error) {
	return m.GetAll(ctx)
}

func (m *memUserStore) ExistsByEmail(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	for _, u := range m.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) GetStats(_ context.Context) (*dto.UserStats, error) {
	return &dto.UserStats{Total: int64(len(m.users))}, nil
}

type memComplaintStore struct {
	complaints map[uuid.UUID]*models.Complaint
}

func (m *memComplaintStore) Create(_ context.Context, complaint *models.Complaint) error {
	if complaint.ID == uuid.Nil {
		complaint.ID = uuid.New()
	}
	complaint.CreatedAt = time.Now()
	m.complaints[complaint.ID] = complaint
	return nil
}

func (m *memComplaintStore) GetByID(_ context.Context, id uuid.UUID) (*models.Complaint, error) {
	complaint, ok := m.complaints[id]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}
	return complaint, nil
}

func (m *memComplaintStore) GetAll(_ context.Context) ([]*models.Complaint, error) {
	var out []*models.Complaint
	for _, c := range m.complaints {
		out = append(out, c)
	}
	return out, nil
}

func (m *memComplaintStore) Update(_ context.Context, complaint *models.Complaint) error {
	if _, ok := m.complaints[complaint.ID]; !ok {
		return apperrors.ErrComplaintNotFound
	}
	m.complaints[complaint.ID] = complaint
	return nil
}

func (m *memComplaintStore) GetStats(_ context.Context) (*dto.ComplaintStats, error) {
	return &dto.ComplaintStats{Total: int64(len(m.complaints))}, nil
}

// testEnv wires the full HTTP surface over in-memory stores
type testEnv struct {
	router     *gin.Engine
	students   *memStudentStore
	courses    *memCourseStore
	apps       *memApplicationStore
	admins     *memAdminStore
	users      *memUserStore
	complaints *memComplaintStore
}

func newTestEnv() *testEnv {
	env := &testEnv{
		students:   &memStudentStore{students: make(map[uuid.UUID]*models.Student)},
		courses:    &memCourseStore{courses: make(map[uuid.UUID]*models.Course)},
		apps:       &memApplicationStore{apps: make(map[uuid.UUID]*models.StudentApplication)},
		admins:     &memAdminStore{admins: make(map[uuid.UUID]*models.Admin)},
		users:      &memUserStore{users: make(map[uuid.UUID]*models.User)},
		complaints: &memComplaintStore{complaints: make(map[uuid.UUID]*models.Complaint)},
	}

	lgr := zerolog.Nop()
	studentService := services.NewStudentService(env.students, lgr)
	courseService := services.NewCourseService(env.courses, lgr)
	applicationService := services.NewApplicationService(env.apps, env.students, env.courses, noTx, lgr)
	adminService := services.NewAdminService(env.admins, lgr)
	userService := services.NewUserService(env.users, lgr)
	complaintService := services.NewComplaintService(env.complaints, lgr)
	dashboardService := services.NewDashboardService(studentService, userService, adminService,
		courseService, applicationService, complaintService)

	providers := []services.PrincipalProvider{
		services.NewAdminProvider(env.admins, lgr),
		services.NewStaffProvider(env.users),
		services.NewStudentProvider(env.students),
	}
	authService := services.NewAuthService(providers, nil, lgr)

	env.router = gin.New()
	routes.SetupRouter(env.router,
		controllers.NewAuthController(authService, studentService, lgr),
		controllers.NewStudentController(studentService, courseService, applicationService, complaintService, lgr),
		controllers.NewAdminController(dashboardService, studentService, userService, adminService,
			courseService, applicationService, complaintService, lgr),
		controllers.NewHealthController(nil),
	)
	return env
}
