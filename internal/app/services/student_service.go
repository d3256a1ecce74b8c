package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
	"github.com/trackpro/trackpro/internal/pkg/auth"
)

// studentStore is the slice of the student repository the service needs
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Search(ctx context.Context, query string) ([]*models.Student, error)
	GetRegisteredAfter(ctx context.Context, since time.Time) ([]*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetStats(ctx context.Context, weekStart time.Time) (*dto.StudentStats, error)
}

// StudentService handles student registration and profile access
type StudentService struct {
	store  studentStore
	logger zerolog.Logger
}

// NewStudentService creates a new student service
func NewStudentService(store studentStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		store:  store,
		logger: logger,
	}
}

// Register creates a new student account in REGISTERED status. The email
// pre-check is an early exit; the unique index catches concurrent duplicates.
func (s *StudentService) Register(ctx context.Context, req *dto.RegistrationRequest) (*models.Student, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    req.LastName,
		Email:       email,
		Password:    hashed,
		Gender:      models.Gender(req.Gender),
		DateOfBirth: req.DateOfBirth,
		Age:         req.Age,
		Location:    req.Location,
		MobileNo:    req.MobileNo,
		Status:      models.StudentRegistered,
	}

	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("studentId", student.ID.String()).
		Str("email", student.Email).
		Msg("Student registered")

	return student, nil
}

// GetProfile retrieves a student by ID
func (s *StudentService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return s.store.GetByID(ctx, id)
}

// GetAll retrieves all registered students
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.store.GetAll(ctx)
}

// Search finds students by name or email substring
func (s *StudentService) Search(ctx context.Context, query string) ([]*models.Student, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.store.GetAll(ctx)
	}
	return s.store.Search(ctx, query)
}

// GetRecent retrieves students registered within the last seven days
func (s *StudentService) GetRecent(ctx context.Context) ([]*models.Student, error) {
	return s.store.GetRegisteredAfter(ctx, time.Now().AddDate(0, 0, -7))
}

// GetStats aggregates student counters for the dashboard
func (s *StudentService) GetStats(ctx context.Context) (*dto.StudentStats, error) {
	return s.store.GetStats(ctx, time.Now().AddDate(0, 0, -7))
}
