package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
)

// courseStore is the slice of the course repository the service needs
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByStatus(ctx context.Context, status models.CourseStatus) ([]*models.Course, error)
	Search(ctx context.Context, query string) ([]*models.Course, error)
	ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.CourseStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*dto.CourseStats, error)
}

// CourseService handles course management
type CourseService struct {
	store  courseStore
	logger zerolog.Logger
}

// NewCourseService creates a new course service
func NewCourseService(store courseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{
		store:  store,
		logger: logger,
	}
}

// Create adds a new course in DRAFT status
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	code := strings.TrimSpace(req.Code)

	exists, err := s.store.ExistsByCode(ctx, code, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		Code:           code,
		Title:          strings.TrimSpace(req.Title),
		DurationMonths: req.DurationMonths,
		Category:       strings.TrimSpace(req.Category),
		Prerequisites:  req.Prerequisites,
		Description:    req.Description,
		Status:         models.CourseDraft,
	}

	if err := s.store.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("courseId", course.ID.String()).
		Str("code", course.Code).
		Msg("Course created")

	return course, nil
}

// GetByID retrieves a course by ID
func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.store.GetByID(ctx, id)
}

// GetAll retrieves all courses
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.store.GetAll(ctx)
}

// GetPublished retrieves courses open for applications
func (s *CourseService) GetPublished(ctx context.Context) ([]*models.Course, error) {
	return s.store.GetByStatus(ctx, models.CoursePublished)
}

// Search finds courses by code, title or category substring
func (s *CourseService) Search(ctx context.Context, query string) ([]*models.Course, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.store.GetAll(ctx)
	}
	return s.store.Search(ctx, query)
}

// Update modifies an existing course. The code uniqueness check only runs
// when the code actually changed.
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if !strings.EqualFold(code, course.Code) {
		exists, err := s.store.ExistsByCode(ctx, code, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrCourseCodeExists
		}
	}

	course.Code = code
	course.Title = strings.TrimSpace(req.Title)
	course.DurationMonths = req.DurationMonths
	course.Category = strings.TrimSpace(req.Category)
	course.Prerequisites = req.Prerequisites
	course.Description = req.Description
	course.Status = models.CourseStatus(req.Status)
	if req.BatchesCount != nil {
		course.BatchesCount = *req.BatchesCount
	}

	if err := s.store.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Publish opens a course for applications
func (s *CourseService) Publish(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.setStatus(ctx, id, models.CoursePublished)
}

// Unpublish takes a course back to DRAFT
func (s *CourseService) Unpublish(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.setStatus(ctx, id, models.CourseDraft)
}

func (s *CourseService) setStatus(ctx context.Context, id uuid.UUID, status models.CourseStatus) (*models.Course, error) {
	course, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	course.Status = status
	s.logger.Info().
		Str("courseId", id.String()).
		Str("status", string(status)).
		Msg("Course status changed")

	return course, nil
}

// Delete removes a course
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// GetStats aggregates course counters for the dashboard
func (s *CourseService) GetStats(ctx context.Context) (*dto.CourseStats, error) {
	return s.store.GetStats(ctx)
}
