package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
)

// complaintStore is the slice of the complaint repository the service needs
type complaintStore interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	GetAll(ctx context.Context) ([]*models.Complaint, error)
	Update(ctx context.Context, complaint *models.Complaint) error
	GetStats(ctx context.Context) (*dto.ComplaintStats, error)
}

// ComplaintService handles student complaints
type ComplaintService struct {
	store  complaintStore
	logger zerolog.Logger
}

// NewComplaintService creates a new complaint service
func NewComplaintService(store complaintStore, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		store:  store,
		logger: logger,
	}
}

// Create files a new complaint in OPEN status
func (s *ComplaintService) Create(ctx context.Context, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Category:     req.Category,
		Priority:     models.ComplaintPriority(req.Priority),
		Description:  req.Description,
		Status:       models.ComplaintOpen,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
	}

	if err := s.store.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("complaintId", complaint.ID.String()).
		Str("priority", string(complaint.Priority)).
		Msg("Complaint filed")

	return complaint, nil
}

// GetByID retrieves a complaint by ID
func (s *ComplaintService) GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	return s.store.GetByID(ctx, id)
}

// GetAll retrieves all complaints
func (s *ComplaintService) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	return s.store.GetAll(ctx)
}

// UpdateStatus moves a complaint to a new handling status. Entering RESOLVED
// stamps resolvedAt.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateComplaintRequest) (*models.Complaint, error) {
	complaint, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	complaint.Status = models.ComplaintStatus(req.Status)
	if req.ResolutionNotes != nil {
		complaint.ResolutionNotes = req.ResolutionNotes
	}
	if complaint.Status == models.ComplaintResolved && complaint.ResolvedAt == nil {
		now := time.Now()
		complaint.ResolvedAt = &now
	}

	if err := s.store.Update(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

// GetStats aggregates complaint counters for the dashboard
func (s *ComplaintService) GetStats(ctx context.Context) (*dto.ComplaintStats, error) {
	return s.store.GetStats(ctx)
}
