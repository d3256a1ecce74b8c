package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
	"github.com/trackpro/trackpro/internal/pkg/auth"
)

// adminStore is the slice of the admin repository the service needs
type adminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetAll(ctx context.Context) ([]*models.Admin, error)
	Search(ctx context.Context, query string) ([]*models.Admin, error)
	ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*dto.AdminStats, error)
}

// AdminService handles administrator account management
type AdminService struct {
	store  adminStore
	logger zerolog.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(store adminStore, logger zerolog.Logger) *AdminService {
	return &AdminService{
		store:  store,
		logger: logger,
	}
}

// Create adds a new administrator account in ACTIVE status
func (s *AdminService) Create(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if taken, err := s.store.ExistsByUsername(ctx, username, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrUsernameAlreadyUsed
	}

	if taken, err := s.store.ExistsByEmail(ctx, email, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrUsernameAlreadyUsed
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:  username,
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Status:    models.AccountActive,
	}

	if err := s.store.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("adminId", admin.ID.String()).
		Str("username", admin.Username).
		Msg("Admin created")

	return admin, nil
}

// GetByID retrieves an administrator by ID
func (s *AdminService) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return s.store.GetByID(ctx, id)
}

// GetAll retrieves all administrators
func (s *AdminService) GetAll(ctx context.Context) ([]*models.Admin, error) {
	return s.store.GetAll(ctx)
}

// Search finds administrators by username, email or name substring
func (s *AdminService) Search(ctx context.Context, query string) ([]*models.Admin, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.store.GetAll(ctx)
	}
	return s.store.Search(ctx, query)
}

// Update modifies an administrator account. Uniqueness is only re-checked
// for the fields that actually changed, and the password is only re-hashed
// when a new one was supplied.
func (s *AdminService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	admin, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if !strings.EqualFold(username, admin.Username) {
		if taken, err := s.store.ExistsByUsername(ctx, username, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.ErrUsernameAlreadyUsed
		}
	}

	if !strings.EqualFold(email, admin.Email) {
		if taken, err := s.store.ExistsByEmail(ctx, email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.ErrUsernameAlreadyUsed
		}
	}

	admin.Username = username
	admin.Email = email
	admin.FirstName = strings.TrimSpace(req.FirstName)
	admin.LastName = strings.TrimSpace(req.LastName)
	admin.Status = models.AccountStatus(req.Status)

	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		admin.Password = hashed
	}

	if err := s.store.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Delete removes an administrator account
func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// GetStats aggregates administrator counters for the dashboard
func (s *AdminService) GetStats(ctx context.Context) (*dto.AdminStats, error) {
	return s.store.GetStats(ctx)
}
