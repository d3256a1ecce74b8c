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

// userStore is the slice of the user repository the service needs
type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Search(ctx context.Context, query string) ([]*models.User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*dto.UserStats, error)
}

// UserService handles staff user management
type UserService struct {
	store  userStore
	logger zerolog.Logger
}

// NewUserService creates a new user service
func NewUserService(store userStore, logger zerolog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// Create adds a new staff user in ACTIVE status
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)

	if taken, err := s.store.ExistsByEmail(ctx, email, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       email,
		Password:    hashed,
		Role:        models.UserRole(req.Role),
		City:        req.City,
		MobileNo:    req.MobileNo,
		DateOfBirth: req.DateOfBirth,
		Status:      models.AccountActive,
	}
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		user.Gender = &g
	}

	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", user.ID.String()).
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Msg("User created")

	return user, nil
}

// GetByID retrieves a staff user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.store.GetByID(ctx, id)
}

// GetAll retrieves all staff users
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.store.GetAll(ctx)
}

// Search finds staff users by name or email substring
func (s *UserService) Search(ctx context.Context, query string) ([]*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.store.GetAll(ctx)
	}
	return s.store.Search(ctx, query)
}

// Update modifies a staff user. Email uniqueness is only re-checked when the
// email changed, and the password is only re-hashed when a new one was
// supplied.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if !strings.EqualFold(email, user.Email) {
		if taken, err := s.store.ExistsByEmail(ctx, email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = email
	user.Role = models.UserRole(req.Role)
	user.City = req.City
	user.MobileNo = req.MobileNo
	user.DateOfBirth = req.DateOfBirth
	user.Status = models.AccountStatus(req.Status)
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		user.Gender = &g
	} else {
		user.Gender = nil
	}

	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a staff user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// GetStats aggregates staff counters for the dashboard
func (s *UserService) GetStats(ctx context.Context) (*dto.UserStats, error) {
	return s.store.GetStats(ctx)
}
