package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
	"github.com/trackpro/trackpro/internal/pkg/auth"
)

// errNoPrincipal signals that a provider's store holds no account for the
// identifier, so the dispatcher should try the next provider.
var errNoPrincipal = errors.New("no principal for identifier")

// LoginResult is a successful authentication outcome
type LoginResult struct {
	PrincipalID uuid.UUID
	UserType    string
	User        dto.UserInfo
}

// PrincipalProvider authenticates one class of account. Implementations
// return errNoPrincipal when the identifier is unknown to their store; any
// other error ends the dispatch.
type PrincipalProvider interface {
	Authenticate(ctx context.Context, identifier, password string) (*LoginResult, error)
}

// AuthService dispatches login attempts across the admin, staff and student
// stores in fixed priority order.
type AuthService struct {
	providers  []PrincipalProvider
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates the authentication dispatcher. Provider order is
// the dispatch order.
func NewAuthService(providers []PrincipalProvider, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		providers:  providers,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates the credentials against each provider in turn. All
// credential failures collapse into the single invalid-credentials error so
// a caller cannot probe which store holds an account.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, string, error) {
	for _, provider := range s.providers {
		result, err := provider.Authenticate(ctx, identifier, password)
		if err != nil {
			if errors.Is(err, errNoPrincipal) {
				continue
			}
			if errors.Is(err, apperrors.ErrAccountDisabled) {
				return nil, "", err
			}
			if errors.Is(err, apperrors.ErrInvalidCredentials) {
				return nil, "", apperrors.ErrInvalidCredentials
			}
			s.logger.Error().Err(err).Msg("Authentication provider failed")
			return nil, "", err
		}

		token := ""
		if s.jwtService != nil && s.jwtService.Enabled() {
			token, err = s.jwtService.GenerateToken(result.PrincipalID, result.User.Email, result.UserType)
			if err != nil {
				s.logger.Error().Err(err).Msg("Failed to generate token")
				token = ""
			}
		}

		s.logger.Info().
			Str("userType", result.UserType).
			Str("email", result.User.Email).
			Msg("Login successful")
		return result, token, nil
	}

	return nil, "", apperrors.ErrInvalidCredentials
}

// TokenAuthEnabled reports whether login responses carry a signed token
func (s *AuthService) TokenAuthEnabled() bool {
	return s.jwtService != nil && s.jwtService.Enabled()
}

// adminAuthStore is the slice of the admin repository the provider needs
type adminAuthStore interface {
	GetByIdentifier(ctx context.Context, identifier string) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AdminProvider authenticates against the administrator store by email or
// username.
type AdminProvider struct {
	store  adminAuthStore
	logger zerolog.Logger
}

// NewAdminProvider creates the administrator principal provider
func NewAdminProvider(store adminAuthStore, logger zerolog.Logger) *AdminProvider {
	return &AdminProvider{store: store, logger: logger}
}

// Authenticate verifies admin credentials and stamps last login on success
func (p *AdminProvider) Authenticate(ctx context.Context, identifier, password string) (*LoginResult, error) {
	admin, err := p.store.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, errNoPrincipal
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if admin.Status != models.AccountActive {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountDisabled,
			"Admin account is not active. Please contact support.")
	}

	if err := p.store.UpdateLastLogin(ctx, admin.ID, time.Now()); err != nil {
		p.logger.Warn().Err(err).Str("adminId", admin.ID.String()).
			Msg("Failed to stamp admin last login")
	}

	return &LoginResult{
		PrincipalID: admin.ID,
		UserType:    string(models.RoleAdmin),
		User: dto.UserInfo{
			ID:        admin.ID,
			FirstName: admin.FirstName,
			LastName:  admin.LastName,
			Email:     admin.Email,
			Role:      string(models.RoleAdmin),
		},
	}, nil
}

// staffAuthStore is the slice of the user repository the provider needs
type staffAuthStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// StaffProvider authenticates against the staff user store
type StaffProvider struct {
	store staffAuthStore
}

// NewStaffProvider creates the staff principal provider
func NewStaffProvider(store staffAuthStore) *StaffProvider {
	return &StaffProvider{store: store}
}

// Authenticate verifies staff credentials
func (p *StaffProvider) Authenticate(ctx context.Context, identifier, password string) (*LoginResult, error) {
	user, err := p.store.GetByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, errNoPrincipal
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.AccountActive {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountDisabled,
			"Account is not active. Please contact administrator.")
	}

	return &LoginResult{
		PrincipalID: user.ID,
		UserType:    string(user.Role),
		User: dto.UserInfo{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      string(user.Role),
		},
	}, nil
}

// studentAuthStore is the slice of the student repository the provider needs
type studentAuthStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// StudentProvider authenticates against the student store
type StudentProvider struct {
	store studentAuthStore
}

// NewStudentProvider creates the student principal provider
func NewStudentProvider(store studentAuthStore) *StudentProvider {
	return &StudentProvider{store: store}
}

// Authenticate verifies student credentials. Suspension blocks login; every
// other lifecycle status may sign in.
func (p *StudentProvider) Authenticate(ctx context.Context, identifier, password string) (*LoginResult, error) {
	student, err := p.store.GetByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, errNoPrincipal
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if student.Status == models.StudentSuspended {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountDisabled,
			"Account is suspended. Please contact administrator.")
	}

	lastName := ""
	if student.LastName != nil {
		lastName = *student.LastName
	}

	return &LoginResult{
		PrincipalID: student.ID,
		UserType:    "STUDENT",
		User: dto.UserInfo{
			ID:        student.ID,
			FirstName: student.FirstName,
			LastName:  lastName,
			Email:     student.Email,
			Role:      "STUDENT",
		},
	}, nil
}
