package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/repositories"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
	"github.com/trackpro/trackpro/internal/pkg/auth"
)

// CreateDefaultData ensures the default admin, sample courses and the stock
// staff users exist. Existing rows are left untouched, so startup is
// idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminPassword string, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedAdmin(ctx, adminRepo, adminPassword, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedStaff(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedCourses(ctx, courseRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, repo *repositories.AdminRepository, password string, lgr zerolog.Logger) error {
	_, err := repo.GetByIdentifier(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username:  "admin",
		Email:     "admin@trackpro.local",
		Password:  hashed,
		FirstName: "System",
		LastName:  "Administrator",
		Status:    models.AccountActive,
	}

	if err := repo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("username", admin.Username).Msg("Default admin created")
	return nil
}

func seedStaff(ctx context.Context, repo *repositories.UserRepository, lgr zerolog.Logger) error {
	stock := []struct {
		firstName, lastName, email, password string
		role                                 models.UserRole
	}{
		{"Helen", "Reddy", "hr@trackpro.local", "hr12345", models.RoleHR},
		{"Frank", "Mills", "faculty@trackpro.local", "faculty123", models.RoleFaculty},
	}

	var finalErr error
	for _, s := range stock {
		if _, err := repo.GetByEmail(ctx, s.email); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrUserNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		hashed, err := auth.HashPassword(s.password)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			FirstName: s.firstName,
			LastName:  s.lastName,
			Email:     s.email,
			Password:  hashed,
			Role:      s.role,
			Status:    models.AccountActive,
		}
		if err := repo.Create(ctx, user); err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("email", s.email).Msg("Error creating stock user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("email", s.email).Str("role", string(s.role)).Msg("Stock user created")
	}

	return finalErr
}

func seedCourses(ctx context.Context, repo *repositories.CourseRepository, lgr zerolog.Logger) error {
	strPtr := func(s string) *string { return &s }

	samples := []*models.Course{
		{
			Code:           "FS-101",
			Title:          "Full Stack Web Development",
			DurationMonths: 6,
			Category:       "Software Development",
			Description:    strPtr("Frontend and backend development with modern tooling."),
			Status:         models.CoursePublished,
		},
		{
			Code:           "DS-201",
			Title:          "Data Science Foundations",
			DurationMonths: 9,
			Category:       "Data Science",
			Prerequisites:  strPtr("Basic statistics"),
			Status:         models.CoursePublished,
		},
		{
			Code:           "CL-301",
			Title:          "Cloud Infrastructure Engineering",
			DurationMonths: 12,
			Category:       "Infrastructure",
			Status:         models.CourseDraft,
		},
	}

	var finalErr error
	for _, course := range samples {
		exists, err := repo.ExistsByCode(ctx, course.Code, uuid.Nil)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		if err := repo.Create(ctx, course); err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("code", course.Code).Msg("Sample course created")
	}

	return finalErr
}
