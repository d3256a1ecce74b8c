package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
	"github.com/trackpro/trackpro/internal/pkg/dberrors"
)

// AdminRepository handles database operations for administrators
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

const adminColumns = `id, username, email, password, first_name, last_name, status, last_login, created_at, updated_at`

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var admin models.Admin
	err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.Password,
		&admin.FirstName,
		&admin.LastName,
		&admin.Status,
		&admin.LastLogin,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new administrator. The unique indexes on username and
// email are the final arbiter; a 23505 maps to the conflict error.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}

	query := `
		INSERT INTO admins (id, username, email, password, first_name, last_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.Password,
		admin.FirstName, admin.LastName, admin.Status,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyUsed
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByID retrieves an administrator by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// GetByIdentifier retrieves an administrator by email or username,
// case-insensitively.
func (r *AdminRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE LOWER(email) = LOWER($1) OR LOWER(username) = LOWER($1)
	`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// GetAll retrieves all administrators ordered by creation time
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// Search retrieves administrators whose username, email or name contains the
// query, case-insensitively.
func (r *AdminRepository) Search(ctx context.Context, query string) ([]*models.Admin, error) {
	sql := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE username ILIKE $1 OR email ILIKE $1
		   OR first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// ExistsByUsername checks case-insensitively whether a username is taken by
// another administrator.
func (r *AdminRepository) ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE LOWER(username) = LOWER($1) AND id != $2)`,
		username, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin username: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks case-insensitively whether an email is taken by
// another administrator.
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE LOWER(email) = LOWER($1) AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}
	return exists, nil
}

// Update updates an existing administrator
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	query := `
		UPDATE admins
		SET username = $1, email = $2, password = $3, first_name = $4,
		    last_name = $5, status = $6, updated_at = now()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		admin.Username, admin.Email, admin.Password,
		admin.FirstName, admin.LastName, admin.Status, admin.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyUsed
		}
		return fmt.Errorf("error updating admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// UpdateLastLogin stamps the administrator's last successful login
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE admins SET last_login = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("error updating admin last login: %w", err)
	}
	return nil
}

// Delete deletes an administrator by ID
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// GetStats aggregates administrator counters for the dashboard
func (r *AdminRepository) GetStats(ctx context.Context) (*dto.AdminStats, error) {
	var stats dto.AdminStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'ACTIVE')
		FROM admins
	`).Scan(&stats.Total, &stats.Active)
	if err != nil {
		return nil, fmt.Errorf("error counting admins: %w", err)
	}
	return &stats, nil
}
