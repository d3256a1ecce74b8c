package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
)

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db *pgxpool.Pool
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

const complaintColumns = `id, category, priority, description, status, student_name, student_email, resolution_notes, created_at, updated_at, resolved_at`

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var complaint models.Complaint
	err := row.Scan(
		&complaint.ID,
		&complaint.Category,
		&complaint.Priority,
		&complaint.Description,
		&complaint.Status,
		&complaint.StudentName,
		&complaint.StudentEmail,
		&complaint.ResolutionNotes,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
		&complaint.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// Create inserts a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.ID == uuid.Nil {
		complaint.ID = uuid.New()
	}

	query := `
		INSERT INTO complaints (id, category, priority, description, status,
		                        student_name, student_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		complaint.ID, complaint.Category, complaint.Priority,
		complaint.Description, complaint.Status, complaint.StudentName,
		complaint.StudentEmail,
	).Scan(&complaint.CreatedAt, &complaint.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// GetByID retrieves a complaint by ID
func (r *ComplaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1`

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return complaint, nil
}

// GetAll retrieves all complaints, most recent first
func (r *ComplaintRepository) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

// Update persists status and resolution fields of a complaint
func (r *ComplaintRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	query := `
		UPDATE complaints
		SET status = $1, resolution_notes = $2, resolved_at = $3,
		    updated_at = now()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		complaint.Status, complaint.ResolutionNotes, complaint.ResolvedAt,
		complaint.ID)
	if err != nil {
		return fmt.Errorf("error updating complaint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}

// GetStats aggregates complaint counters for the dashboard
func (r *ComplaintRepository) GetStats(ctx context.Context) (*dto.ComplaintStats, error) {
	var stats dto.ComplaintStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'OPEN'),
		       COUNT(*) FILTER (WHERE status = 'IN_PROGRESS'),
		       COUNT(*) FILTER (WHERE priority = 'URGENT')
		FROM complaints
	`).Scan(&stats.Total, &stats.Open, &stats.InProgress, &stats.Urgent)
	if err != nil {
		return nil, fmt.Errorf("error counting complaints: %w", err)
	}
	return &stats, nil
}
