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
	"github.com/trackpro/trackpro/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, code, title, duration_months, category, prerequisites, description, status, batches_count, created_at, updated_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&course.DurationMonths,
		&course.Category,
		&course.Prerequisites,
		&course.Description,
		&course.Status,
		&course.BatchesCount,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course. The unique index on LOWER(code) is the final
// arbiter for concurrent creates with the same code.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}

	query := `
		INSERT INTO courses (id, code, title, duration_months, category,
		                     prerequisites, description, status, batches_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.ID, course.Code, course.Title, course.DurationMonths,
		course.Category, course.Prerequisites, course.Description,
		course.Status, course.BatchesCount,
	).Scan(&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses ordered by creation time
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCourses(rows)
}

// GetByStatus retrieves all courses in the given publication state
func (r *CourseRepository) GetByStatus(ctx context.Context, status models.CourseStatus) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE status = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCourses(rows)
}

// Search retrieves courses whose code, title or category contains the query,
// case-insensitively.
func (r *CourseRepository) Search(ctx context.Context, query string) ([]*models.Course, error) {
	sql := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE code ILIKE $1 OR title ILIKE $1 OR category ILIKE $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCourses(rows)
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ExistsByCode checks case-insensitively whether a course code is taken by
// another course.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE LOWER(code) = LOWER($1) AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code: %w", err)
	}
	return exists, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, duration_months = $3, category = $4,
		    prerequisites = $5, description = $6, status = $7,
		    batches_count = $8, updated_at = now()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Title, course.DurationMonths, course.Category,
		course.Prerequisites, course.Description, course.Status,
		course.BatchesCount, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// UpdateStatus moves a course to a new publication state
func (r *CourseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.CourseStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating course status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GetStats aggregates course counters for the dashboard
func (r *CourseRepository) GetStats(ctx context.Context) (*dto.CourseStats, error) {
	var stats dto.CourseStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'PUBLISHED'),
		       COUNT(*) FILTER (WHERE status = 'DRAFT'),
		       COUNT(DISTINCT category)
		FROM courses
	`).Scan(&stats.Total, &stats.Published, &stats.Draft, &stats.Categories)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}
	return &stats, nil
}
