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

// ApplicationRepository handles database operations for course applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

const applicationColumns = `id, student_id, course_id, status, application_notes, progress_percentage, applied_at, updated_at, interview_date, accepted_at, completed_at`

// joinedApplicationQuery eagerly loads the student and course rows so that
// listings never fan out into per-row lookups.
const joinedApplicationQuery = `
	SELECT a.id, a.student_id, a.course_id, a.status, a.application_notes,
	       a.progress_percentage, a.applied_at, a.updated_at,
	       a.interview_date, a.accepted_at, a.completed_at,
	       s.first_name, s.last_name, s.email, s.status,
	       c.code, c.title, c.category, c.status
	FROM student_applications a
	JOIN students s ON s.id = a.student_id
	JOIN courses c ON c.id = a.course_id
`

func scanApplication(row pgx.Row) (*models.StudentApplication, error) {
	var app models.StudentApplication
	err := row.Scan(
		&app.ID,
		&app.StudentID,
		&app.CourseID,
		&app.Status,
		&app.ApplicationNotes,
		&app.ProgressPercentage,
		&app.AppliedAt,
		&app.UpdatedAt,
		&app.InterviewDate,
		&app.AcceptedAt,
		&app.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func scanJoinedApplication(row pgx.Row) (*models.StudentApplication, error) {
	var app models.StudentApplication
	var student models.Student
	var course models.Course
	err := row.Scan(
		&app.ID,
		&app.StudentID,
		&app.CourseID,
		&app.Status,
		&app.ApplicationNotes,
		&app.ProgressPercentage,
		&app.AppliedAt,
		&app.UpdatedAt,
		&app.InterviewDate,
		&app.AcceptedAt,
		&app.CompletedAt,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Status,
		&course.Code,
		&course.Title,
		&course.Category,
		&course.Status,
	)
	if err != nil {
		return nil, err
	}

	student.ID = app.StudentID
	course.ID = app.CourseID
	app.Student = &student
	app.Course = &course
	return &app, nil
}

// CreateTx inserts a new application inside an existing transaction. The
// unique index on student_id is the final arbiter of the one-application
// rule; a concurrent duplicate surfaces as the already-applied error.
func (r *ApplicationRepository) CreateTx(ctx context.Context, tx pgx.Tx, app *models.StudentApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}

	query := `
		INSERT INTO student_applications (id, student_id, course_id, status,
		                                  application_notes, progress_percentage)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING applied_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		app.ID, app.StudentID, app.CourseID, app.Status,
		app.ApplicationNotes, app.ProgressPercentage,
	).Scan(&app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// ReplaceTx overwrites a rejected application with a fresh one in place,
// keeping the row id so the unique student constraint never has a gap.
func (r *ApplicationRepository) ReplaceTx(ctx context.Context, tx pgx.Tx, app *models.StudentApplication) error {
	query := `
		UPDATE student_applications
		SET course_id = $1, status = $2, application_notes = $3,
		    progress_percentage = $4, applied_at = now(), updated_at = now(),
		    interview_date = NULL, accepted_at = NULL, completed_at = NULL
		WHERE id = $5
		RETURNING applied_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		app.CourseID, app.Status, app.ApplicationNotes,
		app.ProgressPercentage, app.ID,
	).Scan(&app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error replacing application: %w", err)
	}

	app.InterviewDate = nil
	app.AcceptedAt = nil
	app.CompletedAt = nil
	return nil
}

// UpdateTx persists workflow fields of an application inside an existing
// transaction.
func (r *ApplicationRepository) UpdateTx(ctx context.Context, tx pgx.Tx, app *models.StudentApplication) error {
	query := `
		UPDATE student_applications
		SET status = $1, progress_percentage = $2, interview_date = $3,
		    accepted_at = $4, completed_at = $5, updated_at = now()
		WHERE id = $6
	`

	cmdTag, err := tx.Exec(ctx, query,
		app.Status, app.ProgressPercentage, app.InterviewDate,
		app.AcceptedAt, app.CompletedAt, app.ID)
	if err != nil {
		return fmt.Errorf("error updating application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.StudentApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM student_applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetByStudentID retrieves a student's application, if any
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID uuid.UUID) (*models.StudentApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM student_applications WHERE student_id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetAll retrieves all applications with student and course loaded
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.StudentApplication, error) {
	rows, err := r.db.Query(ctx, joinedApplicationQuery+` ORDER BY a.applied_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJoinedApplications(rows)
}

// GetByCourseID retrieves all applications for a course
func (r *ApplicationRepository) GetByCourseID(ctx context.Context, courseID uuid.UUID) ([]*models.StudentApplication, error) {
	rows, err := r.db.Query(ctx,
		joinedApplicationQuery+` WHERE a.course_id = $1 ORDER BY a.applied_at DESC`,
		courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJoinedApplications(rows)
}

// Search retrieves applications whose student or course matches the query,
// case-insensitively.
func (r *ApplicationRepository) Search(ctx context.Context, query string) ([]*models.StudentApplication, error) {
	sql := joinedApplicationQuery + `
		WHERE s.first_name ILIKE $1 OR s.last_name ILIKE $1 OR s.email ILIKE $1
		   OR c.title ILIKE $1 OR c.code ILIKE $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJoinedApplications(rows)
}

// GetAppliedAfter retrieves applications submitted after the given time
func (r *ApplicationRepository) GetAppliedAfter(ctx context.Context, since time.Time) ([]*models.StudentApplication, error) {
	rows, err := r.db.Query(ctx,
		joinedApplicationQuery+` WHERE a.applied_at >= $1 ORDER BY a.applied_at DESC`,
		since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJoinedApplications(rows)
}

func collectJoinedApplications(rows pgx.Rows) ([]*models.StudentApplication, error) {
	var apps []*models.StudentApplication
	for rows.Next() {
		app, err := scanJoinedApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// GetStats aggregates application counters by workflow status. weekStart
// bounds the this-week counter.
func (r *ApplicationRepository) GetStats(ctx context.Context, weekStart time.Time) (*dto.ApplicationStats, error) {
	var stats dto.ApplicationStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE applied_at >= $1),
		       COUNT(*) FILTER (WHERE status = 'APPLIED'),
		       COUNT(*) FILTER (WHERE status = 'UNDER_REVIEW'),
		       COUNT(*) FILTER (WHERE status = 'INTERVIEW'),
		       COUNT(*) FILTER (WHERE status = 'ACCEPTED'),
		       COUNT(*) FILTER (WHERE status = 'REJECTED'),
		       COUNT(*) FILTER (WHERE status = 'COMPLETED')
		FROM student_applications
	`, weekStart).Scan(&stats.Total, &stats.ThisWeek, &stats.Applied,
		&stats.UnderReview, &stats.Interview, &stats.Accepted,
		&stats.Rejected, &stats.Completed)
	if err != nil {
		return nil, fmt.Errorf("error counting applications: %w", err)
	}
	return &stats, nil
}
