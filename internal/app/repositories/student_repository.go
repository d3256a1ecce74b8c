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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, first_name, last_name, email, password, gender, date_of_birth, age, location, mobile_no, status, registered_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Password,
		&student.Gender,
		&student.DateOfBirth,
		&student.Age,
		&student.Location,
		&student.MobileNo,
		&student.Status,
		&student.RegisteredAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student. The unique index on LOWER(email) is the
// final arbiter for concurrent registrations with the same address.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}

	query := `
		INSERT INTO students (id, first_name, last_name, email, password, gender,
		                      date_of_birth, age, location, mobile_no, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING registered_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.ID, student.FirstName, student.LastName, student.Email,
		student.Password, student.Gender, student.DateOfBirth, student.Age,
		student.Location, student.MobileNo, student.Status,
	).Scan(&student.RegisteredAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email, case-insensitively
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE LOWER(email) = LOWER($1)`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students ordered by registration time
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY registered_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

// Search retrieves students whose name or email contains the query,
// case-insensitively.
func (r *StudentRepository) Search(ctx context.Context, query string) ([]*models.Student, error) {
	sql := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
		ORDER BY registered_at DESC
	`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

// GetRegisteredAfter retrieves students registered after the given time
func (r *StudentRepository) GetRegisteredAfter(ctx context.Context, since time.Time) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE registered_at >= $1
		ORDER BY registered_at DESC
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistsByEmail checks case-insensitively whether an email is already
// registered.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE LOWER(email) = LOWER($1))`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}
	return exists, nil
}

// UpdateStatus moves a student to a new lifecycle status
func (r *StudentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.StudentStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateStatusTx is UpdateStatus inside an existing transaction
func (r *StudentRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status models.StudentStatus) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE students SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetStats aggregates student counters for the dashboard. weekStart bounds
// the this-week counter.
func (r *StudentRepository) GetStats(ctx context.Context, weekStart time.Time) (*dto.StudentStats, error) {
	var stats dto.StudentStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE registered_at >= $1),
		       COUNT(*) FILTER (WHERE status = 'ENROLLED'),
		       COUNT(*) FILTER (WHERE status = 'COMPLETED'),
		       COUNT(*) FILTER (WHERE status = 'SUSPENDED')
		FROM students
	`, weekStart).Scan(&stats.Total, &stats.ThisWeek, &stats.Enrolled,
		&stats.Completed, &stats.Suspended)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	return &stats, nil
}
