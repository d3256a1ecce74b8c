package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
)

// TxRunner executes fn inside a database transaction
type TxRunner func(ctx context.Context, fn func(tx pgx.Tx) error) error

// applicationStore is the slice of the application repository the service needs
type applicationStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, app *models.StudentApplication) error
	ReplaceTx(ctx context.Context, tx pgx.Tx, app *models.StudentApplication) error
	UpdateTx(ctx context.Context, tx pgx.Tx, app *models.StudentApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StudentApplication, error)
	GetByStudentID(ctx context.Context, studentID uuid.UUID) (*models.StudentApplication, error)
	GetAll(ctx context.Context) ([]*models.StudentApplication, error)
	GetByCourseID(ctx context.Context, courseID uuid.UUID) ([]*models.StudentApplication, error)
	Search(ctx context.Context, query string) ([]*models.StudentApplication, error)
	GetAppliedAfter(ctx context.Context, since time.Time) ([]*models.StudentApplication, error)
	GetStats(ctx context.Context, weekStart time.Time) (*dto.ApplicationStats, error)
}

// applicantStore is the slice of the student repository the workflow needs
type applicantStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status models.StudentStatus) error
}

// courseReader is the slice of the course repository the workflow needs
type courseReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

// transition describes what entering an application status does: the
// progress value it pins, the timestamps it stamps and the student status
// it cascades to.
type transition struct {
	stampInterview bool
	stampAccepted  bool
	stampCompleted bool
	studentStatus  *models.StudentStatus
}

func studentStatusPtr(s models.StudentStatus) *models.StudentStatus { return &s }

var transitions = map[models.ApplicationStatus]transition{
	models.ApplicationApplied:     {},
	models.ApplicationUnderReview: {},
	models.ApplicationInterview:   {stampInterview: true},
	models.ApplicationAccepted:    {stampAccepted: true},
	models.ApplicationCompleted:   {stampCompleted: true, studentStatus: studentStatusPtr(models.StudentCompleted)},
	models.ApplicationRejected:    {studentStatus: studentStatusPtr(models.StudentRegistered)},
}

// ApplicationService implements the course application workflow
type ApplicationService struct {
	applications applicationStore
	students     applicantStore
	courses      courseReader
	inTx         TxRunner
	logger       zerolog.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(applications applicationStore, students applicantStore, courses courseReader, inTx TxRunner, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		students:     students,
		courses:      courses,
		inTx:         inTx,
		logger:       logger,
	}
}

// Apply submits a course application for a student. Checks run in a fixed
// order: student exists, student not suspended, no live application, course
// exists, course published. A previously rejected application is replaced in
// place. On success the application starts in APPLIED and the student moves
// to ENROLLED, both in one transaction.
func (s *ApplicationService) Apply(ctx context.Context, studentID, courseID uuid.UUID, notes *string) (*models.StudentApplication, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.Status == models.StudentSuspended {
		return nil, apperrors.NewIllegalStateError(apperrors.ErrStudentSuspended,
			"Your account is suspended and cannot apply for courses.")
	}

	existing, err := s.applications.GetByStudentID(ctx, studentID)
	if err != nil && !errors.Is(err, apperrors.ErrApplicationNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status != models.ApplicationRejected {
		return nil, apperrors.NewIllegalStateError(apperrors.ErrAlreadyApplied,
			"You have already applied for a course. Only one application is allowed.")
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if course.Status != models.CoursePublished {
		return nil, apperrors.NewIllegalStateError(apperrors.ErrCourseNotPublished,
			"This course is not open for applications.")
	}

	app := &models.StudentApplication{
		StudentID:          studentID,
		CourseID:           courseID,
		Status:             models.ApplicationApplied,
		ApplicationNotes:   notes,
		ProgressPercentage: models.ApplicationApplied.Progress(),
	}

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if existing != nil {
			app.ID = existing.ID
			if err := s.applications.ReplaceTx(ctx, tx, app); err != nil {
				return err
			}
		} else if err := s.applications.CreateTx(ctx, tx, app); err != nil {
			return err
		}
		return s.students.UpdateStatusTx(ctx, tx, studentID, models.StudentEnrolled)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyApplied) {
			// Lost the race on the unique student index
			return nil, apperrors.NewIllegalStateError(apperrors.ErrAlreadyApplied,
				"You have already applied for a course. Only one application is allowed.")
		}
		return nil, err
	}

	s.logger.Info().
		Str("studentId", studentID.String()).
		Str("courseId", courseID.String()).
		Str("applicationId", app.ID.String()).
		Msg("Application submitted")

	return app, nil
}

// CanApply reports whether a student may currently submit an application
func (s *ApplicationService) CanApply(ctx context.Context, studentID uuid.UUID) (*dto.CanApplyResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.Status == models.StudentSuspended {
		return &dto.CanApplyResponse{
			CanApply: false,
			Reason:   "Your account is suspended and cannot apply for courses.",
		}, nil
	}

	existing, err := s.applications.GetByStudentID(ctx, studentID)
	if err != nil && !errors.Is(err, apperrors.ErrApplicationNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status != models.ApplicationRejected {
		return &dto.CanApplyResponse{
			CanApply: false,
			Reason:   "You have already applied for a course. Only one application is allowed.",
		}, nil
	}

	return &dto.CanApplyResponse{CanApply: true}, nil
}

// UpdateStatus moves an application to a new workflow status. The transition
// table pins the progress value, stamps milestone timestamps and cascades
// the student status where the workflow demands it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID uuid.UUID, newStatus models.ApplicationStatus) (*models.StudentApplication, error) {
	tr, ok := transitions[newStatus]
	if !ok {
		return nil, apperrors.NewBadRequestError(apperrors.ErrInvalidStatus,
			"Unknown application status: "+string(newStatus))
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = newStatus
	app.ProgressPercentage = newStatus.Progress()
	if tr.stampInterview {
		app.InterviewDate = &now
	}
	if tr.stampAccepted {
		app.AcceptedAt = &now
	}
	if tr.stampCompleted {
		app.CompletedAt = &now
	}

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.applications.UpdateTx(ctx, tx, app); err != nil {
			return err
		}
		if tr.studentStatus != nil {
			return s.students.UpdateStatusTx(ctx, tx, app.StudentID, *tr.studentStatus)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("applicationId", app.ID.String()).
		Str("status", string(newStatus)).
		Int("progress", app.ProgressPercentage).
		Msg("Application status updated")

	return app, nil
}

// GetStudentApplication retrieves a student's application
func (s *ApplicationService) GetStudentApplication(ctx context.Context, studentID uuid.UUID) (*models.StudentApplication, error) {
	return s.applications.GetByStudentID(ctx, studentID)
}

// GetProgress reports a student's position in the application journey
func (s *ApplicationService) GetProgress(ctx context.Context, studentID uuid.UUID) (*dto.ProgressResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	app, err := s.applications.GetByStudentID(ctx, studentID)
	if err != nil && !errors.Is(err, apperrors.ErrApplicationNotFound) {
		return nil, err
	}

	return buildProgress(student, app), nil
}

// journeySteps is the ordered application journey shown to students
var journeySteps = []string{"Registered", "Applied", "Under Review", "Interview", "Accepted"}

func journeyIndex(app *models.StudentApplication) int {
	if app == nil {
		return 0
	}
	switch app.Status {
	case models.ApplicationApplied:
		return 1
	case models.ApplicationUnderReview:
		return 2
	case models.ApplicationInterview:
		return 3
	case models.ApplicationAccepted, models.ApplicationCompleted:
		return 4
	default: // REJECTED drops back to the start
		return 0
	}
}

func buildProgress(student *models.Student, app *models.StudentApplication) *dto.ProgressResponse {
	idx := journeyIndex(app)

	steps := make([]dto.ProgressStep, len(journeySteps))
	for i, name := range journeySteps {
		steps[i] = dto.ProgressStep{
			Name:      name,
			Completed: i < idx,
			Current:   i == idx,
		}
	}

	status := string(student.Status)
	progress := 0
	if app != nil {
		status = string(app.Status)
		progress = app.ProgressPercentage
	}

	return &dto.ProgressResponse{
		StudentID:   student.ID,
		Status:      status,
		Progress:    progress,
		CurrentStep: journeySteps[idx],
		Steps:       steps,
	}
}

// GetAll retrieves all applications with student and course loaded
func (s *ApplicationService) GetAll(ctx context.Context) ([]*models.StudentApplication, error) {
	return s.applications.GetAll(ctx)
}

// GetCourseApplications retrieves all applications for a course
func (s *ApplicationService) GetCourseApplications(ctx context.Context, courseID uuid.UUID) ([]*models.StudentApplication, error) {
	return s.applications.GetByCourseID(ctx, courseID)
}

// Search finds applications by student or course substring
func (s *ApplicationService) Search(ctx context.Context, query string) ([]*models.StudentApplication, error) {
	if query == "" {
		return s.applications.GetAll(ctx)
	}
	return s.applications.Search(ctx, query)
}

// GetRecent retrieves applications submitted within the last seven days
func (s *ApplicationService) GetRecent(ctx context.Context) ([]*models.StudentApplication, error) {
	return s.applications.GetAppliedAfter(ctx, time.Now().AddDate(0, 0, -7))
}

// GetStats aggregates application counters for the dashboard
func (s *ApplicationService) GetStats(ctx context.Context) (*dto.ApplicationStats, error) {
	return s.applications.GetStats(ctx, time.Now().AddDate(0, 0, -7))
}
