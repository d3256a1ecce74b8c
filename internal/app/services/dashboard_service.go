package services

import (
	"context"

	"github.com/trackpro/trackpro/internal/app/models/dto"
)

// DashboardService aggregates counters from every domain service
type DashboardService struct {
	students     *StudentService
	users        *UserService
	admins       *AdminService
	courses      *CourseService
	applications *ApplicationService
	complaints   *ComplaintService
}

// NewDashboardService creates the dashboard aggregator
func NewDashboardService(students *StudentService, users *UserService, admins *AdminService,
	courses *CourseService, applications *ApplicationService, complaints *ComplaintService) *DashboardService {
	return &DashboardService{
		students:     students,
		users:        users,
		admins:       admins,
		courses:      courses,
		applications: applications,
		complaints:   complaints,
	}
}

// GetStats collects all dashboard counters
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	studentStats, err := s.students.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	userStats, err := s.users.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	adminStats, err := s.admins.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	courseStats, err := s.courses.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	applicationStats, err := s.applications.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	complaintStats, err := s.complaints.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Students:     *studentStats,
		Users:        *userStats,
		Admins:       *adminStats,
		Courses:      *courseStats,
		Applications: *applicationStats,
		Complaints:   *complaintStats,
	}, nil
}
