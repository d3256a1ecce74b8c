package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository       *AdminRepository
	UserRepository        *UserRepository
	StudentRepository     *StudentRepository
	CourseRepository      *CourseRepository
	ApplicationRepository *ApplicationRepository
	ComplaintRepository   *ComplaintRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:       NewAdminRepository(db),
		UserRepository:        NewUserRepository(db),
		StudentRepository:     NewStudentRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		ComplaintRepository:   NewComplaintRepository(db),
	}
}
