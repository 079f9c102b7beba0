package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	SubjectRepository      *SubjectRepository
	AcademicPlanRepository *AcademicPlanRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		AcademicPlanRepository: NewAcademicPlanRepository(db),
	}
}
