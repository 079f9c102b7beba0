package services

import (
	"context"

	"github.com/dkravch/studyplan/internal/app/models"
)

// Repository interfaces consumed by the services. The concrete
// implementations live in internal/app/repositories; tests substitute
// in-memory fakes.

// UserRepository is the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// StudentRepository is the student store.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// SubjectRepository is the subject store.
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
}

// AcademicPlanRepository is the academic plan store.
type AcademicPlanRepository interface {
	Create(ctx context.Context, plan *models.AcademicPlan) error
	GetByID(ctx context.Context, id int64) (*models.AcademicPlan, error)
	GetAll(ctx context.Context) ([]*models.AcademicPlan, error)
	UpdateGrade(ctx context.Context, id int64, grade *float64) error
	Delete(ctx context.Context, id int64) error
}
