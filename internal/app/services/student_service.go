package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkravch/studyplan/internal/app/models"
	"github.com/dkravch/studyplan/internal/app/models/dto"
	"github.com/dkravch/studyplan/internal/pkg/apperrors"
)

// StudentService handles student CRUD operations.
type StudentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance.
func NewStudentService(studentRepo StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations.
func (s *StudentService) validateStudent(student *models.Student) error {
	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: firstName cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: lastName cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStudent creates a new student.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Address:    req.Address,
		Phone:      req.Phone,
	}

	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// GetStudentByID retrieves a student by ID.
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	return student, nil
}

// GetAllStudents retrieves all students.
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// UpdateStudent applies a partial update. Nil request fields leave the
// stored values unchanged.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		student.MiddleName = req.MiddleName
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}

	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// DeleteStudent deletes a student by ID. Subjects and plans referencing the
// student are left untouched.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving student: %w", err)
	}

	if student == nil {
		return apperrors.ErrStudentNotFound
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}
