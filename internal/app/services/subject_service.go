package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkravch/studyplan/internal/app/models"
	"github.com/dkravch/studyplan/internal/app/models/dto"
	"github.com/dkravch/studyplan/internal/pkg/apperrors"
)

// SubjectService handles subject CRUD operations, including the composite
// subject-with-plan creation.
type SubjectService struct {
	subjectRepo SubjectRepository
	planRepo    AcademicPlanRepository
}

// NewSubjectService creates a new subject service instance.
func NewSubjectService(subjectRepo SubjectRepository, planRepo AcademicPlanRepository) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		planRepo:    planRepo,
	}
}

// validateSubject validates subject data before database operations.
func (s *SubjectService) validateSubject(subject *models.Subject) error {
	if strings.TrimSpace(subject.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if subject.LecturesHours < 0 {
		return fmt.Errorf("%w: lecturesVolume must be non-negative", apperrors.ErrValidationFailed)
	}

	if subject.PracticeHours < 0 {
		return fmt.Errorf("%w: practicesVolume must be non-negative", apperrors.ErrValidationFailed)
	}

	if subject.LabHours < 0 {
		return fmt.Errorf("%w: labsVolume must be non-negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateSubject creates a subject. When the request names an owning student,
// an academic plan with a null grade is created right after the subject. The
// two writes are independent: when the plan write fails the subject stays
// and the plan error is returned.
func (s *SubjectService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, *models.AcademicPlan, error) {
	subject := &models.Subject{
		StudentID:     req.IDStudent,
		Name:          req.Name,
		LecturesHours: *req.LecturesVolume,
		PracticeHours: *req.PracticesVolume,
		LabHours:      *req.LabsVolume,
	}

	if err := s.validateSubject(subject); err != nil {
		return nil, nil, err
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, nil, fmt.Errorf("error creating subject: %w", err)
	}

	if req.IDStudent == nil {
		return subject, nil, nil
	}

	plan := &models.AcademicPlan{
		StudentID:  *req.IDStudent,
		SubjectID:  subject.ID,
		FinalGrade: nil,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, nil, fmt.Errorf("error creating academic plan: %w", err)
	}

	return subject, plan, nil
}

// GetSubjectByID retrieves a subject by ID.
func (s *SubjectService) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	if subject == nil {
		return nil, apperrors.ErrSubjectNotFound
	}

	return subject, nil
}

// GetAllSubjects retrieves all subjects, optionally filtered by the owning
// student.
func (s *SubjectService) GetAllSubjects(ctx context.Context, studentID *int64) ([]*models.Subject, error) {
	var (
		subjects []*models.Subject
		err      error
	)

	if studentID != nil {
		subjects, err = s.subjectRepo.GetByStudentID(ctx, *studentID)
	} else {
		subjects, err = s.subjectRepo.GetAll(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}

	return subjects, nil
}

// UpdateSubject applies a partial update. Nil request fields leave the
// stored values unchanged.
func (s *SubjectService) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	if subject == nil {
		return nil, apperrors.ErrSubjectNotFound
	}

	if req.IDStudent != nil {
		subject.StudentID = req.IDStudent
	}
	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.LecturesVolume != nil {
		subject.LecturesHours = *req.LecturesVolume
	}
	if req.PracticesVolume != nil {
		subject.PracticeHours = *req.PracticesVolume
	}
	if req.LabsVolume != nil {
		subject.LabHours = *req.LabsVolume
	}

	if err := s.validateSubject(subject); err != nil {
		return nil, err
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, fmt.Errorf("error updating subject: %w", err)
	}

	return subject, nil
}

// DeleteSubject deletes a subject by ID. Plans referencing the subject are
// left untouched.
func (s *SubjectService) DeleteSubject(ctx context.Context, id int64) error {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving subject: %w", err)
	}

	if subject == nil {
		return apperrors.ErrSubjectNotFound
	}

	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	return nil
}
