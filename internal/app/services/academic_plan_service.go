package services

import (
	"context"
	"fmt"

	"github.com/dkravch/studyplan/internal/app/models"
	"github.com/dkravch/studyplan/internal/app/models/dto"
	"github.com/dkravch/studyplan/internal/pkg/apperrors"
)

// AcademicPlanService handles academic plan operations. Reads resolve the
// referenced student and subject inline.
type AcademicPlanService struct {
	planRepo    AcademicPlanRepository
	studentRepo StudentRepository
	subjectRepo SubjectRepository
}

// NewAcademicPlanService creates a new academic plan service instance.
func NewAcademicPlanService(planRepo AcademicPlanRepository, studentRepo StudentRepository, subjectRepo SubjectRepository) *AcademicPlanService {
	return &AcademicPlanService{
		planRepo:    planRepo,
		studentRepo: studentRepo,
		subjectRepo: subjectRepo,
	}
}

// validateGrade checks a final grade when present.
func (s *AcademicPlanService) validateGrade(grade *float64) error {
	if grade == nil {
		return nil
	}

	if *grade < 1 || *grade > 5 {
		return fmt.Errorf("%w: finalGrade must be between 1 and 5", apperrors.ErrValidationFailed)
	}

	return nil
}

// resolve attaches the referenced student and subject to the plan. A
// dangling reference leaves the field nil instead of failing the read.
func (s *AcademicPlanService) resolve(ctx context.Context, plan *models.AcademicPlan) {
	if student, err := s.studentRepo.GetByID(ctx, plan.StudentID); err == nil {
		plan.Student = student
	}

	if subject, err := s.subjectRepo.GetByID(ctx, plan.SubjectID); err == nil {
		plan.Subject = subject
	}
}

// CreatePlan creates a standalone academic plan. Referential integrity is
// not checked at write time.
func (s *AcademicPlanService) CreatePlan(ctx context.Context, req *dto.CreateAcademicPlanRequest) (*models.AcademicPlan, error) {
	if err := s.validateGrade(req.FinalGrade); err != nil {
		return nil, err
	}

	plan := &models.AcademicPlan{
		StudentID:  req.StudentID,
		SubjectID:  req.SubjectID,
		FinalGrade: req.FinalGrade,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("error creating academic plan: %w", err)
	}

	s.resolve(ctx, plan)
	return plan, nil
}

// GetPlanByID retrieves one plan with its student and subject resolved.
func (s *AcademicPlanService) GetPlanByID(ctx context.Context, id int64) (*models.AcademicPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic plan: %w", err)
	}

	if plan == nil {
		return nil, apperrors.ErrPlanNotFound
	}

	s.resolve(ctx, plan)
	return plan, nil
}

// GetAllPlans retrieves all plans with their references resolved.
func (s *AcademicPlanService) GetAllPlans(ctx context.Context) ([]*models.AcademicPlan, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic plans: %w", err)
	}

	for _, plan := range plans {
		s.resolve(ctx, plan)
	}

	return plans, nil
}

// UpdatePlan writes the final grade. A nil grade clears it; that is the only
// way to un-grade a plan.
func (s *AcademicPlanService) UpdatePlan(ctx context.Context, id int64, req *dto.UpdateAcademicPlanRequest) (*models.AcademicPlan, error) {
	if err := s.validateGrade(req.FinalGrade); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic plan: %w", err)
	}

	if plan == nil {
		return nil, apperrors.ErrPlanNotFound
	}

	if err := s.planRepo.UpdateGrade(ctx, id, req.FinalGrade); err != nil {
		return nil, fmt.Errorf("error updating academic plan: %w", err)
	}

	plan.FinalGrade = req.FinalGrade
	s.resolve(ctx, plan)
	return plan, nil
}

// DeletePlan deletes an academic plan by ID.
func (s *AcademicPlanService) DeletePlan(ctx context.Context, id int64) error {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving academic plan: %w", err)
	}

	if plan == nil {
		return apperrors.ErrPlanNotFound
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting academic plan: %w", err)
	}

	return nil
}
