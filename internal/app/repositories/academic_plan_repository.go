package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkravch/studyplan/internal/app/models"
)

// AcademicPlanRepository handles database operations for academic plans.
type AcademicPlanRepository struct {
	db *pgxpool.Pool
}

// NewAcademicPlanRepository creates a new academic plan repository.
func NewAcademicPlanRepository(db *pgxpool.Pool) *AcademicPlanRepository {
	return &AcademicPlanRepository{
		db: db,
	}
}

// Create inserts a new academic plan.
func (r *AcademicPlanRepository) Create(ctx context.Context, plan *models.AcademicPlan) error {
	query := `
		INSERT INTO academic_plans (student_id, subject_id, final_grade)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		plan.StudentID,
		plan.SubjectID,
		plan.FinalGrade,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating academic plan: %w", err)
	}

	return nil
}

// GetByID retrieves an academic plan by ID. Returns (nil, nil) when no
// record matches.
func (r *AcademicPlanRepository) GetByID(ctx context.Context, id int64) (*models.AcademicPlan, error) {
	query := `
		SELECT id, student_id, subject_id, final_grade, created_at, updated_at
		FROM academic_plans
		WHERE id = $1
	`

	var plan models.AcademicPlan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID,
		&plan.StudentID,
		&plan.SubjectID,
		&plan.FinalGrade,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving academic plan: %w", err)
	}

	return &plan, nil
}

// GetAll retrieves all academic plans.
func (r *AcademicPlanRepository) GetAll(ctx context.Context) ([]*models.AcademicPlan, error) {
	query := `
		SELECT id, student_id, subject_id, final_grade, created_at, updated_at
		FROM academic_plans
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*models.AcademicPlan
	for rows.Next() {
		var plan models.AcademicPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.StudentID,
			&plan.SubjectID,
			&plan.FinalGrade,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// UpdateGrade writes the final grade, clearing it when grade is nil.
func (r *AcademicPlanRepository) UpdateGrade(ctx context.Context, id int64, grade *float64) error {
	query := `
		UPDATE academic_plans
		SET final_grade = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, grade, id)
	if err != nil {
		return fmt.Errorf("error updating academic plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes an academic plan by ID.
func (r *AcademicPlanRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
