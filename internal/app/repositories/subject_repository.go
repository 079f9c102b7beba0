package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkravch/studyplan/internal/app/models"
)

// SubjectRepository handles database operations for subjects.
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository.
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (student_id, name, lectures_hours, practice_hours, lab_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		subject.StudentID,
		subject.Name,
		subject.LecturesHours,
		subject.PracticeHours,
		subject.LabHours,
	).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID. Returns (nil, nil) when no record
// matches.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, student_id, name, lectures_hours, practice_hours, lab_hours
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.StudentID,
		&subject.Name,
		&subject.LecturesHours,
		&subject.PracticeHours,
		&subject.LabHours,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetAll retrieves all subjects.
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	return r.querySubjects(ctx, `
		SELECT id, student_id, name, lectures_hours, practice_hours, lab_hours
		FROM subjects
		ORDER BY id
	`)
}

// GetByStudentID retrieves all subjects owned by a student.
func (r *SubjectRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Subject, error) {
	return r.querySubjects(ctx, `
		SELECT id, student_id, name, lectures_hours, practice_hours, lab_hours
		FROM subjects
		WHERE student_id = $1
		ORDER BY id
	`, studentID)
}

func (r *SubjectRepository) querySubjects(ctx context.Context, query string, args ...interface{}) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.StudentID,
			&subject.Name,
			&subject.LecturesHours,
			&subject.PracticeHours,
			&subject.LabHours,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Update persists the full subject record.
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET student_id = $1, name = $2, lectures_hours = $3, practice_hours = $4, lab_hours = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.StudentID,
		subject.Name,
		subject.LecturesHours,
		subject.PracticeHours,
		subject.LabHours,
		subject.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a subject by ID. Plans referencing it stay behind.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
