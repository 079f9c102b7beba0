package models

import "time"

// AcademicPlan is the join record linking one student to one subject with an
// optional final grade. FinalGrade stays NULL until the subject is graded.
type AcademicPlan struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	StudentID  int64     `json:"studentId" db:"student_id" example:"1"`
	SubjectID  int64     `json:"subjectId" db:"subject_id" example:"1"`
	FinalGrade *float64  `json:"finalGrade" db:"final_grade"` // NULL until graded
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	// Relations resolved on read; serialized as null when the reference is
	// dangling.
	Student *Student `json:"student"`
	Subject *Subject `json:"subject"`
}
