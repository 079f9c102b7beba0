package models

// Subject defines the subject model based on the 'subjects' table.
// StudentID is an optional back-reference to the owning student; the column
// carries no foreign-key constraint.
type Subject struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	StudentID     *int64 `json:"studentId,omitempty" db:"student_id"`
	Name          string `json:"name" db:"name" example:"Algebra"`
	LecturesHours int    `json:"lecturesHours" db:"lectures_hours" example:"30"`
	PracticeHours int    `json:"practiceHours" db:"practice_hours" example:"20"`
	LabHours      int    `json:"labHours" db:"lab_hours" example:"10"`
}
