package dto

// CreateAcademicPlanRequest represents standalone plan creation data.
type CreateAcademicPlanRequest struct {
	StudentID  int64    `json:"studentId" binding:"required" example:"1"`
	SubjectID  int64    `json:"subjectId" binding:"required" example:"1"`
	FinalGrade *float64 `json:"finalGrade"`
}

// UpdateAcademicPlanRequest represents a grade update. The grade is always
// written: a null or absent finalGrade clears it.
type UpdateAcademicPlanRequest struct {
	FinalGrade *float64 `json:"finalGrade"`
}
