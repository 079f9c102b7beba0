package dto

// CreateSubjectRequest represents subject creation data. The wire names keep
// the volume terminology used by API clients while the stored fields are
// hours. When IDStudent is set, an academic plan for that student is created
// together with the subject.
type CreateSubjectRequest struct {
	IDStudent       *int64 `json:"idStudent"`
	Name            string `json:"name" binding:"required" example:"Algebra"`
	LecturesVolume  *int   `json:"lecturesVolume" binding:"required" example:"30"`
	PracticesVolume *int   `json:"practicesVolume" binding:"required" example:"20"`
	LabsVolume      *int   `json:"labsVolume" binding:"required" example:"10"`
}

// UpdateSubjectRequest represents a partial subject update. Nil fields are
// left unchanged.
type UpdateSubjectRequest struct {
	IDStudent       *int64  `json:"idStudent"`
	Name            *string `json:"name"`
	LecturesVolume  *int    `json:"lecturesVolume"`
	PracticesVolume *int    `json:"practicesVolume"`
	LabsVolume      *int    `json:"labsVolume"`
}
