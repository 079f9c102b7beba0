package dto

// CreateStudentRequest represents student creation data.
type CreateStudentRequest struct {
	FirstName  string  `json:"firstName" binding:"required" example:"Taras"`
	LastName   string  `json:"lastName" binding:"required" example:"Kovalenko"`
	MiddleName *string `json:"middleName"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
}

// UpdateStudentRequest represents a partial student update. Nil fields are
// left unchanged.
type UpdateStudentRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	MiddleName *string `json:"middleName"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
}
