package models

// Student defines the student model based on the 'students' table.
type Student struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	FirstName  string  `json:"firstName" db:"first_name" example:"Taras"`
	LastName   string  `json:"lastName" db:"last_name" example:"Kovalenko"`
	MiddleName *string `json:"middleName,omitempty" db:"middle_name"` // Pointer for potential NULL
	Address    *string `json:"address,omitempty" db:"address"`
	Phone      *string `json:"phone,omitempty" db:"phone"`
}
