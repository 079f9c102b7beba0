package models

import "time"

// User defines the user model based on the 'users' table.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
