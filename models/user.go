package models

import "time"

type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	CompanyName     *string   `json:"company_name"`
	CompanyServices *string   `json:"company_services"`
	CreatedAt       time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest is a partial overwrite: nil fields are left untouched.
type ProfileUpdateRequest struct {
	CompanyName     *string `json:"company_name"`
	CompanyServices *string `json:"company_services"`
}
