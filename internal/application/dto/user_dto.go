package dto

import "time"

// RegisterRequest signup input. The account is created in Pending status and
// stays there until the selected line manager decides.
type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FullName      string `json:"full_name" validate:"required,max=200"`
	Role          string `json:"role" validate:"omitempty"`
	Department    string `json:"department" validate:"required"`
	Phone         string `json:"phone" validate:"omitempty"`
	LineManagerID string `json:"line_manager_id" validate:"required,uuid"`
}

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse a user without credentials.
type UserResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	Role          string     `json:"role"`
	Department    string     `json:"department,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Status        string     `json:"status"`
	LineManagerID string     `json:"line_manager_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

// LoginResponse JWT plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ManagerOption one entry of the line-manager dropdown on the signup form.
type ManagerOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// TeamMember one row of the team list.
type TeamMember struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Department      string `json:"department,omitempty"`
	LineManagerName string `json:"line_manager_name,omitempty"`
}

// DecideRegistrationRequest optional role override on approval. An empty Role
// keeps the role the requester selected at signup.
type DecideRegistrationRequest struct {
	Role string `json:"role" validate:"omitempty"`
}
