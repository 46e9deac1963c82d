package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/identity"
)

// LoginRequest carries admin login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest represents a request to create a user account
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=admin staff customer"`
}

// ChangeUserRoleRequest asks for a role change
type ChangeUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin staff customer"`
}

// ChangeUserStatusRequest enables or disables an account
type ChangeUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active disabled"`
}

// UserListFilter represents the query parameters of the user listing
type UserListFilter struct {
	Search    string `form:"search"`
	Role      string `form:"role" binding:"omitempty,oneof=admin staff customer"`
	Status    string `form:"status" binding:"omitempty,oneof=active disabled"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=createdAt updatedAt name email role status lastLoginAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// UserResponse represents a user in API responses. The password hash is
// deliberately absent; the field set here is the full exposure.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	LastLoginAt *string   `json:"lastLoginAt,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
	if u.LastLoginAt != nil {
		s := formatTime(*u.LastLoginAt)
		resp.LastLoginAt = &s
	}
	return resp
}

// ToUserResponses converts a slice of domain Users to responses
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
