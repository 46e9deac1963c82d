package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by their ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by their email address
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindPage returns one page of users matching the query together with
	// the total match count, both read from a consistent snapshot
	FindPage(ctx context.Context, q shared.ListQuery) ([]User, int64, error)

	// ExistsByEmail checks whether a user with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
