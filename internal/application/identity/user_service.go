package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// maxUserPageSize caps how many users one listing page may return
const maxUserPageSize = 1000

// userSortColumns maps API sort keys to store columns
var userSortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"name":        "name",
	"email":       "email",
	"role":        "role",
	"status":      "status",
	"lastLoginAt": "last_login_at",
}

// userSearchFields are the columns free-text search runs over
var userSearchFields = []string{"name", "email"}

// UserService handles user account management
type UserService struct {
	users  identity.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// List retrieves one page of user accounts
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, shared.PageInfo, error) {
	q := shared.ListQuery{
		SortBy:    userSortColumns[filter.SortBy],
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}.Normalize(maxUserPageSize)

	p := shared.Predicate{}
	if filter.Role != "" {
		p = p.AndEq("role", filter.Role)
	}
	if filter.Status != "" {
		p = p.AndEq("status", filter.Status)
	}
	p = p.AndSearch(filter.Search, userSearchFields...)
	q.Predicate = p

	users, total, err := s.users.FindPage(ctx, q)
	if err != nil {
		return nil, shared.PageInfo{}, err
	}
	return ToUserResponses(users), shared.NewPageInfo(total, q.Page, q.Limit), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this email already exists")
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := ToUserResponse(user)
	return &resp, nil
}

// ChangeRole assigns a new role to an existing user
func (s *UserService) ChangeRole(ctx context.Context, id uuid.UUID, req ChangeUserRoleRequest) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeRole(identity.Role(req.Role)); err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role))

	resp := ToUserResponse(user)
	return &resp, nil
}

// ChangeStatus enables or disables an existing account
func (s *UserService) ChangeStatus(ctx context.Context, id uuid.UUID, req ChangeUserStatusRequest) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeStatus(identity.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User status changed",
		zap.String("user_id", user.ID.String()),
		zap.String("status", req.Status))

	resp := ToUserResponse(user)
	return &resp, nil
}
