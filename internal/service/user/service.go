package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/makerhq/timeclock-backend-go/internal/domain/user"
)

type UserService interface {
	// UpdateUserRole changes the role of another account. Admins cannot
	// change their own role, so the last admin cannot lock everyone out.
	UpdateUserRole(ctx context.Context, req user.UpdateUserRoleRequest) (user.UserResponse, error)
}

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// UpdateUserRole implements UserService.
func (s *UserServiceImpl) UpdateUserRole(ctx context.Context, req user.UpdateUserRoleRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if actorID, _ := claims["user_id"].(string); actorID == req.ID {
		return user.UserResponse{}, user.ErrCannotChangeOwnRole
	}

	target, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := s.UserRepository.UpdateRole(ctx, target.ID, user.Role(req.Role)); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user role: %w", err)
	}

	return user.UserResponse{
		ID:       target.ID,
		Email:    target.Email,
		FullName: target.FullName,
		Role:     req.Role,
	}, nil
}
