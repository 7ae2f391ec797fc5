package user

import (
	"context"
	"errors"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerhq/timeclock-backend-go/internal/domain/user"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/validator"
)

const (
	adminID = "9f86d081-8292-4bda-a1b6-0c7fbe2f3dc5"
	staffID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

type fakeUserRepo struct {
	user.UserRepository
	users       map[string]user.User
	updatedID   string
	updatedRole user.Role
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error {
	f.updatedID = id
	f.updatedRole = role
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestUpdateUserRolePromotesAnotherUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{
		staffID: {ID: staffID, Email: "ana@example.com", FullName: "Ana Souza", Role: user.RoleStaff},
	}}
	svc := NewUserService(repo)

	resp, err := svc.UpdateUserRole(authedContext(t, adminID), user.UpdateUserRoleRequest{
		ID:   staffID,
		Role: "hr",
	})
	require.NoError(t, err)

	assert.Equal(t, staffID, repo.updatedID)
	assert.Equal(t, user.RoleHR, repo.updatedRole)
	assert.Equal(t, "hr", resp.Role)
	assert.Equal(t, "ana@example.com", resp.Email)
}

func TestUpdateUserRoleRejectsOwnRole(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{
		adminID: {ID: adminID, Role: user.RoleAdmin},
	}}
	svc := NewUserService(repo)

	_, err := svc.UpdateUserRole(authedContext(t, adminID), user.UpdateUserRoleRequest{
		ID:   adminID,
		Role: "staff",
	})
	assert.ErrorIs(t, err, user.ErrCannotChangeOwnRole)
	assert.Empty(t, repo.updatedID)
}

func TestUpdateUserRoleUnknownUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	svc := NewUserService(repo)

	_, err := svc.UpdateUserRole(authedContext(t, adminID), user.UpdateUserRoleRequest{
		ID:   staffID,
		Role: "hr",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateUserRoleValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	cases := []struct {
		name  string
		req   user.UpdateUserRoleRequest
		field string
	}{
		{"rejects malformed id", user.UpdateUserRoleRequest{ID: "not-a-uuid", Role: "hr"}, "id"},
		{"rejects unknown role", user.UpdateUserRoleRequest{ID: staffID, Role: "superuser"}, "role"},
		{"rejects empty role", user.UpdateUserRoleRequest{ID: staffID, Role: ""}, "role"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.UpdateUserRole(authedContext(t, adminID), c.req)

			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			assert.Contains(t, validationErrs.ToMap(), c.field)
		})
	}
}
