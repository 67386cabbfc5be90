package services

import (
	"context"
	"fmt"
	"testing"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (*UserService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	return NewUserService(userRepo), userRepo
}

func TestUpdateProfile(t *testing.T) {
	svc, userRepo := newTestUserService()
	ctx := context.Background()
	user := seedUser(t, userRepo, 0)

	name := "New Name"
	picture := "https://cdn.example.com/me.png"
	updated, err := svc.UpdateProfile(ctx, user.ID, &UpdateProfileInput{
		Name:           &name,
		ProfilePicture: &picture,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	require.NotNil(t, updated.ProfilePicture)
	assert.Equal(t, picture, *updated.ProfilePicture)

	// Blank name is ignored rather than stored
	blank := "   "
	updated, err = svc.UpdateProfile(ctx, user.ID, &UpdateProfileInput{Name: &blank})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestChangePassword(t *testing.T) {
	svc, userRepo := newTestUserService()
	ctx := context.Background()

	hashed, err := password.Hash("old-password")
	require.NoError(t, err)
	user := &models.User{Name: "Aung", Email: "aung@example.com", Password: hashed}
	require.NoError(t, userRepo.Create(ctx, user))

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{
		OldPassword: "wrong", NewPassword: "new-password1",
	})
	assert.ErrorIs(t, err, ErrOldPasswordWrong)

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{
		OldPassword: "old-password", NewPassword: "new-password1",
	})
	require.NoError(t, err)
	assert.True(t, password.Verify("new-password1", userRepo.users[user.ID].Password))
}

func TestSetRole(t *testing.T) {
	svc, userRepo := newTestUserService()
	ctx := context.Background()

	admin := &models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, userRepo.Create(ctx, admin))
	user := &models.User{Name: "User", Email: "user@example.com", Role: models.RoleUser}
	require.NoError(t, userRepo.Create(ctx, user))

	require.NoError(t, svc.SetRole(ctx, admin.ID, user.ID, models.RoleAdmin))
	assert.Equal(t, models.RoleAdmin, userRepo.users[user.ID].Role)

	assert.ErrorIs(t, svc.SetRole(ctx, admin.ID, user.ID, "superuser"), ErrInvalidRole)
	assert.ErrorIs(t, svc.SetRole(ctx, admin.ID, admin.ID, models.RoleUser), ErrCannotChangeOwnRole)
	assert.ErrorIs(t, svc.SetRole(ctx, admin.ID, 999, models.RoleUser), ErrUserNotFoundSvc)
}

func TestSetBanned(t *testing.T) {
	svc, userRepo := newTestUserService()
	ctx := context.Background()

	admin := &models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, userRepo.Create(ctx, admin))
	user := &models.User{Name: "User", Email: "user@example.com"}
	require.NoError(t, userRepo.Create(ctx, user))

	require.NoError(t, svc.SetBanned(ctx, admin.ID, user.ID, true))
	assert.True(t, userRepo.users[user.ID].IsBanned)

	require.NoError(t, svc.SetBanned(ctx, admin.ID, user.ID, false))
	assert.False(t, userRepo.users[user.ID].IsBanned)

	assert.ErrorIs(t, svc.SetBanned(ctx, admin.ID, admin.ID, true), ErrCannotBanSelf)
	assert.ErrorIs(t, svc.SetBanned(ctx, admin.ID, 999, true), ErrUserNotFoundSvc)
}

func TestListUsersPagination(t *testing.T) {
	svc, userRepo := newTestUserService()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		user := &models.User{
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		}
		require.NoError(t, userRepo.Create(ctx, user))
	}

	page1, err := svc.ListUsers(ctx, &ListUsersInput{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page1.Users, 10)
	assert.Equal(t, int64(25), page1.Total)
	assert.Equal(t, 3, page1.TotalPages)

	page3, err := svc.ListUsers(ctx, &ListUsersInput{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page3.Users, 5)

	// Out-of-range values are clamped
	clamped, err := svc.ListUsers(ctx, &ListUsersInput{Page: 0, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Page)
	assert.Equal(t, 100, clamped.Limit)
}
