//go:build integration

package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/mongodb"
	"bootcamp-api/pkg/query"
)

const (
	TestRepositoryEmail = "john@gmail.com"
	TestHashedToken     = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
)

func setupRepository(t *testing.T, ctx context.Context) Repository {
	mongoClient, mongodbConfig := mongodb.SetupTestClient(t, ctx)

	userRepository := NewRepository(mongoClient, mongodbConfig)
	require.NoError(t, userRepository.EnsureIndexes(ctx))

	return userRepository
}

func newUserDocument(email string) *UserDocument {
	return &UserDocument{
		Id:        uuid.New().String(),
		Name:      "John Doe",
		Email:     email,
		Role:      RoleUser,
		Password:  "hashed-password",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	userRepository := setupRepository(t, ctx)

	user := newUserDocument(TestRepositoryEmail)
	require.NoError(t, userRepository.InsertUser(ctx, user))

	t.Run("insert with existing email should return duplicate email", func(t *testing.T) {
		err := userRepository.InsertUser(ctx, newUserDocument(TestRepositoryEmail))

		assert.True(t, cerror.Is(err, cerror.KindDuplicateEmail))
	})

	t.Run("find with id", func(t *testing.T) {
		found, err := userRepository.FindUserWithId(ctx, user.Id)

		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
		assert.Equal(t, user.Password, found.Password)
	})

	t.Run("find with unknown id should return not found", func(t *testing.T) {
		_, err := userRepository.FindUserWithId(ctx, uuid.New().String())

		assert.True(t, cerror.Is(err, cerror.KindNotFound))
	})

	t.Run("find with email", func(t *testing.T) {
		found, err := userRepository.FindUserWithEmail(ctx, TestRepositoryEmail)

		require.NoError(t, err)
		assert.Equal(t, user.Id, found.Id)
	})

	t.Run("find users never returns private fields", func(t *testing.T) {
		descriptor, err := query.Parse(map[string][]string{"select": {"name,password"}})
		require.NoError(t, err)

		result, err := userRepository.FindUsers(ctx, descriptor)

		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, "John Doe", result.Data[0].Name)
		assert.Empty(t, result.Data[0].Password)
	})

	t.Run("filter on private field should return validation error", func(t *testing.T) {
		descriptor, err := query.Parse(map[string][]string{"resetPasswordToken": {"abc"}, "sort": {"password"}})
		require.NoError(t, err)

		_, err = userRepository.FindUsers(ctx, descriptor)

		assert.True(t, cerror.Is(err, cerror.KindValidation))
	})

	t.Run("update user", func(t *testing.T) {
		updated, err := userRepository.UpdateUserById(ctx, user.Id, &UpdateUserDocument{Name: "Jane Doe"})

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", updated.Name)
		assert.Equal(t, TestRepositoryEmail, updated.Email)
	})

	t.Run("update to an existing email should return duplicate email", func(t *testing.T) {
		other := newUserDocument("jane@gmail.com")
		require.NoError(t, userRepository.InsertUser(ctx, other))

		_, err := userRepository.UpdateUserById(ctx, other.Id, &UpdateUserDocument{Email: TestRepositoryEmail})

		assert.True(t, cerror.Is(err, cerror.KindDuplicateEmail))
	})

	t.Run("reset token is single use", func(t *testing.T) {
		require.NoError(t, userRepository.SetResetPasswordToken(ctx, user.Id, TestHashedToken, time.Now().Add(10*time.Minute)))

		reset, err := userRepository.ResetPasswordWithToken(ctx, TestHashedToken, "new-hash", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "new-hash", reset.Password)
		assert.Empty(t, reset.ResetPasswordToken)
		assert.Nil(t, reset.ResetPasswordExpire)

		_, err = userRepository.ResetPasswordWithToken(ctx, TestHashedToken, "another-hash", time.Now())
		assert.True(t, cerror.Is(err, cerror.KindInvalidOrExpiredToken))
	})

	t.Run("expired reset token is rejected", func(t *testing.T) {
		require.NoError(t, userRepository.SetResetPasswordToken(ctx, user.Id, TestHashedToken, time.Now().Add(-time.Second)))

		_, err := userRepository.ResetPasswordWithToken(ctx, TestHashedToken, "new-hash", time.Now())

		assert.True(t, cerror.Is(err, cerror.KindInvalidOrExpiredToken))
	})

	t.Run("clear reset token", func(t *testing.T) {
		require.NoError(t, userRepository.SetResetPasswordToken(ctx, user.Id, TestHashedToken, time.Now().Add(10*time.Minute)))
		require.NoError(t, userRepository.ClearResetPasswordToken(ctx, user.Id))

		found, err := userRepository.FindUserWithId(ctx, user.Id)
		require.NoError(t, err)
		assert.Empty(t, found.ResetPasswordToken)
	})

	t.Run("delete user", func(t *testing.T) {
		require.NoError(t, userRepository.DeleteUserById(ctx, user.Id))

		err := userRepository.DeleteUserById(ctx, user.Id)
		assert.True(t, cerror.Is(err, cerror.KindNotFound))
	})
}
