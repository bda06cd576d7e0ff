package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthorize(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng!Pass"), bcrypt.MinCost)
	assert.NoError(t, err)

	verifiedUser := &domain.User{
		ID:         "user-1",
		Username:   "john_doe",
		Email:      "john@example.com",
		Password:   string(hash),
		IsVerified: true,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		userRepo.On("GetByEmail", ctx, "john@example.com").Return(verifiedUser, nil)

		identity, err := uc.Authorize(ctx, " John@Example.com ", "Str0ng!Pass")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", identity.ID)
		assert.Equal(t, "john_doe", identity.Username)
		assert.True(t, identity.IsVerified)
	})

	t.Run("Failure - Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, err := uc.Authorize(ctx, "ghost@example.com", "Str0ng!Pass")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "No user found with this email", appErr.Message)
	})

	t.Run("Failure - Unverified Account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		userRepo.On("GetByEmail", ctx, "john@example.com").Return(&domain.User{
			Email:      "john@example.com",
			Password:   string(hash),
			IsVerified: false,
		}, nil)

		_, err := uc.Authorize(ctx, "john@example.com", "Str0ng!Pass")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("Failure - Incorrect Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		userRepo.On("GetByEmail", ctx, "john@example.com").Return(verifiedUser, nil)

		_, err := uc.Authorize(ctx, "john@example.com", "WrongPass1!")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Incorrect password", appErr.Message)
	})
}
