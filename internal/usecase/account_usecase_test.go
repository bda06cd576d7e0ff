package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Invalid Username", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAccountUsecase(userRepo, mailer)

		err := uc.Signup(ctx, "x", "john@example.com", "Str0ng!Pass")

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failure - Weak Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAccountUsecase(userRepo, mailer)

		err := uc.Signup(ctx, "john_doe", "john@example.com", "weak")

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Failure - Username Taken By Verified User", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAccountUsecase(userRepo, mailer)

		userRepo.On("GetVerifiedByUsername", ctx, "john_doe").
			Return(&domain.User{Username: "john_doe", IsVerified: true}, nil)

		err := uc.Signup(ctx, "john_doe", "john@example.com", "Str0ng!Pass")

		assert.EqualError(t, err, "Username already taken")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failure - Email Already Registered And Verified", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAccountUsecase(userRepo, mailer)

		userRepo.On("GetVerifiedByUsername", ctx, "john_doe").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "john@example.com").
			Return(&domain.User{Email: "john@example.com", IsVerified: true}, nil)

		err := uc.Signup(ctx, "john_doe", "John@Example.com", "Str0ng!Pass")

		assert.EqualError(t, err, "User already exists")
		userRepo.AssertNotCalled(t, "Create")
		mailer.AssertNotCalled(t, "SendVerificationCode")
	})

	t.Run("Success - Unverified Duplicate Reissues Code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAccountUsecase(userRepo, mailer)

		userRepo.On("GetVerifiedByUsername", ctx, "john_doe").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "john@example.com").
			Return(&domain.User{Username: "original_name", Email: "john@example.com", IsVerified: false}, nil)
		userRepo.On("ReissueVerification", ctx, "john@example.com",
			mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Return(nil)
		mailer.On("SendVerificationCode", "john@example.com", "original_name", mock.AnythingOfType("string")).
			Return(nil)

		err := uc.Signup(ctx, "john_doe", "john@example.com", "Str0ng!Pass")

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create")
		userRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("Success - New User Created", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAccountUsecase(userRepo, mailer)

		userRepo.On("GetVerifiedByUsername", ctx, "john_doe").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "john@example.com").Return(nil, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "john_doe" &&
				u.Email == "john@example.com" &&
				!u.IsVerified &&
				len(u.VerifyCode) == 6 &&
				u.ID != "" &&
				u.Password != "Str0ng!Pass" // stored hashed, never plaintext
		})).Return(nil)
		mailer.On("SendVerificationCode", "john@example.com", "john_doe", mock.AnythingOfType("string")).
			Return(nil)

		err := uc.Signup(ctx, "john_doe", "john@example.com", "Str0ng!Pass")

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("Failure - Email Send Fails After Persist", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAccountUsecase(userRepo, mailer)

		userRepo.On("GetVerifiedByUsername", ctx, "john_doe").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "john@example.com").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		mailer.On("SendVerificationCode", "john@example.com", "john_doe", mock.AnythingOfType("string")).
			Return(errors.New("smtp: connection refused"))

		err := uc.Signup(ctx, "john_doe", "john@example.com", "Str0ng!Pass")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.Code)
		assert.Equal(t, "Failed to send verification email", appErr.Message)
		// The record was persisted before the send; a retry reissues the code.
		userRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.User"))
	})
}

func TestCheckUsernameUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("Available", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetVerifiedByUsername", ctx, "john_doe").Return(nil, nil)

		unique, err := uc.CheckUsernameUnique(ctx, "john_doe")

		assert.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("Taken By Verified User", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetVerifiedByUsername", ctx, "john_doe").
			Return(&domain.User{Username: "john_doe", IsVerified: true}, nil)

		unique, err := uc.CheckUsernameUnique(ctx, "john_doe")

		assert.NoError(t, err)
		assert.False(t, unique)
	})

	t.Run("Invalid Format Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		_, err := uc.CheckUsernameUnique(ctx, "has spaces!")

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "GetVerifiedByUsername")
	})
}

func TestVerifyCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetByUsername", ctx, "john_doe").Return(&domain.User{
			Username:         "john_doe",
			VerifyCode:       "123456",
			VerifyCodeExpire: time.Now().Add(30 * time.Minute),
		}, nil)
		userRepo.On("MarkVerified", ctx, "john_doe").Return(nil)

		err := uc.VerifyCode(ctx, "john_doe", "123456")

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Failure - User Not Found", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, nil)

		err := uc.VerifyCode(ctx, "ghost", "123456")

		assert.EqualError(t, err, "User not found")
	})

	t.Run("Failure - Wrong Code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetByUsername", ctx, "john_doe").Return(&domain.User{
			Username:         "john_doe",
			VerifyCode:       "123456",
			VerifyCodeExpire: time.Now().Add(30 * time.Minute),
		}, nil)

		err := uc.VerifyCode(ctx, "john_doe", "000000")

		assert.EqualError(t, err, "Invalid verification code")
		userRepo.AssertNotCalled(t, "MarkVerified")
	})

	t.Run("Failure - Expired Code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetByUsername", ctx, "john_doe").Return(&domain.User{
			Username:         "john_doe",
			VerifyCode:       "123456",
			VerifyCodeExpire: time.Now().Add(-time.Minute),
		}, nil)

		err := uc.VerifyCode(ctx, "john_doe", "123456")

		assert.EqualError(t, err, "Verification code has expired")
		userRepo.AssertNotCalled(t, "MarkVerified")
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Email Lowercased", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetByEmail", ctx, "john@example.com").
			Return(&domain.User{Email: "john@example.com", Username: "john_doe"}, nil)

		user, err := uc.GetProfile(ctx, "John@Example.COM")

		assert.NoError(t, err)
		assert.Equal(t, "john_doe", user.Username)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, err := uc.GetProfile(ctx, "ghost@example.com")

		assert.EqualError(t, err, "User not found")
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		upd := domain.ProfileUpdate{Skills: []string{"Go", "SQL"}}
		userRepo.On("UpdateProfile", ctx, "john@example.com", upd).
			Return(&domain.User{Email: "john@example.com", Skills: []string{"Go", "SQL"}}, nil)

		user, err := uc.UpdateProfile(ctx, "john@example.com", upd)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL"}, user.Skills)
	})

	t.Run("Failure - Unknown User", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		upd := domain.ProfileUpdate{Skills: []string{"Go"}}
		userRepo.On("UpdateProfile", ctx, "ghost@example.com", upd).
			Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateProfile(ctx, "ghost@example.com", upd)

		assert.EqualError(t, err, "User not found")
	})

	t.Run("Failure - Empty Update Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(userRepo, new(MockMailer))

		_, err := uc.UpdateProfile(ctx, "john@example.com", domain.ProfileUpdate{})

		assert.EqualError(t, err, "No profile fields to update")
		userRepo.AssertNotCalled(t, "UpdateProfile")
	})
}
