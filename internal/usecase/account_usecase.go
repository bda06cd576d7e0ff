package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const verifyCodeTTL = time.Hour

type accountUsecase struct {
	userRepo domain.UserRepository
	mailer   domain.Mailer
}

func NewAccountUsecase(userRepo domain.UserRepository, mailer domain.Mailer) domain.AccountUsecase {
	return &accountUsecase{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// Signup registers a new unverified user, or reissues a verification code
// when the email already belongs to an unverified account. The record is
// persisted before the email send; on send failure the record is kept, so
// a retried signup simply reissues the code.
func (uc *accountUsecase) Signup(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validation.ValidateUsername(username); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return apperror.BadRequest(err.Error())
	}

	// Only verified users block a username.
	taken, err := uc.userRepo.GetVerifiedByUsername(ctx, username)
	if err != nil {
		return err
	}
	if taken != nil {
		return apperror.Conflict("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	code := generateVerifyCode()
	expire := time.Now().Add(verifyCodeTTL)

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	switch {
	case existing != nil && existing.IsVerified:
		return apperror.Conflict("User already exists")

	case existing != nil:
		// Unverified duplicate: reissue a fresh code and rehash the password.
		if err := uc.userRepo.ReissueVerification(ctx, email, string(hash), code, expire); err != nil {
			return err
		}
		username = existing.Username

	default:
		user := &domain.User{
			ID:               uuid.NewString(),
			Username:         username,
			Email:            email,
			Password:         string(hash),
			VerifyCode:       code,
			VerifyCodeExpire: expire,
			IsVerified:       false,
			SavedJobs:        []string{},
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}
	}

	if err := uc.mailer.SendVerificationCode(email, username, code); err != nil {
		logger.Log.Error("Failed to send verification email", "email", email, "error", err)
		return apperror.New(500, "Failed to send verification email", err)
	}
	return nil
}

// CheckUsernameUnique reports uniqueness considering only verified users.
func (uc *accountUsecase) CheckUsernameUnique(ctx context.Context, username string) (bool, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return false, apperror.BadRequest(err.Error())
	}
	existing, err := uc.userRepo.GetVerifiedByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// VerifyCode checks the code and expiry together; both must pass before
// the account is marked verified.
func (uc *accountUsecase) VerifyCode(ctx context.Context, username, code string) error {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	if user.VerifyCode != code {
		return apperror.BadRequest("Invalid verification code")
	}
	if time.Now().After(user.VerifyCodeExpire) {
		return apperror.BadRequest("Verification code has expired")
	}
	return uc.userRepo.MarkVerified(ctx, username)
}

func (uc *accountUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *accountUsecase) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

// UpdateProfile applies a partial update; omitted fields stay untouched.
func (uc *accountUsecase) UpdateProfile(ctx context.Context, email string, upd domain.ProfileUpdate) (*domain.User, error) {
	if upd.IsEmpty() {
		return nil, apperror.BadRequest("No profile fields to update")
	}
	user, err := uc.userRepo.UpdateProfile(ctx, strings.ToLower(email), upd)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// generateVerifyCode returns a 6-digit numeric code.
func generateVerifyCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
