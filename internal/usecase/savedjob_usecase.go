package usecase

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type savedJobUsecase struct {
	userRepo domain.UserRepository
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewSavedJobUsecase(userRepo domain.UserRepository, jobRepo domain.JobRepository, validate *validator.Validate) domain.SavedJobUsecase {
	return &savedJobUsecase{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		validate: validate,
	}
}

func (uc *savedJobUsecase) checkInput(email, jobID string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.ValidateEmail(uc.validate, email); err != nil {
		return "", apperror.BadRequest(err.Error())
	}
	if uuid.Validate(jobID) != nil {
		return "", apperror.BadRequest("Invalid job id")
	}
	return email, nil
}

// SaveJob appends jobID to the user's saved list. Saving the same job
// twice is an error, not a silent no-op.
func (uc *savedJobUsecase) SaveJob(ctx context.Context, email, jobID string) ([]string, error) {
	email, err := uc.checkInput(email, jobID)
	if err != nil {
		return nil, err
	}

	saved, err := uc.userRepo.AppendSavedJob(ctx, email, jobID)
	switch err {
	case nil:
		return saved, nil
	case domain.ErrNotFound:
		return nil, apperror.NotFound("User not found")
	case domain.ErrAlreadySaved:
		return nil, apperror.BadRequest("Job already saved")
	default:
		return nil, err
	}
}

// RemoveJob removes jobID from the saved list. Absence of the list and
// absence of the entry are reported as distinct failures.
func (uc *savedJobUsecase) RemoveJob(ctx context.Context, email, jobID string) ([]string, error) {
	email, err := uc.checkInput(email, jobID)
	if err != nil {
		return nil, err
	}

	saved, err := uc.userRepo.RemoveSavedJob(ctx, email, jobID)
	switch err {
	case nil:
		return saved, nil
	case domain.ErrNotFound:
		return nil, apperror.NotFound("User not found")
	case domain.ErrNoSavedJobs:
		return nil, apperror.BadRequest("No saved jobs")
	case domain.ErrNotSaved:
		return nil, apperror.NotFound("Job not found in saved list")
	default:
		return nil, err
	}
}

// ListSavedJobs resolves the user's saved references to full Job records.
func (uc *savedJobUsecase) ListSavedJobs(ctx context.Context, email string) (*domain.SavedJobsResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.ValidateEmail(uc.validate, email); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	jobs, err := uc.jobRepo.GetByIDs(ctx, user.SavedJobs)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	ids := user.SavedJobs
	if ids == nil {
		ids = []string{}
	}
	return &domain.SavedJobsResult{Jobs: jobs, SavedJobIDs: ids}, nil
}
