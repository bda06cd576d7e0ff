package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListAllJobs returns every posting, newest first.
func (uc *jobUsecase) ListAllJobs(ctx context.Context) ([]domain.Job, error) {
	return uc.jobRepo.FetchAll(ctx)
}
