package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type recommendationUsecase struct {
	recRepo  domain.RecommendationRepository
	userRepo domain.UserRepository
	jobRepo  domain.JobRepository
}

func NewRecommendationUsecase(recRepo domain.RecommendationRepository, userRepo domain.UserRepository, jobRepo domain.JobRepository) domain.RecommendationUsecase {
	return &recommendationUsecase{
		recRepo:  recRepo,
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

// AddRecommendations validates every entry before any insertion; a bad
// entry rejects the whole batch with no partial insert.
func (uc *recommendationUsecase) AddRecommendations(ctx context.Context, email string, entries []domain.RecommendationEntry) ([]domain.JobRecommendation, error) {
	if len(entries) == 0 {
		return nil, apperror.BadRequest("jobRecommendations must be a non-empty array")
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	recs := make([]domain.JobRecommendation, 0, len(entries))
	for i, entry := range entries {
		if entry.JobID == "" {
			return nil, apperror.BadRequest(fmt.Sprintf("Entry %d is missing jobID", i))
		}
		if entry.MatchPercentage < 0 || entry.MatchPercentage > 100 {
			return nil, apperror.BadRequest(fmt.Sprintf("Entry %d matchPercentage must be between 0 and 100", i))
		}
		recs = append(recs, domain.JobRecommendation{
			UserID:          user.ID,
			JobID:           entry.JobID,
			MatchPercentage: entry.MatchPercentage,
		})
	}

	if err := uc.recRepo.CreateBatch(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// ListRecommendedJobs returns the recommended Job records ordered by
// descending match percentage.
func (uc *recommendationUsecase) ListRecommendedJobs(ctx context.Context, email string) ([]domain.Job, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	recs, err := uc.recRepo.FetchByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, apperror.NotFound("No job recommendations found")
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.JobID)
	}

	jobs, err := uc.jobRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// GetByIDs does not guarantee order; restore the match-percentage order.
	byID := make(map[string]domain.Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
	}
	ordered := make([]domain.Job, 0, len(jobs))
	seen := make(map[string]bool, len(jobs))
	for _, rec := range recs {
		if job, ok := byID[rec.JobID]; ok && !seen[rec.JobID] {
			ordered = append(ordered, job)
			seen[rec.JobID] = true
		}
	}
	return ordered, nil
}
