package domain

import (
	"context"
	"time"
)

// JobRecommendation links a user to a job with a match score computed by
// an external recommender. This service only validates and stores it.
type JobRecommendation struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"userId"`
	JobID           string    `json:"jobId"`
	MatchPercentage float64   `json:"matchPercentage"`
	CreatedAt       time.Time `json:"createdAt"`
}

// RecommendationEntry is one element of an incoming recommendation batch.
type RecommendationEntry struct {
	JobID           string  `json:"jobID"`
	MatchPercentage float64 `json:"matchPercentage"`
}

type RecommendationRepository interface {
	CreateBatch(ctx context.Context, recs []JobRecommendation) error
	FetchByUserID(ctx context.Context, userID string) ([]JobRecommendation, error)
}

type RecommendationUsecase interface {
	AddRecommendations(ctx context.Context, email string, entries []RecommendationEntry) ([]JobRecommendation, error)
	ListRecommendedJobs(ctx context.Context, email string) ([]Job, error)
}
