package domain

import (
	"context"
	"time"
)

// Job is a posting owned by an external ingestion process. Handlers only
// read, filter, and reference jobs; nothing in this service creates them.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	JobType     string    `json:"type"`
	Salary      string    `json:"salary"`
	Skills      []string  `json:"skills"`
	Description string    `json:"description"`
	ApplyLink   string    `json:"applyLink"`
	CreatedAt   time.Time `json:"createdAt"`
}

type JobRepository interface {
	FetchAll(ctx context.Context) ([]Job, error)
	GetByIDs(ctx context.Context, ids []string) ([]Job, error)
}

type JobUsecase interface {
	ListAllJobs(ctx context.Context) ([]Job, error)
}
