package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestListAllJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("FetchAll", ctx).Return([]domain.Job{
			{ID: "job-a", Title: "Backend Engineer", Company: "Acme"},
			{ID: "job-b", Title: "SRE", Company: "Initech"},
		}, nil)

		jobs, err := uc.ListAllJobs(ctx)

		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.Equal(t, "Backend Engineer", jobs[0].Title)
	})

	t.Run("Failure - Repository Error", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("FetchAll", ctx).Return(nil, errors.New("connection reset"))

		_, err := uc.ListAllJobs(ctx)

		assert.Error(t, err)
	})
}
