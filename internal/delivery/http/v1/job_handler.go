package v1

import (
	"net/http"

	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("/all-jobs", handler.ListAll)
	}
}

// ListAll returns every posting newest-first as a bare array; this
// endpoint predates the response envelope and clients depend on the shape.
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobUC.ListAllJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}
