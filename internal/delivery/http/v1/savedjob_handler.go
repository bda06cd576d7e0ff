package v1

import (
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedUC domain.SavedJobUsecase
}

func NewSavedJobHandler(r *gin.RouterGroup, savedUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedUC: savedUC}

	saved := r.Group("/savedjobs")
	{
		saved.POST("/addjob", handler.AddJob)
		saved.POST("/deletejob", handler.DeleteJob)
		saved.GET("/getallsavedjobs", handler.GetAllSavedJobs)
	}
}

type SavedJobRequest struct {
	Email string `json:"email" binding:"required"`
	JobID string `json:"jobId" binding:"required"`
}

func (h *SavedJobHandler) AddJob(c *gin.Context) {
	var req SavedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	saved, err := h.savedUC.SaveJob(c.Request.Context(), req.Email, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Job saved successfully",
		"savedJobs": saved,
	})
}

func (h *SavedJobHandler) DeleteJob(c *gin.Context) {
	var req SavedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	saved, err := h.savedUC.RemoveJob(c.Request.Context(), req.Email, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Job removed from saved list",
		"savedJobs": saved,
	})
}

func (h *SavedJobHandler) GetAllSavedJobs(c *gin.Context) {
	email := c.Query("email")

	result, err := h.savedUC.ListSavedJobs(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":        result.Jobs,
		"savedJobIds": result.SavedJobIDs,
	})
}
