package v1

import (
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recUC domain.RecommendationUsecase
}

func NewRecommendationHandler(r *gin.RouterGroup, recUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recUC: recUC}

	recs := r.Group("/recommendations")
	{
		recs.POST("/addjob", handler.AddRecommendations)
		recs.GET("/getjobs", handler.GetRecommendedJobs)
	}
}

type AddRecommendationsRequest struct {
	Email              string                       `json:"email" binding:"required,email"`
	JobRecommendations []domain.RecommendationEntry `json:"jobRecommendations" binding:"required"`
}

func (h *RecommendationHandler) AddRecommendations(c *gin.Context) {
	var req AddRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recs, err := h.recUC.AddRecommendations(c.Request.Context(), req.Email, req.JobRecommendations)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Recommendations added successfully",
		"recommendations": recs,
	})
}

func (h *RecommendationHandler) GetRecommendedJobs(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Error(apperror.BadRequest("email query parameter is required"))
		return
	}

	jobs, err := h.recUC.ListRecommendedJobs(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}
