package v1

import (
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertUC domain.AlertUsecase
}

func NewAlertHandler(r *gin.RouterGroup, alertUC domain.AlertUsecase) {
	handler := &AlertHandler{alertUC: alertUC}
	r.POST("/jobAlert", handler.SendAlert)
}

type JobAlertRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *AlertHandler) SendAlert(c *gin.Context) {
	var req JobAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	alert := &domain.JobAlert{
		To:      req.To,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.alertUC.SendJobAlert(c.Request.Context(), alert); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
