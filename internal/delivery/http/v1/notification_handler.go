package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifUC domain.NotificationUsecase
}

func NewNotificationHandler(r *gin.RouterGroup, notifUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notifUC: notifUC}

	notifications := r.Group("/notifications")
	{
		notifications.POST("/addNotification", handler.Add)
		notifications.GET("/getAllnotifications", handler.GetAll)
		notifications.DELETE("/deletenotification", handler.Delete)
	}
}

type AddNotificationRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required"`
}

type DeleteNotificationRequest struct {
	Email string `json:"email" binding:"required,email"`
	ID    string `json:"id" binding:"required"`
}

// NotificationResponse serializes a record with string id and ISO time,
// the shape existing clients parse.
type NotificationResponse struct {
	ID        string `json:"id"`
	UserEmail string `json:"userEmail"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
}

func toNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        strconv.FormatInt(n.ID, 10),
		UserEmail: n.UserEmail,
		Message:   n.Message,
		Type:      n.Type,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *NotificationHandler) Add(c *gin.Context) {
	var req AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	n, err := h.notifUC.Add(c.Request.Context(), req.Email, req.Message, req.Type)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"notification": toNotificationResponse(*n)})
}

func (h *NotificationHandler) GetAll(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Error(apperror.BadRequest("email query parameter is required"))
		return
	}

	notifications, err := h.notifUC.List(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}

	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	var req DeleteNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	id, err := strconv.ParseInt(req.ID, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid notification id"))
		return
	}

	if err := h.notifUC.Delete(c.Request.Context(), id, req.Email); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
