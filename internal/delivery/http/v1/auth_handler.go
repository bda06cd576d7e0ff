package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *auth.TokenManager
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.TokenManager) {
	handler := &AuthHandler{authUC: authUC, tokens: tokens}

	public.POST("/login", handler.Login)
	protected.GET("/session", handler.Session)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a signed stateless session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity, err := h.authUC.Authorize(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":  identity,
		"token": token,
	})
}

// Session reconstructs the session identity from the token claims set by
// the auth middleware; no database round-trip happens here.
func (h *AuthHandler) Session(c *gin.Context) {
	identity := domain.Identity{
		ID:         c.GetString(string(domain.KeyUserID)),
		Username:   c.GetString(string(domain.KeyUserName)),
		Email:      c.GetString(string(domain.KeyUserEmail)),
		IsVerified: c.GetBool(string(domain.KeyUserVerified)),
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}
