package v1

import (
	"net/http"
	"net/url"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUC domain.AccountUsecase
}

func NewAccountHandler(r *gin.RouterGroup, accountUC domain.AccountUsecase) {
	handler := &AccountHandler{accountUC: accountUC}

	r.GET("/check-username-unique", handler.CheckUsernameUnique)
	r.POST("/signup", handler.Signup)
	r.POST("/verifycode", handler.VerifyCode)

	users := r.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.GET("/getuser", handler.GetUser)
		users.POST("/addprofile", handler.AddProfile)
	}
}

type SignupRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type VerifyCodeRequest struct {
	Username string `json:"username" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

type ProfileRequest struct {
	Email       string              `json:"email" binding:"required,email"`
	Skills      []string            `json:"skills"`
	Experience  []domain.Experience `json:"experience"`
	Education   []domain.Education  `json:"education"`
	Preferences *string             `json:"preferences"`
	SavedJobs   []string            `json:"savedJobs"`
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.accountUC.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully. Please check your email for the verification code.", nil)
}

func (h *AccountHandler) CheckUsernameUnique(c *gin.Context) {
	username := c.Query("username")

	unique, err := h.accountUC.CheckUsernameUnique(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	if !unique {
		c.Error(apperror.Conflict("Username already taken"))
		return
	}
	response.Success(c, http.StatusOK, "Username is available", nil)
}

func (h *AccountHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// The frontend URL-encodes usernames on the wire.
	username := req.Username
	if decoded, err := url.QueryUnescape(username); err == nil {
		username = decoded
	}

	if err := h.accountUC.VerifyCode(c.Request.Context(), username, req.Code); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account verified successfully", nil)
}

// ListUsers carries the user array in the message field; existing clients
// parse it there, so the standard envelope does not apply.
func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.accountUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": users,
	})
}

func (h *AccountHandler) GetUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Error(apperror.BadRequest("email query parameter is required"))
		return
	}

	user, err := h.accountUC.GetProfile(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": user})
}

func (h *AccountHandler) AddProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := domain.ProfileUpdate{
		Skills:      req.Skills,
		Experience:  req.Experience,
		Education:   req.Education,
		Preferences: req.Preferences,
		SavedJobs:   req.SavedJobs,
	}

	user, err := h.accountUC.UpdateProfile(c.Request.Context(), req.Email, upd)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
