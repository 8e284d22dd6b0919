package handlers

import (
	"net/http"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"prof.martin"`
	Password string `json:"password" binding:"required" example:"teacher123"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string `json:"token_type" example:"bearer"`
	Username    string `json:"username" example:"prof.martin"`
	Role        string `json:"role" example:"teacher"`
}

type UserInfoResponse struct {
	Username string `json:"username" example:"prof.martin"`
	Email    string `json:"email" example:"martin@mergington.edu"`
	Role     string `json:"role" example:"teacher"`
}

// Login godoc
// @Summary      Login
// @Description  Authenticate a user and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    user.Username,
		Role:        user.Role,
	})
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user's info
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} UserInfoResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUser(c.GetString("username"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not found"})
		return
	}

	c.JSON(http.StatusOK, UserInfoResponse{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}
