package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkravch/studyplan/internal/app/models/dto"
	"github.com/dkravch/studyplan/internal/app/services"
	"github.com/dkravch/studyplan/internal/middleware"
)

// AuthController handles registration and login.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a user account. Log in separately to obtain a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Credentials"
// @Success 201 {object} dto.MessageResponse "User registered"
// @Failure 400 {object} dto.MessageResponse "Duplicate username or invalid data"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Registration failed: "+err.Error()))
		return
	}

	if err := c.authService.Register(ctx.Request.Context(), req.Username, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("User registered successfully"))
}

// Login handles user login
// @Summary Log in
// @Description Verifies credentials and issues a session token with 1 hour expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse "Token issued"
// @Failure 400 {object} dto.MessageResponse "Bad credentials"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Login failed: "+err.Error()))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
