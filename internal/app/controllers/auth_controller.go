package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/app/services"
	"github.com/trackpro/trackpro/internal/metrics"
	"github.com/trackpro/trackpro/internal/middleware"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
)

// AuthController handles login, logout and student registration
type AuthController struct {
	authService    *services.AuthService
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, studentService *services.StudentService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:    authService,
		studentService: studentService,
		logger:         logger,
	}
}

// Login dispatches the credentials across the admin, staff and student
// stores. Failures come back as HTTP 200 with success=false so the response
// shape never reveals which store matched.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	result, token, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user := result.User
	ctx.JSON(http.StatusOK, &dto.LoginResponse{
		Success:  true,
		Message:  "Login successful",
		UserType: result.UserType,
		Token:    token,
		User:     &user,
	})
}

// Logout acknowledges a logout. Sessions are client-held, so there is no
// server state to clear.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logged out successfully", nil))
}

// Status reports the authentication service health
func (c *AuthController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &dto.AuthStatusResponse{
		Service:   "auth",
		Status:    "UP",
		TokenAuth: c.authService.TokenAuthEnabled(),
	})
}

// Register creates a new student account
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	student, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusConflict, &dto.RegistrationResponse{
				Success: false,
				Message: "An account with this email already exists",
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.StudentsRegistered.Inc()
	ctx.JSON(http.StatusCreated, &dto.RegistrationResponse{
		Success:   true,
		Message:   "Registration successful",
		StudentID: &student.ID,
	})
}
