package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargotrack/cargotrack/internal/auth"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// login handles POST /api/v1/auth/login
func (s *Server) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	if fieldErrors := s.validate.Struct(&req); len(fieldErrors) > 0 {
		return ValidationError("Validation failed", fieldErrors)
	}

	if err := auth.VerifyCredentials(s.config, req.Username, req.Password); err != nil {
		return UnauthorizedError("Invalid credentials", "invalid username or password")
	}

	token, expiresAt, err := s.jwt.GenerateToken(req.Username)
	if err != nil {
		return InternalError("Failed to generate token", err.Error())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
