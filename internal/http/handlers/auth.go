package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mealloan/backend/internal/auth"
)

type AuthService interface {
	Login(ctx context.Context, identifier, password string) (string, error)
}

type AuthHandler struct {
	authService AuthService
	logger      *slog.Logger
}

type loginRequest struct {
	IDNumber string `json:"id_number"`
	Password string `json:"password"`
}

func NewAuthHandler(authService AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if strings.TrimSpace(req.IDNumber) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_number and password required"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.IDNumber, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidCredentials):
		// One generic answer for unknown identifier and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	default:
		h.logger.Error("login failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
