package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/mealloan/backend/internal/domain/client"
)

type ClientService interface {
	Register(ctx context.Context, in clientdomain.CreateInput) (*clientdomain.Entity, error)
	Get(ctx context.Context, identifier string) (*clientdomain.Entity, error)
}

type ClientHandler struct {
	clientService ClientService
	logger        *slog.Logger
}

func NewClientHandler(clientService ClientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{clientService: clientService, logger: logger}
}

type registerClientRequest struct {
	IDNumber        string `json:"id_number"`
	FullName        string `json:"full_name"`
	PhoneNumber     string `json:"phone_number"`
	AvailableAmount int64  `json:"available_amount"`
}

func (h *ClientHandler) Register(c *gin.Context) {
	var req registerClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	created, err := h.clientService.Register(c.Request.Context(), clientdomain.CreateInput{
		Identifier:      req.IDNumber,
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		AvailableAmount: req.AvailableAmount,
	})
	switch {
	case err == nil:
	case errors.Is(err, clientdomain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_client_input"})
		return
	case errors.Is(err, clientdomain.ErrExists):
		c.JSON(http.StatusConflict, gin.H{"error": "client_exists"})
		return
	default:
		h.logger.Error("register client failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("idNumber"))

	item, err := h.clientService.Get(c.Request.Context(), identifier)
	switch {
	case err == nil:
	case errors.Is(err, clientdomain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
		return
	default:
		h.logger.Error("get client failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, item)
}
