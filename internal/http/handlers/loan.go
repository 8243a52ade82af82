package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	loandomain "github.com/mealloan/backend/internal/domain/loan"
)

type LoanService interface {
	CreateLoan(ctx context.Context, clientIdentifier string, amount int64) (*loandomain.Transfer, error)
	ListLoans(ctx context.Context, f loandomain.ListFilter) ([]loandomain.Entity, error)
}

type LoanHandler struct {
	loanService LoanService
	logger      *slog.Logger
}

func NewLoanHandler(loanService LoanService, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{loanService: loanService, logger: logger}
}

type createLoanRequest struct {
	IDNumber string `json:"id_number"`
	Amount   int64  `json:"amount"`
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if strings.TrimSpace(req.IDNumber) == "" || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid id_number and positive amount required"})
		return
	}

	transfer, err := h.loanService.CreateLoan(c.Request.Context(), req.IDNumber, req.Amount)
	switch {
	case err == nil:
	case errors.Is(err, loandomain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_amount"})
		return
	case errors.Is(err, loandomain.ErrClientNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_not_found"})
		return
	case errors.Is(err, loandomain.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient_balance"})
		return
	default:
		h.logger.Error("loan transaction failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"message":          "Loan approved",
		"previous_amount":  transfer.PreviousAmount,
		"remaining_amount": transfer.RemainingAmount,
	})
}

func (h *LoanHandler) ListLoans(c *gin.Context) {
	limit, err := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("limit", "50")), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	offset, err := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("offset", "0")), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	items, err := h.loanService.ListLoans(c.Request.Context(), loandomain.ListFilter{
		ClientIdentifier: strings.TrimSpace(c.Query("id_number")),
		Limit:            int32(limit),
		Offset:           int32(offset),
	})
	if err != nil {
		h.logger.Error("list loans failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_fetch_loans"})
		return
	}
	c.JSON(http.StatusOK, items)
}
