package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickquid/quickquid_backend/internal/apperrors"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
	"github.com/quickquid/quickquid_backend/internal/core/services"
	"github.com/quickquid/quickquid_backend/internal/dto"
	"github.com/quickquid/quickquid_backend/internal/middleware"
)

// transferHandler handles HTTP requests for transfers and their history.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/account", h.listTransfersByAccount)
	}
}

// createTransfer godoc
// @Summary Transfer funds between two accounts
// @Description Moves an amount from sender to receiver. Insufficient balance yields a FAILED transaction, not an error.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Missing fields or unknown sender/receiver"
// @Failure 404 {object} map[string]string "Originating branch missing or unknown"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	txn, err := h.transferService.TransferFunds(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSenderAccountNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Sender account not found"})
		case errors.Is(err, services.ErrReceiverAccountNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Receiver account not found"})
		case errors.Is(err, services.ErrBranchRequired):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank branch ID not found in originatingBranch"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Originating branch not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			logger.Error("Failed to process transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		}
		return
	}

	logger.Info("Transfer recorded", slog.Int64("transaction_id", txn.TransactionID), slog.String("status", string(txn.Status)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransfersByAccount godoc
// @Summary List transactions for an account
// @Description Returns the denormalized transaction history for the account with the given number
// @Tags transfers
// @Produce  json
// @Param   accountNumber query string true "Account number"
// @Success 200 {array} dto.TransferEntryResponse
// @Failure 400 {object} map[string]string "Account number is required"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Error retrieving transactions"
// @Router /transfers/account [get]
func (h *transferHandler) listTransfersByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountNumber := c.Query("accountNumber")
	if accountNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Account number is required"})
		return
	}

	entries, err := h.transferService.ListTransfersForAccount(c.Request.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for history", slog.String("account_number", accountNumber))
			c.JSON(http.StatusNotFound, gin.H{"message": "Account not found"})
		} else {
			logger.Error("Failed to list transfers from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferEntryResponses(entries))
}
