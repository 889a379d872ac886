package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickquid/quickquid_backend/internal/apperrors"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
	"github.com/quickquid/quickquid_backend/internal/dto"
	"github.com/quickquid/quickquid_backend/internal/middleware"
)

// branchHandler handles HTTP requests related to bank branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

// newBranchHandler creates a new branchHandler.
func newBranchHandler(bs portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{branchService: bs}
}

// registerBranchRoutes registers routes related to bank branches.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := newBranchHandler(branchService)

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch)
		branches.GET("", h.listBranches)
	}
}

// createBranch godoc
// @Summary Create a new bank branch
// @Description Creates a new bank branch with bank name, branch name and address
// @Tags branches
// @Accept  json
// @Produce  json
// @Param   branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} map[string]dto.BranchResponse
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Failed to create branch"
// @Router /branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBranch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: 'bankName', 'branchName', and 'bankAddress'"})
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating branch", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create branch in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch"})
		}
		return
	}

	logger.Info("Branch created successfully", slog.Int64("branch_id", branch.BranchID))
	c.JSON(http.StatusCreated, gin.H{"bankBranch": dto.ToBranchResponse(branch)})
}

// listBranches godoc
// @Summary List all bank branches
// @Description Retrieves every bank branch
// @Tags branches
// @Produce  json
// @Success 200 {array} dto.BranchResponse
// @Failure 500 {object} map[string]string "Failed to list branches"
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branches, err := h.branchService.ListBranches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list branches from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponses(branches))
}
