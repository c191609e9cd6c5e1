package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/services"
)

type CreateContractRequest struct {
	ContractNumber string   `json:"contract_number" binding:"required"`
	Components     []string `json:"components" binding:"required"`
}

type ContractHandler struct {
	log             *logger.Logger
	contractService services.ContractService
}

func NewContractHandler(log *logger.Logger, contractService services.ContractService) *ContractHandler {
	return &ContractHandler{
		log:             log.With("handler", "ContractHandler"),
		contractService: contractService,
	}
}

func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	contract, err := h.contractService.Create(c.Request.Context(), services.CreateContractInput{
		ContractNumber: req.ContractNumber,
		Components:     req.Components,
	})
	if errors.Is(err, services.ErrContractExists) {
		RespondError(c, http.StatusConflict, "contract_exists", fmt.Errorf("Contract %s already exists.", req.ContractNumber))
		return
	}
	if err != nil {
		h.log.Error("Create contract failed", "error", err, "contract_number", req.ContractNumber)
		RespondError(c, http.StatusInternalServerError, "create_contract_failed", err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *ContractHandler) Get(c *gin.Context) {
	contractNumber := c.Param("contract_number")

	contract, err := h.contractService.Get(c.Request.Context(), contractNumber)
	if errors.Is(err, services.ErrContractNotFound) {
		RespondError(c, http.StatusNotFound, "contract_not_found", fmt.Errorf("Contract %s not found.", contractNumber))
		return
	}
	if err != nil {
		h.log.Error("Get contract failed", "error", err, "contract_number", contractNumber)
		RespondError(c, http.StatusInternalServerError, "load_contract_failed", err)
		return
	}
	RespondOK(c, contract)
}

func (h *ContractHandler) Delete(c *gin.Context) {
	contractNumber := c.Param("contract_number")

	err := h.contractService.Delete(c.Request.Context(), contractNumber)
	if errors.Is(err, services.ErrContractNotFound) {
		RespondError(c, http.StatusNotFound, "contract_not_found", fmt.Errorf("Contract %s not found.", contractNumber))
		return
	}
	if err != nil {
		h.log.Error("Delete contract failed", "error", err, "contract_number", contractNumber)
		RespondError(c, http.StatusInternalServerError, "delete_contract_failed", err)
		return
	}
	RespondOK(c, gin.H{"detail": fmt.Sprintf("Contract %s deleted successfully", contractNumber)})
}
