package handlers

import (
	"net/http"

	"owner-wallet-service/internal/services"
	"owner-wallet-service/pkg/common"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	Service *services.ConfigService
}

func NewConfigHandler(service *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{Service: service}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.Service.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(cfg, "Config fetched"))
}

type UpdateConfigRequest struct {
	FeeRate         *float64 `json:"feeRate"`
	MinChargePoints *int64   `json:"minChargePoints"`
	BankName        *string  `json:"bankName"`
	BankAccount     *string  `json:"bankAccount"`
	BankHolder      *string  `json:"bankHolder"`
}

func (h *ConfigHandler) Update(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.Service.Update(services.UpdateConfigDTO{
		FeeRate:         req.FeeRate,
		MinChargePoints: req.MinChargePoints,
		BankName:        req.BankName,
		BankAccount:     req.BankAccount,
		BankHolder:      req.BankHolder,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(cfg, "Config updated"))
}
