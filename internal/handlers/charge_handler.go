package handlers

import (
	"net/http"
	"strconv"

	"owner-wallet-service/internal/services"
	"owner-wallet-service/pkg/common"

	"github.com/gin-gonic/gin"
)

type ChargeHandler struct {
	Service *services.ChargeService
}

func NewChargeHandler(service *services.ChargeService) *ChargeHandler {
	return &ChargeHandler{Service: service}
}

type RequestChargeRequest struct {
	OwnerId       string `json:"owner_id" binding:"required"`
	OwnerEmail    string `json:"owner_email"`
	Points        int64  `json:"points" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

func (h *ChargeHandler) RequestCharge(c *gin.Context) {
	var req RequestChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	charge, err := h.Service.RequestCharge(services.RequestChargeDTO{
		OwnerId:       req.OwnerId,
		OwnerEmail:    req.OwnerEmail,
		Points:        req.Points,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(charge, "Charge request created"))
}

func (h *ChargeHandler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid charge id"})
		return
	}

	result, err := h.Service.Approve(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"charge":      result.Charge,
		"new_balance": result.NewBalance,
	}, "Charge approved"))
}

func (h *ChargeHandler) Reject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid charge id"})
		return
	}

	charge, err := h.Service.Reject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(charge, "Charge rejected"))
}

func (h *ChargeHandler) ListCharges(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.Service.ListCharges(services.ListChargesDTO{
		OwnerId: c.Query("owner_id"),
		Status:  c.Query("status"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ChargeHandler) PendingCount(c *gin.Context) {
	count, err := h.Service.PendingCount()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": count})
}
