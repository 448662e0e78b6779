package handlers

import (
	"net/http"
	"strconv"

	"owner-wallet-service/internal/services"
	"owner-wallet-service/pkg/common"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: service}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.UpdateStatus(id, req.Status, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{"order": result.Order}
	if result.Warning != "" {
		payload["warning"] = result.Warning
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(payload, "Order status updated"))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.Service.ListOrders(services.ListOrdersDTO{
		Status: c.Query("status"),
		UserId: c.Query("user_id"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(stats, "Order stats"))
}
