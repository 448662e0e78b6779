package handlers

import (
	"net/http"
	"strconv"

	"owner-wallet-service/internal/services"
	"owner-wallet-service/pkg/common"

	"github.com/gin-gonic/gin"
)

type BonusHandler struct {
	Service *services.BonusService
}

func NewBonusHandler(service *services.BonusService) *BonusHandler {
	return &BonusHandler{Service: service}
}

type VisitBonusSettingsRequest struct {
	PointsPerVisit int64 `json:"pointsPerVisit"`
	Active         bool  `json:"active"`
}

func (h *BonusHandler) UpdateSettings(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	var req VisitBonusSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateSettings(services.BonusSettingsUpdateDTO{
		StoreId:        storeId,
		PointsPerVisit: req.PointsPerVisit,
		Active:         req.Active,
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(nil, "Bonus settings updated"))
}

type PayBonusRequest struct {
	UserId string `json:"userId" binding:"required"`
}

func (h *BonusHandler) PayVisitBonus(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	var req PayBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.PayVisitBonus(storeId, req.UserId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(result, "Bonus paid"))
}

func (h *BonusHandler) ListPayments(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	payments, err := h.Service.ListPayments(storeId, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(payments, "Bonus payments fetched"))
}
