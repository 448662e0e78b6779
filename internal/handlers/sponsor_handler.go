package handlers

import (
	"net/http"
	"strconv"

	"owner-wallet-service/internal/services"
	"owner-wallet-service/pkg/common"

	"github.com/gin-gonic/gin"
)

type SponsorHandler struct {
	Service *services.SponsorService
}

func NewSponsorHandler(service *services.SponsorService) *SponsorHandler {
	return &SponsorHandler{Service: service}
}

func (h *SponsorHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(services.PriorityPlans, "Sponsor plans"))
}

type ApplyRequest struct {
	Message string `json:"message"`
}

func (h *SponsorHandler) Apply(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store id"})
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.Service.Apply(services.ApplyDTO{StoreId: storeId, Message: req.Message})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(application, "Sponsor application filed"))
}

func (h *SponsorHandler) ApproveApplication(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	application, err := h.Service.ApproveApplication(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(application, "Sponsor application approved"))
}

type RejectApplicationRequest struct {
	Reason string `json:"reason"`
}

func (h *SponsorHandler) RejectApplication(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	var req RejectApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.Service.RejectApplication(id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(application, "Sponsor application rejected"))
}

func (h *SponsorHandler) ListApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.Service.ListApplications(c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type PurchaseLevelRequest struct {
	OwnerId    string `json:"owner_id"`
	OwnerEmail string `json:"owner_email"`
	Level      int    `json:"level" binding:"required"`
}

func (h *SponsorHandler) PurchaseLevel(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store id"})
		return
	}

	var req PurchaseLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.PurchaseLevel(services.PurchaseLevelDTO{
		StoreId:    storeId,
		OwnerId:    req.OwnerId,
		OwnerEmail: req.OwnerEmail,
		Level:      req.Level,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"store":       result.Store,
		"plan":        result.Plan,
		"new_balance": result.NewBalance,
		"expires_at":  result.ExpiresAt,
	}, "Sponsor level activated"))
}

type BonusSettingsRequest struct {
	SponsorBonusPoints int64   `json:"sponsor_bonus_points"`
	BonusMultiplier    float64 `json:"bonus_multiplier"`
}

func (h *SponsorHandler) UpdateBonusSettings(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store id"})
		return
	}

	var req BonusSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateBonusSettings(services.BonusSettingsDTO{
		StoreId:            storeId,
		SponsorBonusPoints: req.SponsorBonusPoints,
		BonusMultiplier:    req.BonusMultiplier,
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(nil, "Sponsor bonus updated"))
}

func (h *SponsorHandler) Deactivate(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store id"})
		return
	}

	if err := h.Service.Deactivate(storeId); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(nil, "Sponsor deactivated"))
}

func (h *SponsorHandler) ListSponsors(c *gin.Context) {
	stores, err := h.Service.ListSponsors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(stores, "Sponsors fetched"))
}

func (h *SponsorHandler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	storeId, _ := strconv.Atoi(c.Query("store_id"))

	result, err := h.Service.ListPayments(services.ListPaymentsDTO{
		StoreId: storeId,
		OwnerId: c.Query("owner_id"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
