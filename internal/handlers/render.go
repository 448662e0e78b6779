package handlers

import (
	"errors"
	"net/http"

	"owner-wallet-service/pkg/common"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Partial
// failures are not errors at the transport level: the primary mutation
// committed, so the response is a 200 carrying the reconciliation warning.
func respondError(c *gin.Context, err error) {
	var partial *common.PartialFailureError
	if errors.As(err, &partial) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"warning": partial.Error(),
			"amount":  partial.Amount,
			"user_id": partial.UserId,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrAlreadyProcessed):
		status = http.StatusConflict
	case errors.Is(err, common.ErrInsufficientBalance):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrMissingOwnerReference):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, common.NewErrorResponse(err.Error(), nil, status))
}
