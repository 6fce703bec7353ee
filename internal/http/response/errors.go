package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/swagship-backend/internal/platform/apierr"
	"github.com/yungbote/swagship-backend/internal/services"
)

// RespondServiceError translates the services error taxonomy into a status
// and stable code. Unknown errors fall through as a 500 with a generic body.
func RespondServiceError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		RespondError(c, apiErr.Status, apiErr.Code, apiErr)
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, services.ErrEmptyCart):
		RespondError(c, http.StatusBadRequest, "empty_cart", err)
	case services.IsInsufficientFunds(err):
		RespondError(c, http.StatusPaymentRequired, "insufficient_credits", err)
	case services.IsInsufficientStock(err):
		RespondError(c, http.StatusConflict, "insufficient_stock", err)
	case errors.Is(err, services.ErrAlreadyProcessed):
		RespondError(c, http.StatusConflict, "already_processed", err)
	case errors.Is(err, services.ErrDuplicateReference):
		RespondError(c, http.StatusConflict, "duplicate_reference", err)
	case errors.Is(err, services.ErrChargeNotSucceeded):
		RespondError(c, http.StatusBadRequest, "charge_not_succeeded", err)
	case errors.Is(err, services.ErrChargeOwnerMismatch):
		RespondError(c, http.StatusForbidden, "charge_owner_mismatch", err)
	case errors.Is(err, services.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
	case errors.Is(err, services.ErrEmailTaken):
		RespondError(c, http.StatusConflict, "email_taken", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal error"))
	}
}
