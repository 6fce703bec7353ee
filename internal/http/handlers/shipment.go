package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/swagship-backend/internal/http/response"
	"github.com/yungbote/swagship-backend/internal/requestdata"
	"github.com/yungbote/swagship-backend/internal/services"
)

type ShipmentHandler struct {
	shipmentService services.ShipmentService
}

func NewShipmentHandler(shipmentService services.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

// GET /api/orders/:id/tracking
func (sh *ShipmentHandler) TrackByOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_order_id", err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	info, err := sh.shipmentService.TrackByOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, info)
}

// GET /api/orders/:id/tracking/history
func (sh *ShipmentHandler) TrackHistory(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_order_id", err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	events, err := sh.shipmentService.History(c.Request.Context(), userID, orderID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"events": events})
}

// GET /api/shipping/track/:trackingNumber
func (sh *ShipmentHandler) TrackByNumber(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")
	if trackingNumber == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_tracking_number", nil)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	info, err := sh.shipmentService.TrackByNumber(c.Request.Context(), userID, trackingNumber)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, info)
}
