package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/swagship-backend/internal/http/response"
	"github.com/yungbote/swagship-backend/internal/platform/apierr"
	"github.com/yungbote/swagship-backend/internal/requestdata"
	"github.com/yungbote/swagship-backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/orders  body: shipping address
func (oh *OrderHandler) PlaceOrder(c *gin.Context) {
	var req services.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Address == "" || req.City == "" || req.ZipCode == "" {
		response.RespondServiceError(c, apierr.New(http.StatusBadRequest, "invalid_address", errMissingAddressFields))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	order, err := oh.orderService.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"order": order})
}

// GET /api/orders?page=&limit=
func (oh *OrderHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	userID := requestdata.UserID(c.Request.Context())
	orders, total, err := oh.orderService.ListOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"orders": orders,
		"total":  total,
		"page":   page,
	})
}

// GET /api/orders/:id
func (oh *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_order_id", err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	order, err := oh.orderService.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"order": order})
}
