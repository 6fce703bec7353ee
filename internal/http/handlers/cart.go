package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/swagship-backend/internal/http/response"
	"github.com/yungbote/swagship-backend/internal/requestdata"
	"github.com/yungbote/swagship-backend/internal/services"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /api/cart
func (ch *CartHandler) GetCart(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	cart, err := ch.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, cart)
}

// POST /api/cart  body: { "item_id": "...", "quantity": 2 }
func (ch *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_item_id", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	userID := requestdata.UserID(c.Request.Context())
	line, err := ch.cartService.AddItem(c.Request.Context(), userID, itemID, req.Quantity)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"cart_item": line})
}

// PATCH /api/cart/:id  body: { "quantity": 3 }
func (ch *CartHandler) UpdateQuantity(c *gin.Context) {
	cartItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_cart_item_id", err)
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := ch.cartService.UpdateQuantity(c.Request.Context(), userID, cartItemID, req.Quantity); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/cart/:id
func (ch *CartHandler) RemoveItem(c *gin.Context) {
	cartItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_cart_item_id", err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := ch.cartService.RemoveItem(c.Request.Context(), userID, cartItemID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/cart
func (ch *CartHandler) ClearCart(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	if err := ch.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
