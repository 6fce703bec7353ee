package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yungbote/swagship-backend/internal/http/response"
	"github.com/yungbote/swagship-backend/internal/requestdata"
	"github.com/yungbote/swagship-backend/internal/services"
)

// WebhookVerifier authenticates a raw processor notification and extracts the
// charge it refers to. An empty ID means the event type is not handled.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, sigHeader string) (string, error)
}

type PaymentHandler struct {
	paymentService services.PaymentService
	verifier       WebhookVerifier
}

func NewPaymentHandler(paymentService services.PaymentService, verifier WebhookVerifier) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, verifier: verifier}
}

// POST /api/payments/intent  body: { "amount": "25.00" }
func (ph *PaymentHandler) CreateIntent(c *gin.Context) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	clientSecret, err := ph.paymentService.CreateIntent(c.Request.Context(), userID, req.Amount)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"client_secret": clientSecret})
}

// POST /api/payments/confirm  body: { "payment_intent_id": "pi_..." }
func (ph *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req struct {
		PaymentIntentID string `json:"payment_intent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentIntentID == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	result, err := ph.paymentService.ConfirmPayment(c.Request.Context(), userID, req.PaymentIntentID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// POST /api/payments/webhook (public, signature-authenticated)
func (ph *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	chargeID, err := ph.verifier.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_signature", err)
		return
	}
	if chargeID == "" {
		response.RespondOK(c, gin.H{"received": true})
		return
	}
	if err := ph.paymentService.HandleSucceededCharge(c.Request.Context(), chargeID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"received": true})
}
