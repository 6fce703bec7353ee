// Package stripepay implements the payment processor against Stripe.
// Credit amounts are dollars; Stripe speaks cents.
package stripepay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/yungbote/swagship-backend/internal/pkg/logger"
	"github.com/yungbote/swagship-backend/internal/services"
)

const (
	metadataUserID       = "user_id"
	metadataCreditAmount = "credit_amount"
)

type Client struct {
	sc            *client.API
	log           *logger.Logger
	webhookSecret string
}

func New(secretKey, webhookSecret string, log *logger.Logger) *Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Client{sc: sc, log: log.With("platform", "stripe"), webhookSecret: webhookSecret}
}

var _ services.PaymentProcessor = (*Client)(nil)

func (c *Client) CreateIntent(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (string, string, error) {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata(metadataUserID, userID.String())
	params.AddMetadata(metadataCreditAmount, amount.StringFixed(2))
	pi, err := c.sc.PaymentIntents.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe create intent: %w", err)
	}
	return pi.ClientSecret, pi.ID, nil
}

func (c *Client) RetrieveCharge(ctx context.Context, chargeID string) (services.Charge, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := c.sc.PaymentIntents.Get(chargeID, params)
	if err != nil {
		return services.Charge{}, fmt.Errorf("stripe get intent %s: %w", chargeID, err)
	}
	charge := services.Charge{
		ID:        pi.ID,
		Succeeded: pi.Status == stripe.PaymentIntentStatusSucceeded,
		Amount:    decimal.New(pi.Amount, -2),
	}
	if raw, ok := pi.Metadata[metadataUserID]; ok {
		uid, err := uuid.Parse(raw)
		if err != nil {
			c.log.Warn("Intent carries malformed user metadata", "intent_id", pi.ID, "value", raw)
		} else {
			charge.UserID = uid
		}
	}
	return charge, nil
}

// VerifyEvent checks the webhook signature and returns the intent ID when the
// event is a successful payment. An empty ID means the event is not ours to
// handle.
func (c *Client) VerifyEvent(payload []byte, sigHeader string) (string, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return "", fmt.Errorf("verify webhook signature: %w", err)
	}
	if string(event.Type) != "payment_intent.succeeded" {
		return "", nil
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return "", fmt.Errorf("decode payment intent: %w", err)
	}
	return pi.ID, nil
}
