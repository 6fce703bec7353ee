package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

// Charge is the processor's view of a completed (or not) payment.
type Charge struct {
	ID        string
	Succeeded bool
	UserID    uuid.UUID
	Amount    decimal.Decimal
}

// PaymentProcessor is the external payment collaborator. The production
// implementation lives in internal/platform/stripepay; tests substitute a
// fake.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (clientSecret string, intentID string, err error)
	RetrieveCharge(ctx context.Context, chargeID string) (Charge, error)
}

type ConfirmResult struct {
	CreditsAdded decimal.Decimal `json:"creditsAdded"`
	NewBalance   decimal.Decimal `json:"newBalance"`
}

// PaymentService owns exactly-once crediting of charges. Both delivery paths
// (the client confirmation call and the processor's asynchronous
// notification) funnel into the same crediting routine; the ledger's unique
// external_ref index is the only deduplication state.
type PaymentService interface {
	CreateIntent(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (clientSecret string, err error)
	ConfirmPayment(ctx context.Context, userID uuid.UUID, chargeID string) (*ConfirmResult, error)
	// HandleSucceededCharge is the webhook path. Redundant deliveries for an
	// already-credited charge are logged and absorbed.
	HandleSucceededCharge(ctx context.Context, chargeID string) error
}

type paymentService struct {
	db        *gorm.DB
	log       *logger.Logger
	processor PaymentProcessor
	ledger    LedgerService
}

func NewPaymentService(db *gorm.DB, log *logger.Logger, processor PaymentProcessor, ledger LedgerService) PaymentService {
	return &paymentService{
		db:        db,
		log:       log.With("service", "PaymentService"),
		processor: processor,
		ledger:    ledger,
	}
}

func (ps *paymentService) CreateIntent(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (string, error) {
	if amount.Sign() <= 0 {
		return "", fmt.Errorf("credit amount must be positive")
	}
	clientSecret, intentID, err := ps.processor.CreateIntent(ctx, userID, amount.Round(2))
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	ps.log.Info("Payment intent created", "user_id", userID.String(), "intent_id", intentID, "amount", amount.StringFixed(2))
	return clientSecret, nil
}

func (ps *paymentService) ConfirmPayment(ctx context.Context, userID uuid.UUID, chargeID string) (*ConfirmResult, error) {
	charge, err := ps.processor.RetrieveCharge(ctx, chargeID)
	if err != nil {
		return nil, fmt.Errorf("retrieve charge %s: %w", chargeID, err)
	}
	if !charge.Succeeded {
		return nil, ErrChargeNotSucceeded
	}
	if charge.UserID != userID {
		return nil, ErrChargeOwnerMismatch
	}
	return ps.credit(ctx, charge)
}

func (ps *paymentService) HandleSucceededCharge(ctx context.Context, chargeID string) error {
	charge, err := ps.processor.RetrieveCharge(ctx, chargeID)
	if err != nil {
		return fmt.Errorf("retrieve charge %s: %w", chargeID, err)
	}
	if !charge.Succeeded || charge.UserID == uuid.Nil {
		return nil
	}
	if _, err := ps.credit(ctx, charge); err != nil {
		if errors.Is(err, ErrAlreadyProcessed) {
			// Expected when the direct confirmation beat the webhook.
			ps.log.Debug("Charge already credited", "charge_id", chargeID)
			return nil
		}
		return err
	}
	ps.log.Info("Charge credited via notification", "charge_id", chargeID, "user_id", charge.UserID.String())
	return nil
}

func (ps *paymentService) credit(ctx context.Context, charge Charge) (*ConfirmResult, error) {
	ref := charge.ID
	amount := charge.Amount.Round(2)
	newBalance, err := ps.ledger.ApplyEntry(ctx, nil, charge.UserID, types.KindCreditPurchase, amount, &ref,
		fmt.Sprintf("Purchased $%s in credits", amount.StringFixed(2)))
	if err != nil {
		if errors.Is(err, ErrDuplicateReference) {
			return nil, ErrAlreadyProcessed
		}
		return nil, err
	}
	return &ConfirmResult{CreditsAdded: amount, NewBalance: newBalance}, nil
}
