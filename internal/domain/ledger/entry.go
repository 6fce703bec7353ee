package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	KindWelcomeGrant   EntryKind = "welcome_grant"
	KindCreditPurchase EntryKind = "credit_purchase"
	KindOrderDebit     EntryKind = "order_debit"
)

// LedgerEntry is an append-only record of one signed balance change. Rows are
// never updated or deleted. ExternalRef holds the payment-processor charge id
// for credit purchases; its unique index is the sole idempotency guard
// against crediting the same charge twice.
type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Kind        EntryKind       `gorm:"not null;column:kind" json:"kind"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null;column:amount" json:"amount"`
	ExternalRef *string         `gorm:"uniqueIndex;column:external_ref" json:"external_ref,omitempty"`
	Description string          `gorm:"not null;column:description" json:"description"`
	CreatedAt   time.Time       `gorm:"not null;default:now();index" json:"created_at"`
}

func (LedgerEntry) TableName() string { return "ledger_entry" }
