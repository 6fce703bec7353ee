package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User carries the credit balance alongside identity. The balance column is
// mutated only inside ledger transactions and always equals the sum of the
// user's ledger entries.
type User struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email         string          `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password      string          `gorm:"not null;column:password" json:"-"`
	Name          string          `gorm:"not null;column:name" json:"name"`
	Role          string          `gorm:"not null;default:'member';column:role" json:"role"`
	CreditBalance decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;column:credit_balance" json:"credit_balance"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
