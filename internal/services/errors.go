package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; none of them are swallowed internally.
var (
	ErrNotFound            = errors.New("not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrDuplicateReference  = errors.New("external reference already recorded")
	ErrAlreadyProcessed    = errors.New("payment already processed")
	ErrChargeNotSucceeded  = errors.New("payment not completed")
	ErrChargeOwnerMismatch = errors.New("payment does not belong to this user")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email already registered")
)

// InsufficientFundsError reports the shortfall so callers can render it.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %s, available %s",
		e.Required.StringFixed(2), e.Available.StringFixed(2))
}

// InsufficientStockError identifies the offending line.
type InsufficientStockError struct {
	ItemID    uuid.UUID
	ItemName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.ItemName, e.Available, e.Requested)
}

func IsInsufficientFunds(err error) bool {
	var target *InsufficientFundsError
	return errors.As(err, &target)
}

func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
