package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountrepo "github.com/yungbote/swagship-backend/internal/data/repos/account"
	ledgerrepo "github.com/yungbote/swagship-backend/internal/data/repos/ledger"
	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

// LedgerService is the only writer of credit balances. Every balance change
// goes through ApplyEntry, which appends one immutable ledger entry and moves
// the running balance in the same database transaction, so the invariant
// balance == Σ entries holds at every commit point.
type LedgerService interface {
	// ApplyEntry applies a signed amount to the user's balance. When tx is
	// non-nil the entry joins the caller's transaction (the order engine uses
	// this); otherwise a transaction is opened here.
	ApplyEntry(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind types.EntryKind, amount decimal.Decimal, externalRef *string, description string) (decimal.Decimal, error)
	Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	Entries(ctx context.Context, userID uuid.UUID, page, limit int) ([]*types.LedgerEntry, int64, error)
	// ReconcileBalance recomputes the balance from the entry log.
	ReconcileBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type ledgerService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo accountrepo.UserRepo
	entries  ledgerrepo.EntryRepo
}

func NewLedgerService(db *gorm.DB, log *logger.Logger, userRepo accountrepo.UserRepo, entries ledgerrepo.EntryRepo) LedgerService {
	return &ledgerService{
		db:       db,
		log:      log.With("service", "LedgerService"),
		userRepo: userRepo,
		entries:  entries,
	}
}

func (ls *ledgerService) ApplyEntry(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind types.EntryKind, amount decimal.Decimal, externalRef *string, description string) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	apply := func(tx *gorm.DB) error {
		if externalRef != nil {
			exists, err := ls.entries.ExternalRefExists(ctx, tx, *externalRef)
			if err != nil {
				return fmt.Errorf("check external ref: %w", err)
			}
			if exists {
				return ErrDuplicateReference
			}
		}

		ok, err := ls.userRepo.AddToBalance(ctx, tx, userID, amount)
		if err != nil {
			return fmt.Errorf("apply balance delta: %w", err)
		}
		if !ok {
			if amount.Sign() >= 0 {
				// A credit can only be rejected by a missing account.
				return ErrNotFound
			}
			available, balErr := ls.userRepo.GetBalance(ctx, tx, userID)
			if balErr != nil {
				available = decimal.Zero
			}
			return &InsufficientFundsError{Required: amount.Neg(), Available: available}
		}

		entry := &types.LedgerEntry{
			ID:          uuid.New(),
			UserID:      userID,
			Kind:        kind,
			Amount:      amount,
			ExternalRef: externalRef,
			Description: description,
		}
		if _, err := ls.entries.Create(ctx, tx, []*types.LedgerEntry{entry}); err != nil {
			if isUniqueViolation(err) {
				// Two deliveries of the same charge raced past the pre-check;
				// the unique index on external_ref decides the winner.
				return ErrDuplicateReference
			}
			return fmt.Errorf("append ledger entry: %w", err)
		}

		balance, err := ls.userRepo.GetBalance(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("read balance: %w", err)
		}
		newBalance = balance
		return nil
	}

	var err error
	if tx != nil {
		err = apply(tx)
	} else {
		err = ls.db.WithContext(ctx).Transaction(apply)
	}
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

func (ls *ledgerService) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	users, err := ls.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return decimal.Zero, err
	}
	if len(users) == 0 {
		return decimal.Zero, ErrNotFound
	}
	return users[0].CreditBalance, nil
}

func (ls *ledgerService) Entries(ctx context.Context, userID uuid.UUID, page, limit int) ([]*types.LedgerEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	rows, err := ls.entries.ListByUserID(ctx, nil, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := ls.entries.CountByUserID(ctx, nil, userID)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (ls *ledgerService) ReconcileBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return ls.entries.SumByUserID(ctx, nil, userID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
