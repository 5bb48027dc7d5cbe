package commands

import (
	"context"
	"errors"

	"arenaos/internal/domain/ledger"
	"arenaos/internal/infra"
	"arenaos/internal/pkg/clock"
	"arenaos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errs.New("transaction not found")
	ErrNotVerifiable       = errs.New("transaction cannot be verified")
)

type VerifyResult struct {
	TransactionID    uuid.UUID `json:"transaction_id"`
	BookingID        uuid.UUID `json:"booking_id"`
	Status           string    `json:"status"`
	AlreadyCompleted bool      `json:"already_completed"`
}

type LedgerCommands interface {
	Verify(ctx context.Context, transactionID uuid.UUID) (*VerifyResult, error)
}

type ledgerCommandsImpl struct {
	transactions TransactionRepository
	bookings     BookingRepository
	clock        clock.Clock
}

func NewLedgerCommands(
	transactions TransactionRepository,
	bookings BookingRepository,
	clk clock.Clock,
) LedgerCommands {
	return &ledgerCommandsImpl{
		transactions: transactions,
		bookings:     bookings,
		clock:        clk,
	}
}

// Verify is the manual settlement path: staff confirm a payment arrived
// out of band. Verifying an entry that already settled is a no-op, not
// an error, so a double scan at the desk cannot double-settle.
func (c *ledgerCommandsImpl) Verify(ctx context.Context, transactionID uuid.UUID) (*VerifyResult, error) {
	tx, err := c.transactions.FindByID(ctx, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	if tx.Kind() != ledger.KindPayment {
		return nil, ErrNotVerifiable
	}

	if completeErr := tx.Complete(); completeErr != nil {
		if errors.Is(completeErr, ledger.ErrAlreadyCompleted) {
			return &VerifyResult{
				TransactionID:    tx.ID(),
				BookingID:        tx.BookingID(),
				Status:           tx.Status().String(),
				AlreadyCompleted: true,
			}, nil
		}
		return nil, errs.Mark(completeErr, ErrNotVerifiable)
	}
	if err := c.transactions.SaveStatus(ctx, tx); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	bk, err := loadBooking(ctx, c.bookings, tx.BookingID())
	if err != nil {
		return nil, err
	}
	if err := bk.ConfirmPayment(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}
	if err := c.bookings.Save(ctx, bk); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	return &VerifyResult{
		TransactionID: tx.ID(),
		BookingID:     tx.BookingID(),
		Status:        tx.Status().String(),
	}, nil
}
