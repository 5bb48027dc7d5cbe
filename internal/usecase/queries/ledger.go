package queries

import (
	"context"

	"arenaos/internal/domain/ledger"
	"arenaos/internal/pkg/errs"

	"github.com/google/uuid"
)

type TransactionReadRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Transaction, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*ledger.Transaction, error)
	ListByStatus(ctx context.Context, status ledger.Status) ([]*ledger.Transaction, error)
}

type LedgerQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TransactionView, error)
	ListByStatus(ctx context.Context, status string) ([]*TransactionView, error)
}

type ledgerQueriesImpl struct {
	transactions TransactionReadRepo
}

func NewLedgerQueries(transactions TransactionReadRepo) LedgerQueries {
	return &ledgerQueriesImpl{transactions: transactions}
}

func (q *ledgerQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error) {
	txs, err := q.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}
	return viewsFromTransactions(txs), nil
}

func (q *ledgerQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TransactionView, error) {
	txs, err := q.transactions.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}
	return viewsFromTransactions(txs), nil
}

func (q *ledgerQueriesImpl) ListByStatus(ctx context.Context, status string) ([]*TransactionView, error) {
	st, err := ledger.NewStatus(status)
	if err != nil {
		return nil, err
	}
	txs, err := q.transactions.ListByStatus(ctx, st)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}
	return viewsFromTransactions(txs), nil
}

func viewsFromTransactions(txs []*ledger.Transaction) []*TransactionView {
	out := make([]*TransactionView, len(txs))
	for i, tx := range txs {
		out[i] = &TransactionView{
			ID:          tx.ID(),
			BookingID:   tx.BookingID(),
			UserID:      tx.UserID(),
			AmountCents: tx.Amount().Cents(),
			Date:        tx.Date(),
			Type:        tx.Kind().String(),
			Status:      tx.Status().String(),
			Method:      tx.Method().String(),
			Reference:   tx.Reference(),
		}
	}
	return out
}
