package repository

import (
	"context"
	"errors"

	"arenaos/internal/domain/ledger"
	"arenaos/internal/domain/money"
	"arenaos/internal/infra"
	"arenaos/internal/infra/store"

	"github.com/google/uuid"
)

type TransactionRepository struct {
	store *store.Store
}

func NewTransactionRepository(s *store.Store) *TransactionRepository {
	return &TransactionRepository{store: s}
}

// Append adds a ledger entry. The ledger is append-only: entries are
// never removed, and the only field ever patched afterwards is status.
func (r *TransactionRepository) Append(_ context.Context, tx *ledger.Transaction) error {
	if err := r.store.Insert(tableTransactions, transactionToRecord(tx)); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return infra.WrapRepoErr("transaction already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to append transaction", err)
	}
	return nil
}

func (r *TransactionRepository) SaveStatus(_ context.Context, tx *ledger.Transaction) error {
	patch := store.Record{"status": tx.Status().String()}
	if _, err := r.store.Update(tableTransactions, tx.ID().String(), patch); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to save transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	rec, err := r.store.Get(tableTransactions, id.String())
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}
	return recordToTransaction(rec)
}

func (r *TransactionRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*ledger.Transaction, error) {
	return r.list(store.Filter{"user_id": userID.String()})
}

func (r *TransactionRepository) ListByBooking(_ context.Context, bookingID uuid.UUID) ([]*ledger.Transaction, error) {
	return r.list(store.Filter{"booking_id": bookingID.String()})
}

func (r *TransactionRepository) ListByStatus(_ context.Context, status ledger.Status) ([]*ledger.Transaction, error) {
	return r.list(store.Filter{"status": status.String()})
}

func (r *TransactionRepository) list(f store.Filter) ([]*ledger.Transaction, error) {
	recs, err := r.store.List(tableTransactions, f)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	out := make([]*ledger.Transaction, 0, len(recs))
	for _, rec := range recs {
		tx, convErr := recordToTransaction(rec)
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, tx)
	}
	return out, nil
}

func transactionToRecord(tx *ledger.Transaction) store.Record {
	return store.Record{
		"id":           tx.ID().String(),
		"booking_id":   tx.BookingID().String(),
		"user_id":      tx.UserID().String(),
		"amount_cents": tx.Amount().Cents(),
		"date":         tx.Date(),
		"type":         tx.Kind().String(),
		"status":       tx.Status().String(),
		"method":       tx.Method().String(),
		"reference":    tx.Reference(),
	}
}

func recordToTransaction(rec store.Record) (*ledger.Transaction, error) {
	id, err := uuid.Parse(asString(rec, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed transaction id", err)
	}
	bookingID, err := uuid.Parse(asString(rec, "booking_id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking id", err)
	}
	userID, err := uuid.Parse(asString(rec, "user_id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed user id", err)
	}
	kind, err := ledger.NewKind(asString(rec, "type"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed transaction type", err)
	}
	status, err := ledger.NewStatus(asString(rec, "status"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed transaction status", err)
	}
	method, err := ledger.NewMethod(asString(rec, "method"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed payment method", err)
	}

	return ledger.Reconstruct(
		id,
		bookingID,
		userID,
		money.New(asInt64(rec, "amount_cents")),
		asTime(rec, "date"),
		kind,
		status,
		method,
		asString(rec, "reference"),
	), nil
}
