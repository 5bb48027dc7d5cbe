package response

import (
	"time"

	"arenaos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference"`
}

func FromTransactionView(rm *queries.TransactionView) *TransactionResponse {
	var resp TransactionResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromTransactionViews(rms []*queries.TransactionView) []*TransactionResponse {
	out := make([]*TransactionResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromTransactionView(rm)
	}
	return out
}
