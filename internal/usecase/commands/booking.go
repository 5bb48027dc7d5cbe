package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/ledger"
	"arenaos/internal/domain/pricing"
	"arenaos/internal/domain/resource"
	"arenaos/internal/pkg/clock"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/usecase/queries"
	"arenaos/internal/usecase/shared"

	"arenaos/internal/infra"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound       = errs.New("resource not found")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrSlotUnavailable        = errs.New("slot unavailable")
	ErrInvalidStateTransition = errs.New("invalid state transition")
	ErrInvalidBookingRequest  = errs.New("invalid booking request")
	ErrPersistenceFailed      = errs.New("persistence unavailable")
)

type CreateBookingParams struct {
	ResourceID uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	StartHour  int
	Duration   int
	Quantity   int
}

type CreateBookingResult struct {
	BatchRef string
	Bookings []*queries.BookingView
}

type CancelResult struct {
	RefundCents int64
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID) error
	Complete(ctx context.Context, bookingID uuid.UUID) error
	Cancel(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error)
	ReleaseExpiredHolds(ctx context.Context, ttl time.Duration) (int, error)
}

type bookingCommandsImpl struct {
	bookings     BookingRepository
	resources    ResourceRepository
	transactions TransactionRepository
	rateCards    RateCardRepository
	policies     PolicyRepository
	factory      *booking.Factory
	slots        *shared.SlotLocker
	clock        clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	resources ResourceRepository,
	transactions TransactionRepository,
	rateCards RateCardRepository,
	policies PolicyRepository,
	factory *booking.Factory,
	slots *shared.SlotLocker,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:     bookings,
		resources:    resources,
		transactions: transactions,
		rateCards:    rateCards,
		policies:     policies,
		factory:      factory,
		slots:        slots,
		clock:        clk,
	}
}

// Create prices the request, expands it into per-hour bookings, and
// commits them atomically with respect to the touched slots. Capacity
// is rechecked under the slot locks so two concurrent requests cannot
// both squeeze into the last unit.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	res, err := c.loadResource(ctx, params.ResourceID)
	if err != nil {
		return nil, err
	}

	start, err := booking.NewSlot(params.Date, params.StartHour)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	cards, err := c.rateCards.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	engine := pricing.NewRateEngine(pricing.StaticCardSet(cards))

	batch, err := c.factory.CreateBatch(engine, res, params.UserID, start, params.Duration, params.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	release := c.lockSlots(res.ID(), batch)
	defer release()

	for _, bk := range batch.Bookings {
		existing, listErr := c.bookings.ListBySlot(ctx, res.ID(), bk.Slot())
		if listErr != nil {
			return nil, errs.Mark(listErr, ErrPersistenceFailed)
		}
		if !booking.IsBookable(res, existing, bk.Quantity()) {
			return nil, ErrSlotUnavailable
		}
	}

	views := make([]*queries.BookingView, 0, len(batch.Bookings))
	for i, bk := range batch.Bookings {
		if createErr := c.bookings.Create(ctx, bk); createErr != nil {
			// Accepted bookings stay accepted; surface the failure for
			// the slots we could not persist.
			return nil, errs.Mark(createErr, ErrPersistenceFailed)
		}
		if appendErr := c.transactions.Append(ctx, batch.Transactions[i]); appendErr != nil {
			slog.Error("pending payment entry not persisted",
				"booking_id", bk.ID(), "error", appendErr)
			return nil, errs.Mark(appendErr, ErrPersistenceFailed)
		}
		views = append(views, bookingView(bk, res.Name()))
	}

	return &CreateBookingResult{
		BatchRef: batch.Ref().String(),
		Bookings: views,
	}, nil
}

// ConfirmPayment settles the booking's pending payment entry and moves
// the booking to CONFIRMED. This is the webhook path; staff manual
// verification goes through the ledger's Verify with the same effect.
func (c *bookingCommandsImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID) error {
	bk, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	pending, err := c.findPendingPayment(ctx, bookingID)
	if err != nil {
		return err
	}

	return c.settlePayment(ctx, pending, bk)
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, bookingID uuid.UUID) error {
	bk, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := bk.Complete(c.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidStateTransition)
	}
	if err := c.bookings.Save(ctx, bk); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}

// Cancel moves the booking to CANCELLED and pays out the policy refund.
// The state machine guards double cancellation, which is what keeps the
// refund exactly-once: a second call fails the transition before any
// ledger write.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error) {
	bk, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	pol, err := c.policies.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	if err := bk.Cancel(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}
	if err := c.bookings.Save(ctx, bk); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	refund := pol.RefundFor(bk.TotalAmount())
	if refund.IsZero() {
		return &CancelResult{}, nil
	}

	tx := ledger.NewRefund(
		uuid.New(),
		bk.ID(),
		bk.UserID(),
		refund,
		ledger.MethodQR,
		fmt.Sprintf("REFUND-%s", bk.ID()),
		c.clock.Now(),
	)
	if err := c.transactions.Append(ctx, tx); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	return &CancelResult{RefundCents: refund.Cents()}, nil
}

// ReleaseExpiredHolds cancels PENDING_PAYMENT bookings older than the
// TTL and fails their pending payment entries. No refund: nothing was
// ever collected. Returns how many holds were released.
func (c *bookingCommandsImpl) ReleaseExpiredHolds(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}

	stale, err := c.bookings.ListByStatus(ctx, booking.StatusPendingPayment)
	if err != nil {
		return 0, errs.Mark(err, ErrPersistenceFailed)
	}

	cutoff := c.clock.Now().Add(-ttl)
	released := 0
	for _, bk := range stale {
		if !bk.CreatedAt().Before(cutoff) {
			continue
		}
		if cancelErr := bk.Cancel(c.clock.Now()); cancelErr != nil {
			continue
		}
		if saveErr := c.bookings.Save(ctx, bk); saveErr != nil {
			slog.Warn("failed to release expired hold", "booking_id", bk.ID(), "error", saveErr)
			continue
		}
		if pending, findErr := c.findPendingPayment(ctx, bk.ID()); findErr == nil {
			if failErr := pending.Fail(); failErr == nil {
				if saveErr := c.transactions.SaveStatus(ctx, pending); saveErr != nil {
					slog.Warn("failed to fail pending payment", "transaction_id", pending.ID(), "error", saveErr)
				}
			}
		}
		released++
	}
	return released, nil
}

func (c *bookingCommandsImpl) settlePayment(ctx context.Context, tx *ledger.Transaction, bk *booking.Booking) error {
	if err := tx.Complete(); err != nil {
		return errs.Mark(err, ErrInvalidStateTransition)
	}
	if err := c.transactions.SaveStatus(ctx, tx); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	if err := bk.ConfirmPayment(c.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidStateTransition)
	}
	if err := c.bookings.Save(ctx, bk); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) findPendingPayment(ctx context.Context, bookingID uuid.UUID) (*ledger.Transaction, error) {
	txs, err := c.transactions.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	for _, tx := range txs {
		if tx.Kind() == ledger.KindPayment && tx.IsPending() {
			return tx, nil
		}
	}
	return nil, ErrInvalidStateTransition
}

func (c *bookingCommandsImpl) loadResource(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, err := c.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return res, nil
}

func (c *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return loadBooking(ctx, c.bookings, id)
}

func loadBooking(ctx context.Context, repo BookingRepository, id uuid.UUID) (*booking.Booking, error) {
	bk, err := repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return bk, nil
}

// lockSlots takes every slot key of the batch in hour order so two
// overlapping multi-hour requests always acquire in the same sequence.
func (c *bookingCommandsImpl) lockSlots(resourceID uuid.UUID, batch booking.Batch) func() {
	releases := make([]func(), 0, len(batch.Bookings))
	for _, bk := range batch.Bookings {
		key := slotKey(resourceID, bk.Slot())
		releases = append(releases, c.slots.Acquire(key))
	}
	return func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
}

func slotKey(resourceID uuid.UUID, slot booking.Slot) string {
	return fmt.Sprintf("%s|%s|%02d", resourceID, slot.DateString(), slot.Hour())
}

func bookingView(bk *booking.Booking, resourceName string) *queries.BookingView {
	return &queries.BookingView{
		ID:               bk.ID(),
		TenantID:         bk.TenantID(),
		ResourceID:       bk.ResourceID(),
		ResourceName:     resourceName,
		UserID:           bk.UserID(),
		Date:             bk.Slot().DateString(),
		StartHour:        bk.Slot().Hour(),
		Duration:         bk.Duration(),
		Quantity:         bk.Quantity(),
		Status:           bk.Status().String(),
		TotalAmountCents: bk.TotalAmount().Cents(),
		EntryPass:        bk.EntryPass().String(),
		PaymentRef:       bk.PaymentRef().String(),
		BatchRef:         bk.BatchRef().String(),
		CheckInAt:        bk.CheckInAt(),
		CreatedAt:        bk.CreatedAt(),
		UpdatedAt:        bk.UpdatedAt(),
	}
}
