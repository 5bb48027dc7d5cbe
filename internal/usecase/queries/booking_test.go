//go:build unit

package queries_test

import (
	"context"
	"testing"

	"arenaos/internal/domain/booking"
	"arenaos/internal/infra/repository"
	"arenaos/internal/infra/store"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/usecase/queries"
	"arenaos/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingQueries(t *testing.T) (queries.BookingQueries, *repository.BookingRepository, *repository.ResourceRepository) {
	t.Helper()
	s := store.New()
	bookings := repository.NewBookingRepository(s)
	resources := repository.NewResourceRepository(s)
	return queries.NewBookingQueries(bookings, resources), bookings, resources
}

func TestGetBookingByID(t *testing.T) {
	q, bookings, resources := newBookingQueries(t)
	ctx := context.Background()

	res := builder.NewResourceBuilder().BuildDomain()
	require.NoError(t, resources.Create(ctx, res))

	bk := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.ResourceID = res.ID() }).
		BuildDomain()
	require.NoError(t, bookings.Create(ctx, bk))

	view, err := q.GetByID(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, bk.ID(), view.ID)
	assert.Equal(t, res.Name(), view.ResourceName)
	assert.Equal(t, "2026-03-14", view.Date)
	assert.Equal(t, int64(5000), view.TotalAmountCents)

	t.Run("unknown booking", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestListBookingsByUser(t *testing.T) {
	q, bookings, resources := newBookingQueries(t)
	ctx := context.Background()

	res := builder.NewResourceBuilder().BuildDomain()
	require.NoError(t, resources.Create(ctx, res))

	userID := uuid.New()
	for _, hour := range []int{9, 11} {
		bk := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.UserID = userID
				b.ResourceID = res.ID()
				b.StartHour = hour
			}).
			BuildDomain()
		require.NoError(t, bookings.Create(ctx, bk))
	}
	other := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, bookings.Create(ctx, other))

	views, err := q.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, view := range views {
		assert.Equal(t, userID, view.UserID)
		assert.Equal(t, res.Name(), view.ResourceName)
	}
}

func TestAvailability(t *testing.T) {
	q, bookings, resources := newBookingQueries(t)
	ctx := context.Background()

	lane := builder.NewResourceBuilder().Shared().BuildDomain()
	require.NoError(t, resources.Create(ctx, lane))

	// 3 swimmers at 09:00, a full lane at 10:00, a cancelled slot at 11:00.
	occupancy := []struct {
		hour     int
		quantity int
		cancel   bool
	}{
		{hour: 9, quantity: 3},
		{hour: 10, quantity: 8},
		{hour: 11, quantity: 8, cancel: true},
	}
	for _, o := range occupancy {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ResourceID = lane.ID()
			b.StartHour = o.hour
			b.Quantity = o.quantity
		})
		if o.cancel {
			b.Status = booking.StatusCancelled
		}
		require.NoError(t, bookings.Create(ctx, b.BuildDomain()))
	}

	view, err := q.Availability(ctx, lane.ID(), builder.BaseTime)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", view.Date)

	want := make([]queries.HourAvailability, 0, 24)
	for hour := 0; hour < 24; hour++ {
		remaining := 8
		switch hour {
		case 9:
			remaining = 5
		case 10:
			remaining = 0
		}
		want = append(want, queries.HourAvailability{Hour: hour, Remaining: remaining})
	}
	if diff := cmp.Diff(want, view.Hours); diff != "" {
		t.Errorf("availability grid mismatch (-want +got):\n%s", diff)
	}

	t.Run("unknown resource", func(t *testing.T) {
		_, err := q.Availability(ctx, uuid.New(), builder.BaseTime)
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})
}
