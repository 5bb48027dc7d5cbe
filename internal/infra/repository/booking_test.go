//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/internal/infra"
	"arenaos/internal/infra/repository"
	"arenaos/internal/infra/store"
	"arenaos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository(store.New())

	original := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Quantity = 2
		b.TotalAmountCents = 10000
	}).BuildDomain()

	require.NoError(t, repo.Create(ctx, original))

	loaded, err := repo.FindByID(ctx, original.ID())
	require.NoError(t, err)

	assert.Equal(t, original.ID(), loaded.ID())
	assert.Equal(t, original.ResourceID(), loaded.ResourceID())
	assert.Equal(t, original.Slot(), loaded.Slot())
	assert.Equal(t, original.Quantity(), loaded.Quantity())
	assert.Equal(t, original.Status(), loaded.Status())
	assert.Equal(t, original.TotalAmount(), loaded.TotalAmount())
	assert.Equal(t, original.EntryPass(), loaded.EntryPass())
	assert.Equal(t, original.BatchRef(), loaded.BatchRef())
	assert.Nil(t, loaded.CheckInAt())
}

func TestBookingCreateConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository(store.New())
	bk := builder.NewBookingBuilder().BuildDomain()

	require.NoError(t, repo.Create(ctx, bk))

	err := repo.Create(ctx, bk)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
}

func TestBookingSavePersistsLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository(store.New())

	bk := builder.NewBookingBuilder().Confirmed().BuildDomain()
	require.NoError(t, repo.Create(ctx, bk))

	at := builder.BaseTime.Add(2 * time.Hour)
	require.NoError(t, bk.CheckIn(at))
	require.NoError(t, repo.Save(ctx, bk))

	loaded, err := repo.FindByID(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCheckedIn, loaded.Status())
	require.NotNil(t, loaded.CheckInAt())
	assert.Equal(t, at, loaded.CheckInAt().UTC())

	t.Run("saving an unknown booking is not found", func(t *testing.T) {
		ghost := builder.NewBookingBuilder().BuildDomain()
		err := repo.Save(ctx, ghost)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingListBySlot(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository(store.New())
	resourceID := uuid.New()

	at10 := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = resourceID
		b.StartHour = 10
	}).BuildDomain()
	at11 := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = resourceID
		b.StartHour = 11
	}).BuildDomain()
	otherResource := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.StartHour = 10
	}).BuildDomain()

	for _, bk := range []*booking.Booking{at10, at11, otherResource} {
		require.NoError(t, repo.Create(ctx, bk))
	}

	got, err := repo.ListBySlot(ctx, resourceID, at10.Slot())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, at10.ID(), got[0].ID())
}

func TestBookingFindByIDNotFound(t *testing.T) {
	repo := repository.NewBookingRepository(store.New())

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
