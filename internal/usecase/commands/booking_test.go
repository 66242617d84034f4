//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	directory *memstore.CustomerDirectory
	catalog   *memstore.RoomCatalog
	ledger    *memstore.ReservationLedger
	commands  commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		directory: memstore.NewCustomerDirectory(),
		catalog:   memstore.NewRoomCatalog(),
		ledger:    memstore.NewReservationLedger(),
	}
	f.commands = commands.NewBookingCommands(f.directory, f.catalog, f.ledger)

	cust, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)
	require.True(t, f.directory.Add(cust))

	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)
	require.True(t, f.catalog.Add(rm))

	return f
}

func staySpan(t *testing.T, checkIn, checkOut string) reservation.StaySpan {
	t.Helper()
	in, err := time.Parse(reservation.DateLayout, checkIn)
	require.NoError(t, err)
	out, err := time.Parse(reservation.DateLayout, checkOut)
	require.NoError(t, err)
	span, err := reservation.NewStaySpan(in, out)
	require.NoError(t, err)
	return span
}

func TestBookingCommandsBook(t *testing.T) {
	span := staySpan(t, "2024-01-10", "2024-01-15")

	t.Run("commits for a known customer and free room", func(t *testing.T) {
		f := newBookingFixture(t)

		res, err := f.commands.Book(context.Background(), "guest@example.com", "101", span)
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", res.Customer().Email().Value())
		assert.Equal(t, "101", res.Room().Number().Value())
		assert.Len(t, f.ledger.All(), 1)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.commands.Book(context.Background(), "nobody@example.com", "101", span)
		require.ErrorIs(t, err, errs.ErrCustomerNotFound)
		assert.Empty(t, f.ledger.All())
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.commands.Book(context.Background(), "guest@example.com", "999", span)
		require.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.commands.Book(context.Background(), "guest@example.com", "101", span)
		require.NoError(t, err)

		_, err = f.commands.Book(context.Background(), "guest@example.com", "101", staySpan(t, "2024-01-14", "2024-01-18"))
		require.True(t, errs.Is(err, errs.ErrRoomUnavailable))
		assert.Len(t, f.ledger.All(), 1)
	})

	t.Run("canceled context aborts before the commit", func(t *testing.T) {
		f := newBookingFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.commands.Book(ctx, "guest@example.com", "101", span)
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, f.ledger.All())
	})
}
