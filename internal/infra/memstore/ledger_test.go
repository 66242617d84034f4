//go:build unit

package memstore_test

import (
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T, checkIn, checkOut string) reservation.StaySpan {
	t.Helper()
	in, err := time.Parse(reservation.DateLayout, checkIn)
	require.NoError(t, err)
	out, err := time.Parse(reservation.DateLayout, checkOut)
	require.NoError(t, err)
	span, err := reservation.NewStaySpan(in, out)
	require.NoError(t, err)
	return span
}

func TestReservationLedgerReserve(t *testing.T) {
	cust, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)
	other, err := builder.NewRoomBuilder().WithNumber("202").BuildDomain()
	require.NoError(t, err)

	t.Run("commits when the room is free", func(t *testing.T) {
		ledger := memstore.NewReservationLedger()

		res, err := ledger.Reserve(cust, rm, stay(t, "2024-01-10", "2024-01-15"))
		require.NoError(t, err)
		assert.True(t, res.Room().Equal(rm))
		assert.Len(t, ledger.All(), 1)
	})

	t.Run("rejects an overlapping span on the same room", func(t *testing.T) {
		ledger := memstore.NewReservationLedger()
		_, err := ledger.Reserve(cust, rm, stay(t, "2024-01-10", "2024-01-15"))
		require.NoError(t, err)

		_, err = ledger.Reserve(cust, rm, stay(t, "2024-01-12", "2024-01-18"))
		require.ErrorIs(t, err, memstore.ErrConflict)
		assert.Len(t, ledger.All(), 1)
	})

	t.Run("rejects a span touching an existing check-out", func(t *testing.T) {
		ledger := memstore.NewReservationLedger()
		_, err := ledger.Reserve(cust, rm, stay(t, "2024-01-10", "2024-01-15"))
		require.NoError(t, err)

		_, err = ledger.Reserve(cust, rm, stay(t, "2024-01-15", "2024-01-20"))
		require.ErrorIs(t, err, memstore.ErrConflict)
	})

	t.Run("accepts a span starting the day after check-out", func(t *testing.T) {
		ledger := memstore.NewReservationLedger()
		_, err := ledger.Reserve(cust, rm, stay(t, "2024-01-10", "2024-01-15"))
		require.NoError(t, err)

		_, err = ledger.Reserve(cust, rm, stay(t, "2024-01-16", "2024-01-20"))
		require.NoError(t, err)
		assert.Len(t, ledger.All(), 2)
	})

	t.Run("overlapping span on a different room is fine", func(t *testing.T) {
		ledger := memstore.NewReservationLedger()
		_, err := ledger.Reserve(cust, rm, stay(t, "2024-01-10", "2024-01-15"))
		require.NoError(t, err)

		_, err = ledger.Reserve(cust, other, stay(t, "2024-01-10", "2024-01-15"))
		require.NoError(t, err)
	})
}

func TestReservationLedgerIsAvailable(t *testing.T) {
	cust, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	ledger := memstore.NewReservationLedger()
	assert.True(t, ledger.IsAvailable(rm, stay(t, "2024-01-10", "2024-01-15")))

	_, err = ledger.Reserve(cust, rm, stay(t, "2024-01-10", "2024-01-15"))
	require.NoError(t, err)

	assert.False(t, ledger.IsAvailable(rm, stay(t, "2024-01-14", "2024-01-16")))
	assert.True(t, ledger.IsAvailable(rm, stay(t, "2024-01-16", "2024-01-20")))
}

func TestReservationLedgerConcurrentReserve(t *testing.T) {
	cust, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	ledger := memstore.NewReservationLedger()
	span := stay(t, "2024-01-10", "2024-01-15")

	const attempts = 32

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	start := make(chan struct{})

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := ledger.Reserve(cust, rm, span); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Len(t, ledger.All(), 1)
}

func TestReservationLedgerByCustomer(t *testing.T) {
	alice, err := builder.NewCustomerBuilder().WithEmail("alice@example.com").BuildDomain()
	require.NoError(t, err)
	bob, err := builder.NewCustomerBuilder().WithEmail("bob@example.com").BuildDomain()
	require.NoError(t, err)
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	ledger := memstore.NewReservationLedger()
	_, err = ledger.Reserve(alice, rm, stay(t, "2024-01-10", "2024-01-15"))
	require.NoError(t, err)
	_, err = ledger.Reserve(alice, rm, stay(t, "2024-02-01", "2024-02-03"))
	require.NoError(t, err)

	t.Run("returns reservations in commit order", func(t *testing.T) {
		got := ledger.ByCustomer(alice)
		require.Len(t, got, 2)
		assert.Equal(t, stay(t, "2024-01-10", "2024-01-15"), got[0].Span())
		assert.Equal(t, stay(t, "2024-02-01", "2024-02-03"), got[1].Span())
	})

	t.Run("customer without reservations gets an empty slice", func(t *testing.T) {
		got := ledger.ByCustomer(bob)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
