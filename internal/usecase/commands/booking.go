package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/errs"
)

type BookingCommands interface {
	// Book resolves the customer and room, then commits the reservation.
	// The availability check and the append happen atomically inside the
	// ledger, so racing bookings for an overlapping window cannot both
	// succeed.
	Book(ctx context.Context, customerEmail, roomNumber string, span reservation.StaySpan) (*reservation.Reservation, error)
}

type bookingCommandsImpl struct {
	directory CustomerDirectory
	catalog   RoomCatalog
	ledger    ReservationLedger
}

func NewBookingCommands(directory CustomerDirectory, catalog RoomCatalog, ledger ReservationLedger) BookingCommands {
	return &bookingCommandsImpl{
		directory: directory,
		catalog:   catalog,
		ledger:    ledger,
	}
}

func (b *bookingCommandsImpl) Book(ctx context.Context, customerEmail, roomNumber string, span reservation.StaySpan) (*reservation.Reservation, error) {
	// Cancellation is honored before the critical section, never mid-append.
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "booking aborted")
	}

	cust := b.directory.Find(customerEmail)
	if cust == nil {
		return nil, errs.ErrCustomerNotFound
	}

	rm := b.catalog.Find(roomNumber)
	if rm == nil {
		return nil, errs.ErrRoomNotFound
	}

	res, err := b.ledger.Reserve(cust, rm, span)
	if err != nil {
		if errors.Is(err, memstore.ErrConflict) {
			return nil, errs.Mark(err, errs.ErrRoomUnavailable)
		}
		return nil, errs.Wrap(err, "committing reservation")
	}

	slog.Info("reservation committed",
		"room", rm.Number().Value(),
		"customer", cust.Email().Value(),
		"check_in", span.CheckIn().Format(reservation.DateLayout),
		"check_out", span.CheckOut().Format(reservation.DateLayout),
	)
	return res, nil
}
