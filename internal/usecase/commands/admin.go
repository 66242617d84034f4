package commands

import (
	"context"
	"io"
	"log/slog"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/roomcsv"
)

type RoomInput struct {
	Number string
	Price  float64
	Type   string
}

type RoomFailure struct {
	// Line is set for CSV imports, zero for direct batches.
	Line   int
	Number string
	Reason string
}

// IngestReport records the outcome of a batch per room. Duplicates are
// expected steady-state (reloading a file with known rooms), so they are
// reported as skips rather than errors.
type IngestReport struct {
	Added   []string
	Skipped []string
	Failed  []RoomFailure
}

type AdminCommands interface {
	// AddRooms adds every valid, previously unknown room of the batch. One
	// bad or conflicting room never aborts the rest.
	AddRooms(ctx context.Context, batch []RoomInput) (*IngestReport, error)
	// ImportCSV parses roomNumber,price,roomType lines and feeds them
	// through AddRooms. Malformed lines are reported per line.
	ImportCSV(ctx context.Context, r io.Reader) (*IngestReport, error)
}

type adminCommandsImpl struct {
	catalog RoomCatalog
}

func NewAdminCommands(catalog RoomCatalog) AdminCommands {
	return &adminCommandsImpl{catalog: catalog}
}

func (a *adminCommandsImpl) AddRooms(_ context.Context, batch []RoomInput) (*IngestReport, error) {
	report := &IngestReport{}
	for _, input := range batch {
		a.addRoom(report, input, 0)
	}
	return report, nil
}

func (a *adminCommandsImpl) ImportCSV(_ context.Context, r io.Reader) (*IngestReport, error) {
	records, lineErrors, err := roomcsv.Parse(r)
	if err != nil {
		return nil, err
	}

	report := &IngestReport{}
	for _, le := range lineErrors {
		report.Failed = append(report.Failed, RoomFailure{
			Line:   le.Line,
			Reason: le.Reason,
		})
	}
	for _, rec := range records {
		a.addRoom(report, RoomInput{Number: rec.Number, Price: rec.Price, Type: rec.Type}, rec.Line)
	}
	return report, nil
}

func (a *adminCommandsImpl) addRoom(report *IngestReport, input RoomInput, line int) {
	rm, err := room.NewRoom(input.Number, input.Price, input.Type)
	if err != nil {
		report.Failed = append(report.Failed, RoomFailure{
			Line:   line,
			Number: input.Number,
			Reason: err.Error(),
		})
		return
	}

	if !a.catalog.Add(rm) {
		slog.Info("room already exists, skipping", "room", rm.Number().Value())
		report.Skipped = append(report.Skipped, rm.Number().Value())
		return
	}
	report.Added = append(report.Added, rm.Number().Value())
}
