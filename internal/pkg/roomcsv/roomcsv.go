// Package roomcsv parses the line-oriented room inventory format:
// roomNumber,price,roomType, one room per line, roomType case-insensitive.
package roomcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel-booking/internal/pkg/errs"
)

type Record struct {
	Line   int
	Number string
	Price  float64
	Type   string
}

type LineError struct {
	Line   int
	Reason string
}

// Parse reads every line of the input. Malformed lines are reported and
// skipped; they never abort the rest of the file. The returned error is
// reserved for I/O failures on the reader itself.
func Parse(r io.Reader) ([]Record, []LineError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		records  []Record
		failures []LineError
		line     int
	)

	for {
		line++
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if parseErr, ok := err.(*csv.ParseError); ok {
				failures = append(failures, LineError{Line: parseErr.Line, Reason: parseErr.Err.Error()})
				continue
			}
			return nil, nil, errs.Wrap(err, "reading room csv")
		}

		if len(fields) < 3 {
			failures = append(failures, LineError{
				Line:   line,
				Reason: "each line must have 3 values separated by commas: roomNumber, price, roomType",
			})
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			failures = append(failures, LineError{
				Line:   line,
				Reason: fmt.Sprintf("invalid price %q", fields[1]),
			})
			continue
		}

		records = append(records, Record{
			Line:   line,
			Number: strings.TrimSpace(fields[0]),
			Price:  price,
			Type:   strings.TrimSpace(fields[2]),
		})
	}

	return records, failures, nil
}
