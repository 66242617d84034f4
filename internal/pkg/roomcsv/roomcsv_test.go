//go:build unit

package roomcsv_test

import (
	"strings"
	"testing"

	"hotel-booking/internal/pkg/roomcsv"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("well-formed file", func(t *testing.T) {
		input := "101,150.0,double\n102, 0, single\n"

		records, failures, err := roomcsv.Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Empty(t, failures)

		want := []roomcsv.Record{
			{Line: 1, Number: "101", Price: 150, Type: "double"},
			{Line: 2, Number: "102", Price: 0, Type: "single"},
		}
		if diff := cmp.Diff(want, records); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed lines are skipped, not fatal", func(t *testing.T) {
		input := strings.Join([]string{
			"101,150.0,double",
			"102",
			"103,of course,single",
			"104,80.0,single",
		}, "\n")

		records, failures, err := roomcsv.Parse(strings.NewReader(input))
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "101", records[0].Number)
		assert.Equal(t, "104", records[1].Number)

		require.Len(t, failures, 2)
		assert.Equal(t, 2, failures[0].Line)
		assert.Equal(t, 3, failures[1].Line)
		assert.Contains(t, failures[1].Reason, "invalid price")
	})

	t.Run("empty input", func(t *testing.T) {
		records, failures, err := roomcsv.Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Empty(t, failures)
	})
}
