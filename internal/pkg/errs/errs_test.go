//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndIs(t *testing.T) {
	cause := errors.New("email regex rejected the input")

	t.Run("mark is visible through Is", func(t *testing.T) {
		marked := errs.Mark(cause, errs.ErrDomainValidation)

		assert.True(t, errs.Is(marked, errs.ErrDomainValidation))
		// the cause stays on the unwrap chain
		assert.True(t, errs.Is(marked, cause))
	})

	t.Run("mark lives outside the unwrap chain", func(t *testing.T) {
		// Marks are not wrapping: the standard library cannot see them.
		// Every sentinel check therefore has to go through errs.Is.
		marked := errs.Mark(cause, errs.ErrDomainValidation)

		assert.False(t, errors.Is(marked, errs.ErrDomainValidation))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrRoomUnavailable)
		require.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})

	t.Run("plain sentinels match without a mark", func(t *testing.T) {
		assert.True(t, errs.Is(errs.ErrCustomerNotFound, errs.ErrCustomerNotFound))
		assert.False(t, errs.Is(errs.ErrCustomerNotFound, errs.ErrRoomNotFound))
	})
}

func TestWrapKeepsUnwrapChain(t *testing.T) {
	cause := errors.New("boom")
	wrapped := errs.Wrap(cause, "while booking")

	require.ErrorIs(t, wrapped, cause)
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}
