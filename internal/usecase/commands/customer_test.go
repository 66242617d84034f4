//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCommandsCreate(t *testing.T) {
	t.Run("registers a new customer", func(t *testing.T) {
		directory := memstore.NewCustomerDirectory()
		cmds := commands.NewCustomerCommands(directory)

		cust, err := cmds.Create(context.Background(), "grace@example.com", "Grace", "Hopper")
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", cust.FullName())
		assert.NotNil(t, directory.Find("grace@example.com"))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		directory := memstore.NewCustomerDirectory()
		cmds := commands.NewCustomerCommands(directory)

		_, err := cmds.Create(context.Background(), "grace@example.com", "Grace", "Hopper")
		require.NoError(t, err)

		_, err = cmds.Create(context.Background(), "grace@example.com", "Other", "Person")
		require.ErrorIs(t, err, errs.ErrDuplicateCustomerEmail)
		assert.Equal(t, "Grace", directory.Find("grace@example.com").FirstName())
	})

	t.Run("invalid input is marked as validation failure", func(t *testing.T) {
		directory := memstore.NewCustomerDirectory()
		cmds := commands.NewCustomerCommands(directory)

		_, err := cmds.Create(context.Background(), "not-an-email", "Grace", "Hopper")
		require.True(t, errs.Is(err, errs.ErrDomainValidation))

		_, err = cmds.Create(context.Background(), "grace@example.com", "", "Hopper")
		require.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Nil(t, directory.Find("grace@example.com"))
	})
}
