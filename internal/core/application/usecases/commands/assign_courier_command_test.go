package commands_test

import (
	"testing"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignCourierCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewAssignCourierCommand(id)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.RequestID().IsEqual(id))
}

func TestNewAssignCourierCommand_InvalidID(t *testing.T) {
	_, err := commands.NewAssignCourierCommand(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignCourierCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AssignCourierCommand

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrAssignCourierCommandIsNotConstructed)
}
