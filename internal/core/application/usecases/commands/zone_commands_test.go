package commands_test

import (
	"errors"
	"strings"
	"testing"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateZoneCommand(t *testing.T) {
	cmd, err := commands.NewCreateZoneCommand("  Viña del Mar ")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Viña del Mar", cmd.Name())
	assert.NoError(t, cmd.ZoneID().Validate())

	_, err = commands.NewCreateZoneCommand("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.CreateZoneCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrCreateZoneCommandIsNotConstructed)
}

func TestCreateZoneCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateZoneCommand("Valparaíso")
	require.NoError(t, err)

	t.Run("persists the zone", func(t *testing.T) {
		r := newRepos()
		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(r.uow).Once()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.zones.On("Add", ctx, mock.MatchedBy(func(z *zone.Zone) bool {
				return z.ID().IsEqual(cmd.ZoneID()) && z.Name() == "Valparaíso"
			})).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateZoneCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))
		r.assertExpectations(t)
	})

	t.Run("duplicate name is not committed", func(t *testing.T) {
		r := newRepos()
		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(r.uow).Once()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.zones.On("Add", ctx, mock.AnythingOfType("*zone.Zone")).
				Return(errs.NewObjectAlreadyExistsError("zone", "Valparaíso")).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateZoneCommandHandler(factory)
		err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		r.uow.AssertNotCalled(t, "Commit", mock.Anything)
		r.assertExpectations(t)
	})

	t.Run("name longer than the column is rejected before the store", func(t *testing.T) {
		long, err := commands.NewCreateZoneCommand(strings.Repeat("a", zone.MaxNameLength+1))
		require.NoError(t, err)

		factory := new(MockZoneUoWFactory)
		handler := commands.NewCreateZoneCommandHandler(factory)

		require.ErrorIs(t, handler.Handle(ctx, long), errs.ErrValueIsOutOfRange)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestRenameZoneCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	z := newZone(t, "Quilpue")
	cmd, err := commands.NewRenameZoneCommand(z.ID(), "Quilpué")
	require.NoError(t, err)

	r := newRepos()
	factory := new(MockZoneUoWFactory)
	factory.On("Create").Return(r.uow).Once()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.zones.On("Get", ctx, z.ID()).Return(z, nil).Once(),
		r.zones.On("Update", ctx, z).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRenameZoneCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, "Quilpué", z.Name())
	r.assertExpectations(t)
}

func TestRenameZoneCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRenameZoneCommand(id, "Limache")
	require.NoError(t, err)

	r := newRepos()
	factory := new(MockZoneUoWFactory)
	factory.On("Create").Return(r.uow).Once()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.zones.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("zone", id)).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRenameZoneCommandHandler(factory)
	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
	r.zones.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteZoneCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	z := newZone(t, "Limache")
	cmd, err := commands.NewDeleteZoneCommand(z.ID())
	require.NoError(t, err)

	t.Run("deletes an existing zone", func(t *testing.T) {
		r := newRepos()
		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(r.uow).Once()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.zones.On("Get", ctx, z.ID()).Return(z, nil).Once(),
			r.zones.On("Delete", ctx, z.ID()).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewDeleteZoneCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))
		r.assertExpectations(t)
	})

	t.Run("delete error is returned", func(t *testing.T) {
		r := newRepos()
		factory := new(MockZoneUoWFactory)
		factory.On("Create").Return(r.uow).Once()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.zones.On("Get", ctx, z.ID()).Return(z, nil).Once(),
			r.zones.On("Delete", ctx, z.ID()).Return(errors.New("database error")).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewDeleteZoneCommandHandler(factory)
		require.EqualError(t, handler.Handle(ctx, cmd), "database error")
		r.assertExpectations(t)
	})

	t.Run("rejects a zero ID", func(t *testing.T) {
		_, err := commands.NewDeleteZoneCommand(kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
