package commands_test

import (
	"testing"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRequesterCommand(t *testing.T) {
	z := newZone(t, "Valparaíso")

	cmd, err := commands.NewCreateRequesterCommand(validProfile(z))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.NoError(t, cmd.RequesterID().Validate())
	assert.Equal(t, "Clínica Veterinaria Puerto", cmd.Profile().Name)

	_, err = commands.NewCreateRequesterCommand(requester.Profile{Name: "Sin zona"})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateRequesterCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	z := newZone(t, "Valparaíso")

	t.Run("persists a requester with unknown email", func(t *testing.T) {
		profile := validProfile(z)
		profile.Email = kernel.Unknown[string]()
		cmd, err := commands.NewCreateRequesterCommand(profile)
		require.NoError(t, err)

		r := newRepos()
		factory := new(MockRequesterUoWFactory)
		factory.On("Create").Return(r.uow).Once()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.zones.On("Get", ctx, z.ID()).Return(z, nil).Once(),
			r.requesters.On("Add", ctx, mock.MatchedBy(func(added *requester.Requester) bool {
				return added.ID().IsEqual(cmd.RequesterID()) && added.Email().IsUnknown()
			})).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateRequesterCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))
		r.assertExpectations(t)
	})

	t.Run("email absent and not flagged unknown is rejected before the store", func(t *testing.T) {
		profile := validProfile(z)
		profile.Email = kernel.Knowable[string]{}
		cmd, err := commands.NewCreateRequesterCommand(profile)
		require.NoError(t, err)

		factory := new(MockRequesterUoWFactory)
		handler := commands.NewCreateRequesterCommandHandler(factory)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvariantViolated)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("unknown zone", func(t *testing.T) {
		cmd, err := commands.NewCreateRequesterCommand(validProfile(z))
		require.NoError(t, err)

		r := newRepos()
		factory := new(MockRequesterUoWFactory)
		factory.On("Create").Return(r.uow).Once()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.zones.On("Get", ctx, z.ID()).Return(nil, errs.NewObjectNotFoundError("zone", z.ID())).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateRequesterCommandHandler(factory)
		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
		r.requesters.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestUpdateRequesterCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	valparaiso := newZone(t, "Valparaíso")
	vina := newZone(t, "Viña del Mar")
	existing := newRequester(t, valparaiso)

	profile := validProfile(vina)
	profile.Address = kernel.Known("5 Norte 300")
	cmd, err := commands.NewUpdateRequesterCommand(existing.ID(), profile)
	require.NoError(t, err)

	r := newRepos()
	factory := new(MockRequesterUoWFactory)
	factory.On("Create").Return(r.uow).Once()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.requesters.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		r.zones.On("Get", ctx, vina.ID()).Return(vina, nil).Once(),
		r.requesters.On("Update", ctx, existing).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateRequesterCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, existing.ZoneID().IsEqual(vina.ID()))
	address, _ := existing.Address().Value()
	assert.Equal(t, "5 Norte 300", address)
	r.assertExpectations(t)
}

func TestUpdateRequesterCommandHandler_Handle_InvalidProfileKeepsRequester(t *testing.T) {
	ctx := t.Context()
	z := newZone(t, "Valparaíso")
	existing := newRequester(t, z)

	profile := validProfile(z)
	profile.Phone = "123"
	cmd, err := commands.NewUpdateRequesterCommand(existing.ID(), profile)
	require.NoError(t, err)

	r := newRepos()
	factory := new(MockRequesterUoWFactory)
	factory.On("Create").Return(r.uow).Once()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.requesters.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		r.zones.On("Get", ctx, z.ID()).Return(z, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateRequesterCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, "+56912345678", existing.Phone())
	r.requesters.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteRequesterCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	existing := newRequester(t, newZone(t, "Valparaíso"))
	cmd, err := commands.NewDeleteRequesterCommand(existing.ID())
	require.NoError(t, err)

	r := newRepos()
	factory := new(MockRequesterUoWFactory)
	factory.On("Create").Return(r.uow).Once()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.requesters.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		r.requesters.On("Delete", ctx, existing.ID()).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteRequesterCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	r.assertExpectations(t)

	var zero commands.DeleteRequesterCommand
	require.ErrorIs(t, handler.Handle(ctx, zero), commands.ErrDeleteRequesterCommandIsNotConstructed)
}
