package inmemory

import (
	"context"
	"errors"

	"vetpickup/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store exclusively between Begin and Commit or
// Rollback. Repositories obtained without Begin read and write directly.
type UnitOfWork struct {
	store    *Store
	active   bool
	snapshot tables
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.txMu.Lock()
	uow.snapshot = uow.store.snapshot()
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.restore(uow.snapshot)
	uow.finish()
	return nil
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.snapshot = tables{}
	uow.store.txMu.Unlock()
}

func (uow *UnitOfWork) ZoneRepository() ports.ZoneRepository {
	return NewZoneRepository(uow.store)
}

func (uow *UnitOfWork) RequesterRepository() ports.RequesterRepository {
	return NewRequesterRepository(uow.store)
}

func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return NewCourierRepository(uow.store)
}

func (uow *UnitOfWork) RequestRepository() ports.RequestRepository {
	return NewRequestRepository(uow.store)
}
