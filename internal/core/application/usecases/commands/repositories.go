// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work and commits only
// when all writes succeeded.
package commands

import (
	"context"

	"vetpickup/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	RequesterRepoFactory interface {
		RequesterRepository() ports.RequesterRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// ZoneUoW manages transactions for zone-only operations.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// RequesterUoW manages requester writes. Zones are read to check the
	// requester's zone exists.
	RequesterUoW interface {
		TxManager
		ZoneRepoFactory
		RequesterRepoFactory
	}

	RequesterUoWFactory interface {
		Create() RequesterUoW
	}

	// CourierUoW manages courier writes. Zones are read to check every
	// preferred zone exists.
	CourierUoW interface {
		TxManager
		ZoneRepoFactory
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW spans every aggregate. Request commands need it because a request
	// is saved together with a fresh look at its requester, zone and couriers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   req, err := uow.RequestRepository().Get(ctx, id)
	//   // ... mutate and save
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ZoneRepoFactory
		RequesterRepoFactory
		CourierRepoFactory
		RequestRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
