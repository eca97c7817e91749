package commands

import (
	"context"

	"campus-booking/internal/domain/identity"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"
	"campus-booking/internal/domain/venue"
	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/queries"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestReservationParams struct {
	VenueID    uuid.UUID
	Date       string
	Slots      []string
	Purpose    string
	Attendance int32
}

type DecideParams struct {
	Decision string
	Note     *string
}

type BlockParams struct {
	VenueID uuid.UUID
	Date    string
	Slots   []string
	Reason  string
}

type ReservationCommands interface {
	Request(ctx context.Context, actor identity.Actor, p RequestReservationParams) (*queries.ReservationView, error)
	Decide(ctx context.Context, actor identity.Actor, id uuid.UUID, p DecideParams) (*queries.ReservationView, error)
	Withdraw(ctx context.Context, actor identity.Actor, id uuid.UUID) (*queries.ReservationView, error)
	Block(ctx context.Context, actor identity.Actor, p BlockParams) (*queries.ReservationView, error)
	Unblock(ctx context.Context, actor identity.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	venues shared.VenueReads
	views  queries.ReservationReadStore
	clock  clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	venues shared.VenueReads,
	views queries.ReservationReadStore,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		venues: venues,
		views:  views,
		clock:  clock,
	}
}

// Request creates a Pending reservation. The whole slot set is accepted or
// rejected atomically; there is no partial booking of the free subset.
func (c *reservationCommandsImpl) Request(
	ctx context.Context,
	actor identity.Actor,
	p RequestReservationParams,
) (*queries.ReservationView, error) {
	allowed := identity.Allows(actor, identity.ActionRequest, identity.Target{VenueID: p.VenueID})
	if !allowed {
		return nil, errs.ErrForbidden
	}

	v, date, slots, err := c.validateTarget(ctx, p.VenueID, p.Date, p.Slots)
	if err != nil {
		return nil, err
	}

	res, err := reservation.NewRequest(actor.UserID, v, date, slots, p.Purpose, p.Attendance, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if lockErr := tx.LockSchedule(ctx, v.ID(), date); lockErr != nil {
			return errs.Mark(lockErr, errs.ErrDatabaseOperationFailed)
		}

		occupied, occErr := tx.Reservations().OccupiedSlots(ctx, v.ID(), date)
		if occErr != nil {
			return errs.Mark(occErr, errs.ErrDatabaseOperationFailed)
		}
		if reservation.HasConflict(slots, occupied) {
			return errs.ErrSlotUnavailable
		}

		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, res.ID())
}

// Decide approves or rejects a pending request. Approval binds the slots, so
// it re-checks conflicts: two pending requests may coexist on the same slots,
// but only the first approval survives.
func (c *reservationCommandsImpl) Decide(
	ctx context.Context,
	actor identity.Actor,
	id uuid.UUID,
	p DecideParams,
) (*queries.ReservationView, error) {
	decision := reservation.Status(p.Decision)
	if !decision.IsDecision() {
		return nil, errs.ErrInvalidDecision
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, findErr := c.findForUpdate(ctx, tx, id)
		if findErr != nil {
			return findErr
		}

		allowed := identity.Allows(actor, identity.ActionDecide, identity.Target{
			VenueID:    res.VenueID(),
			Department: res.Department(),
		})
		if !allowed {
			return errs.ErrForbidden
		}

		if decideErr := res.Decide(decision, p.Note, c.clock.Now()); decideErr != nil {
			return errs.Mark(decideErr, errs.ErrInvalidTransition)
		}

		if decision == reservation.StatusApproved {
			if claimErr := c.claimBindingSlots(ctx, tx, res); claimErr != nil {
				return claimErr
			}
		}

		return tx.Reservations().UpdateDecision(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

func (c *reservationCommandsImpl) Withdraw(
	ctx context.Context,
	actor identity.Actor,
	id uuid.UUID,
) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, findErr := c.findForUpdate(ctx, tx, id)
		if findErr != nil {
			return findErr
		}

		allowed := identity.Allows(actor, identity.ActionWithdraw, identity.Target{
			VenueID:     res.VenueID(),
			Department:  res.Department(),
			RequesterID: res.RequesterID(),
		})
		if !allowed {
			// Requesters only ever see their own reservations, so a foreign
			// id must look absent rather than forbidden.
			return errs.ErrReservationNotFound
		}

		if wErr := res.Withdraw(c.clock.Now()); wErr != nil {
			return errs.Mark(wErr, errs.ErrInvalidTransition)
		}

		return tx.Reservations().UpdateDecision(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

// Block creates an immediately binding administrative hold, outside the
// approval flow.
func (c *reservationCommandsImpl) Block(
	ctx context.Context,
	actor identity.Actor,
	p BlockParams,
) (*queries.ReservationView, error) {
	allowed := identity.Allows(actor, identity.ActionBlock, identity.Target{VenueID: p.VenueID})
	if !allowed {
		return nil, errs.ErrForbidden
	}

	v, date, slots, err := c.validateTarget(ctx, p.VenueID, p.Date, p.Slots)
	if err != nil {
		return nil, err
	}

	res, err := reservation.NewBlock(actor.UserID, v, date, slots, p.Reason, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if lockErr := tx.LockSchedule(ctx, v.ID(), date); lockErr != nil {
			return errs.Mark(lockErr, errs.ErrDatabaseOperationFailed)
		}

		occupied, occErr := tx.Reservations().OccupiedSlots(ctx, v.ID(), date)
		if occErr != nil {
			return errs.Mark(occErr, errs.ErrDatabaseOperationFailed)
		}
		if reservation.HasConflict(slots, occupied) {
			return errs.ErrSlotUnavailable
		}

		if createErr := tx.Reservations().Create(ctx, res); createErr != nil {
			return createErr
		}
		return c.claimBindingSlots(ctx, tx, res)
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, res.ID())
}

// Unblock removes a block entirely; its slots reappear in availability.
// Decided requests are never deletable through this path.
func (c *reservationCommandsImpl) Unblock(
	ctx context.Context,
	actor identity.Actor,
	id uuid.UUID,
) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, findErr := c.findForUpdate(ctx, tx, id)
		if findErr != nil {
			return findErr
		}

		allowed := identity.Allows(actor, identity.ActionUnblock, identity.Target{
			VenueID:    res.VenueID(),
			Department: res.Department(),
		})
		if !allowed {
			return errs.ErrForbidden
		}

		// Only blocks are removable here. A request on the caretaker's venue
		// is outside their authority, so the mismatch reads as Forbidden.
		if res.Kind() != reservation.KindBlock {
			return errs.Mark(reservation.ErrNotBlock, errs.ErrForbidden)
		}

		return tx.Reservations().Delete(ctx, id)
	})
}

func (c *reservationCommandsImpl) validateTarget(
	ctx context.Context,
	venueID uuid.UUID,
	rawDate string,
	rawSlots []string,
) (*venue.Venue, reservation.Date, slot.Set, error) {
	snap, err := c.venues.ByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.Date{}, slot.Set{}, errs.ErrVenueNotFound
		}
		return nil, reservation.Date{}, slot.Set{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	v := venue.Reconstruct(snap.ID, snap.Name, snap.Department, venue.Kind(snap.Kind), snap.CreatedAt)

	date, err := reservation.NewDate(rawDate)
	if err != nil {
		return nil, reservation.Date{}, slot.Set{}, errs.Mark(err, errs.ErrValidation)
	}

	slots, err := slot.NewSet(rawSlots)
	if err != nil {
		return nil, reservation.Date{}, slot.Set{}, errs.Mark(err, errs.ErrValidation)
	}

	return v, date, slots, nil
}

func (c *reservationCommandsImpl) findForUpdate(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (c *reservationCommandsImpl) claimBindingSlots(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
) error {
	if err := tx.Reservations().ClaimSlots(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.ErrSlotUnavailable
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
