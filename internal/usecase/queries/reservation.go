package queries

import (
	"context"

	"campus-booking/internal/domain/identity"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"
	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ReservationListItem, error)
	ListByDepartment(ctx context.Context, department string) ([]*ReservationListItem, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID, from, to *reservation.Date) ([]*ReservationListItem, error)
	OccupiedSlots(ctx context.Context, venueID uuid.UUID, date reservation.Date) (slot.Set, error)
}

type ReservationQueries interface {
	// AvailableSlots returns the free subset of the catalog for a venue and
	// date, in catalog order. Open to any authenticated member.
	AvailableSlots(ctx context.Context, venueID uuid.UUID, date string) ([]slot.Slot, error)
	GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, actor identity.Actor) ([]*ReservationListItem, error)
	ListForDepartment(ctx context.Context, actor identity.Actor, department string) ([]*ReservationListItem, error)
	ListForVenue(ctx context.Context, actor identity.Actor, venueID uuid.UUID, from, to string) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	venues shared.VenueReads
}

func NewReservationQueries(store ReservationReadStore, venues shared.VenueReads) ReservationQueries {
	return &reservationQueriesImpl{store: store, venues: venues}
}

func (q *reservationQueriesImpl) AvailableSlots(ctx context.Context, venueID uuid.UUID, date string) ([]slot.Slot, error) {
	if _, err := q.findVenue(ctx, venueID); err != nil {
		return nil, err
	}

	day, err := reservation.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	occupied, err := q.store.OccupiedSlots(ctx, venueID, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return reservation.AvailableSlots(occupied), nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Absent and not-visible are indistinguishable to the caller.
	visible := identity.Allows(actor, identity.ActionViewReservation, identity.Target{
		VenueID:     view.VenueID,
		Department:  view.Department,
		RequesterID: view.RequesterID,
	})
	if !visible {
		return nil, errs.ErrReservationNotFound
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor identity.Actor) ([]*ReservationListItem, error) {
	items, err := q.store.ListByRequester(ctx, actor.UserID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) ListForDepartment(ctx context.Context, actor identity.Actor, department string) ([]*ReservationListItem, error) {
	allowed := identity.Allows(actor, identity.ActionListDepartment, identity.Target{Department: department})
	if !allowed {
		return nil, errs.ErrForbidden
	}

	items, err := q.store.ListByDepartment(ctx, department)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) ListForVenue(ctx context.Context, actor identity.Actor, venueID uuid.UUID, from, to string) ([]*ReservationListItem, error) {
	v, err := q.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	allowed := identity.Allows(actor, identity.ActionViewSchedule, identity.Target{
		VenueID:    v.ID,
		Department: v.Department,
	})
	if !allowed {
		return nil, errs.ErrForbidden
	}

	fromDate, err := parseOptionalDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseOptionalDate(to)
	if err != nil {
		return nil, err
	}

	items, err := q.store.ListByVenue(ctx, venueID, fromDate, toDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) findVenue(ctx context.Context, venueID uuid.UUID) (*shared.VenueSnapshot, error) {
	v, err := q.venues.ByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVenueNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}

func parseOptionalDate(value string) (*reservation.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := reservation.NewDate(value)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return &d, nil
}
