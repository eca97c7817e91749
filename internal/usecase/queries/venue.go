package queries

import (
	"context"

	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type VenueQueries interface {
	List(ctx context.Context) ([]*VenueView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
}

type venueQueriesImpl struct {
	venues shared.VenueReads
}

func NewVenueQueries(venues shared.VenueReads) VenueQueries {
	return &venueQueriesImpl{venues: venues}
}

func (q *venueQueriesImpl) List(ctx context.Context) ([]*VenueView, error) {
	snaps, err := q.venues.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*VenueView, len(snaps))
	for i, s := range snaps {
		views[i] = venueViewFromSnapshot(s)
	}
	return views, nil
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	s, err := q.venues.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVenueNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return venueViewFromSnapshot(s), nil
}

func venueViewFromSnapshot(s *shared.VenueSnapshot) *VenueView {
	return &VenueView{
		ID:         s.ID,
		Name:       s.Name,
		Department: s.Department,
		Kind:       s.Kind,
		CreatedAt:  s.CreatedAt,
	}
}
