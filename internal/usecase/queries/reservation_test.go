//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"
	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/queries"
	"campus-booking/internal/usecase/shared"
	"campus-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireMarked asserts that sentinel is attached to err. Sentinels travel as
// marks, which the stdlib matching behind require.ErrorIs cannot follow.
func requireMarked(t *testing.T, err error, sentinel error, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	if !errs.Is(err, sentinel) {
		require.Fail(t, fmt.Sprintf("expected %q in error chain, got: %v", sentinel, err), msgAndArgs...)
	}
}

type stubReadStore struct {
	views    map[uuid.UUID]*queries.ReservationView
	items    []*queries.ReservationListItem
	occupied slot.Set

	lastRequesterID uuid.UUID
	lastDepartment  string
	lastFrom        *reservation.Date
	lastTo          *reservation.Date
}

func (s *stubReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	v, ok := s.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (s *stubReadStore) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]*queries.ReservationListItem, error) {
	s.lastRequesterID = requesterID
	return s.items, nil
}

func (s *stubReadStore) ListByDepartment(_ context.Context, department string) ([]*queries.ReservationListItem, error) {
	s.lastDepartment = department
	return s.items, nil
}

func (s *stubReadStore) ListByVenue(_ context.Context, _ uuid.UUID, from, to *reservation.Date) ([]*queries.ReservationListItem, error) {
	s.lastFrom = from
	s.lastTo = to
	return s.items, nil
}

func (s *stubReadStore) OccupiedSlots(context.Context, uuid.UUID, reservation.Date) (slot.Set, error) {
	return s.occupied, nil
}

type stubVenueReads struct {
	venues map[uuid.UUID]*shared.VenueSnapshot
}

func (s *stubVenueReads) ByID(_ context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (s *stubVenueReads) List(context.Context) ([]*shared.VenueSnapshot, error) {
	out := make([]*shared.VenueSnapshot, 0, len(s.venues))
	for _, v := range s.venues {
		out = append(out, v)
	}
	return out, nil
}

type queryFixture struct {
	qrys  queries.ReservationQueries
	store *stubReadStore
	venue *builder.VenueBuilder
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()

	v := builder.NewVenueBuilder().WithDepartment("Physics")
	store := &stubReadStore{views: make(map[uuid.UUID]*queries.ReservationView)}
	venues := &stubVenueReads{venues: map[uuid.UUID]*shared.VenueSnapshot{
		v.ID: v.BuildSnapshot(),
	}}

	return &queryFixture{
		qrys:  queries.NewReservationQueries(store, venues),
		store: store,
		venue: v,
	}
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("free day returns the whole catalog in order", func(t *testing.T) {
		f := newQueryFixture(t)

		available, err := f.qrys.AvailableSlots(ctx, f.venue.ID, "2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, slot.Catalog(), available)
	})

	t.Run("occupied slots are excluded", func(t *testing.T) {
		f := newQueryFixture(t)
		occupied, err := slot.NewSet([]string{"09:00-10:00", "15:00-16:00"})
		require.NoError(t, err)
		f.store.occupied = occupied

		available, err := f.qrys.AvailableSlots(ctx, f.venue.ID, "2026-09-15")
		require.NoError(t, err)

		want := []slot.Slot{"10:00-11:00", "11:00-12:00", "12:00-13:00", "13:00-14:00", "14:00-15:00"}
		if diff := cmp.Diff(want, available); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newQueryFixture(t)

		_, err := f.qrys.AvailableSlots(ctx, uuid.New(), "2026-09-15")
		requireMarked(t, err, errs.ErrVenueNotFound)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newQueryFixture(t)

		_, err := f.qrys.AvailableSlots(ctx, f.venue.ID, "Sept 15")
		requireMarked(t, err, errs.ErrValidation)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	seedView := func(f *queryFixture) *queries.ReservationView {
		view := builder.NewReservationBuilder().WithVenue(f.venue).BuildView()
		f.store.views[view.ID] = view
		return view
	}

	t.Run("visible to requester, owning head and assigned caretaker", func(t *testing.T) {
		f := newQueryFixture(t)
		view := seedView(f)

		owner := builder.NewActorBuilder().WithUserID(view.RequesterID).AsStudent().Build()
		head := builder.NewActorBuilder().AsDepartmentHead("Physics").Build()
		caretaker := builder.NewActorBuilder().AsCaretakerOf(f.venue.ID).Build()

		got, err := f.qrys.GetByID(ctx, owner, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)

		_, err = f.qrys.GetByID(ctx, head, view.ID)
		require.NoError(t, err)

		_, err = f.qrys.GetByID(ctx, caretaker, view.ID)
		require.NoError(t, err)
	})

	t.Run("not-visible and absent are indistinguishable", func(t *testing.T) {
		f := newQueryFixture(t)
		view := seedView(f)

		stranger := builder.NewActorBuilder().AsStudent().Build()
		foreignHead := builder.NewActorBuilder().AsDepartmentHead("Chemistry").Build()
		otherCaretaker := builder.NewActorBuilder().AsCaretakerOf(uuid.New()).Build()

		for _, actor := range []struct {
			name string
			a    func() error
		}{
			{"stranger", func() error { _, err := f.qrys.GetByID(ctx, stranger, view.ID); return err }},
			{"foreign head", func() error { _, err := f.qrys.GetByID(ctx, foreignHead, view.ID); return err }},
			{"other caretaker", func() error { _, err := f.qrys.GetByID(ctx, otherCaretaker, view.ID); return err }},
			{"missing id", func() error { _, err := f.qrys.GetByID(ctx, stranger, uuid.New()); return err }},
		} {
			requireMarked(t, actor.a(), errs.ErrReservationNotFound, actor.name)
		}
	})
}

func TestListMine(t *testing.T) {
	f := newQueryFixture(t)
	f.store.items = []*queries.ReservationListItem{builder.NewReservationBuilder().BuildListItem()}
	actor := builder.NewActorBuilder().AsStudent().Build()

	items, err := f.qrys.ListMine(context.Background(), actor)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, actor.UserID, f.store.lastRequesterID, "lists only the caller's reservations")
}

func TestListForDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("head lists their own department", func(t *testing.T) {
		f := newQueryFixture(t)
		head := builder.NewActorBuilder().AsDepartmentHead("Physics").Build()

		_, err := f.qrys.ListForDepartment(ctx, head, "Physics")
		require.NoError(t, err)
		assert.Equal(t, "Physics", f.store.lastDepartment)
	})

	t.Run("other roles and foreign heads are forbidden", func(t *testing.T) {
		f := newQueryFixture(t)
		student := builder.NewActorBuilder().AsStudent().Build()
		foreignHead := builder.NewActorBuilder().AsDepartmentHead("Chemistry").Build()

		_, err := f.qrys.ListForDepartment(ctx, student, "Physics")
		requireMarked(t, err, errs.ErrForbidden)

		_, err = f.qrys.ListForDepartment(ctx, foreignHead, "Physics")
		requireMarked(t, err, errs.ErrForbidden)
	})
}

func TestListForVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("owning head with optional date bounds", func(t *testing.T) {
		f := newQueryFixture(t)
		head := builder.NewActorBuilder().AsDepartmentHead("Physics").Build()

		_, err := f.qrys.ListForVenue(ctx, head, f.venue.ID, "2026-09-01", "2026-09-30")
		require.NoError(t, err)
		require.NotNil(t, f.store.lastFrom)
		require.NotNil(t, f.store.lastTo)
		assert.Equal(t, "2026-09-01", f.store.lastFrom.String())
		assert.Equal(t, "2026-09-30", f.store.lastTo.String())
	})

	t.Run("bounds are optional", func(t *testing.T) {
		f := newQueryFixture(t)
		caretaker := builder.NewActorBuilder().AsCaretakerOf(f.venue.ID).Build()

		_, err := f.qrys.ListForVenue(ctx, caretaker, f.venue.ID, "", "")
		require.NoError(t, err)
		assert.Nil(t, f.store.lastFrom)
		assert.Nil(t, f.store.lastTo)
	})

	t.Run("malformed bound", func(t *testing.T) {
		f := newQueryFixture(t)
		head := builder.NewActorBuilder().AsDepartmentHead("Physics").Build()

		_, err := f.qrys.ListForVenue(ctx, head, f.venue.ID, "soon", "")
		requireMarked(t, err, errs.ErrValidation)
	})

	t.Run("students cannot read venue schedules", func(t *testing.T) {
		f := newQueryFixture(t)
		student := builder.NewActorBuilder().AsStudent().Build()

		_, err := f.qrys.ListForVenue(ctx, student, f.venue.ID, "", "")
		requireMarked(t, err, errs.ErrForbidden)
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newQueryFixture(t)
		head := builder.NewActorBuilder().AsDepartmentHead("Physics").Build()

		_, err := f.qrys.ListForVenue(ctx, head, uuid.New(), "", "")
		requireMarked(t, err, errs.ErrVenueNotFound)
	})
}
