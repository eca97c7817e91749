//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campus-booking/internal/domain/identity"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"
	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"
	"campus-booking/internal/usecase/shared"
	"campus-booking/tests/common/builder"

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

// ------------------------------------------------------------
// In-memory store fakes. The fake unit of work snapshots state
// before running the transaction function and restores it when
// the function errors, matching rollback semantics.
// ------------------------------------------------------------

type fakeStore struct {
	reservations map[uuid.UUID]*reservation.Reservation
	claims       map[string]uuid.UUID // venue@date@slot -> reservation id
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		claims:       make(map[string]uuid.UUID),
	}
}

func claimKey(venueID uuid.UUID, date reservation.Date, s slot.Slot) string {
	return venueID.String() + "@" + date.String() + "@" + s.String()
}

func (f *fakeStore) snapshot() *fakeStore {
	snap := newFakeStore()
	for id, res := range f.reservations {
		snap.reservations[id] = cloneReservation(res)
	}
	for k, v := range f.claims {
		snap.claims[k] = v
	}
	return snap
}

func (f *fakeStore) restore(snap *fakeStore) {
	f.reservations = snap.reservations
	f.claims = snap.claims
}

func cloneReservation(res *reservation.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(
		res.ID(), res.VenueID(), res.RequesterID(),
		res.Department(), res.Date(), res.Slots(),
		res.Kind(), res.Status(), res.Purpose(), res.Attendance(),
		res.OutcomeNote(), res.BlockReason(),
		res.CreatedAt(), res.UpdatedAt(),
	)
}

type fakeRepo struct {
	store *fakeStore
}

func (r *fakeRepo) Create(_ context.Context, res *reservation.Reservation) error {
	r.store.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r *fakeRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return cloneReservation(res), nil
}

func (r *fakeRepo) UpdateDecision(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.store.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.store.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.store.reservations, id)
	for k, owner := range r.store.claims {
		if owner == id {
			delete(r.store.claims, k)
		}
	}
	return nil
}

func (r *fakeRepo) OccupiedSlots(_ context.Context, venueID uuid.UUID, date reservation.Date) (slot.Set, error) {
	var occupied []slot.Slot
	for _, s := range slot.Catalog() {
		if _, taken := r.store.claims[claimKey(venueID, date, s)]; taken {
			occupied = append(occupied, s)
		}
	}
	return slot.CollectSet(occupied), nil
}

func (r *fakeRepo) ClaimSlots(_ context.Context, res *reservation.Reservation) error {
	for _, s := range res.Slots().Slots() {
		if _, taken := r.store.claims[claimKey(res.VenueID(), res.Date(), s)]; taken {
			return infra.WrapRepoErr("slot already claimed", nil, infra.KindConflict)
		}
	}
	for _, s := range res.Slots().Slots() {
		r.store.claims[claimKey(res.VenueID(), res.Date(), s)] = res.ID()
	}
	return nil
}

type lockCall struct {
	venueID uuid.UUID
	date    string
}

type fakeTx struct {
	repo  *fakeRepo
	locks *[]lockCall
}

func (t *fakeTx) LockSchedule(_ context.Context, venueID uuid.UUID, date reservation.Date) error {
	*t.locks = append(*t.locks, lockCall{venueID: venueID, date: date.String()})
	return nil
}

func (t *fakeTx) Reservations() shared.ReservationRepository {
	return t.repo
}

type fakeUoW struct {
	store *fakeStore
	locks []lockCall
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snap := u.store.snapshot()
	tx := &fakeTx{repo: &fakeRepo{store: u.store}, locks: &u.locks}
	if err := fn(ctx, tx); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

type fakeVenueReads struct {
	venues map[uuid.UUID]*shared.VenueSnapshot
}

func (f *fakeVenueReads) ByID(_ context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (f *fakeVenueReads) List(_ context.Context) ([]*shared.VenueSnapshot, error) {
	out := make([]*shared.VenueSnapshot, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, v)
	}
	return out, nil
}

// fakeReadStore derives views straight from the write-side store so readBack
// reflects exactly what the command persisted.
type fakeReadStore struct {
	store  *fakeStore
	venues *fakeVenueReads
}

func (f *fakeReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	res, ok := f.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	venueName := ""
	if v, found := f.venues.venues[res.VenueID()]; found {
		venueName = v.Name
	}
	return &queries.ReservationView{
		ID:          res.ID(),
		VenueID:     res.VenueID(),
		VenueName:   venueName,
		RequesterID: res.RequesterID(),
		Department:  res.Department(),
		Date:        res.Date().String(),
		Slots:       res.Slots().Strings(),
		Kind:        res.Kind().String(),
		Status:      res.Status().String(),
		Purpose:     res.Purpose(),
		Attendance:  res.Attendance(),
		OutcomeNote: res.OutcomeNote(),
		BlockReason: res.BlockReason(),
		CreatedAt:   res.CreatedAt(),
		UpdatedAt:   res.UpdatedAt(),
	}, nil
}

func (f *fakeReadStore) ListByRequester(context.Context, uuid.UUID) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

func (f *fakeReadStore) ListByDepartment(context.Context, string) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

func (f *fakeReadStore) ListByVenue(context.Context, uuid.UUID, *reservation.Date, *reservation.Date) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

func (f *fakeReadStore) OccupiedSlots(ctx context.Context, venueID uuid.UUID, date reservation.Date) (slot.Set, error) {
	return (&fakeRepo{store: f.store}).OccupiedSlots(ctx, venueID, date)
}

// ------------------------------------------------------------
// Test fixture
// ------------------------------------------------------------

type fixture struct {
	cmds  commands.ReservationCommands
	uow   *fakeUoW
	store *fakeStore
	reads *fakeReadStore

	venue     *builder.VenueBuilder
	student   identity.Actor
	head      identity.Actor
	caretaker identity.Actor
	clock     *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newFakeStore()
	uow := &fakeUoW{store: store}

	v := builder.NewVenueBuilder().WithDepartment("Physics")
	venues := &fakeVenueReads{venues: map[uuid.UUID]*shared.VenueSnapshot{
		v.ID: v.BuildSnapshot(),
	}}
	reads := &fakeReadStore{store: store, venues: venues}
	mock := clock.NewMockClock(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	return &fixture{
		cmds:      commands.NewReservationCommands(uow, venues, reads, mock),
		uow:       uow,
		store:     store,
		reads:     reads,
		venue:     v,
		student:   builder.NewActorBuilder().AsStudent().Build(),
		head:      builder.NewActorBuilder().AsDepartmentHead("Physics").Build(),
		caretaker: builder.NewActorBuilder().AsCaretakerOf(v.ID).Build(),
		clock:     mock,
	}
}

func (f *fixture) requestParams(slots ...string) commands.RequestReservationParams {
	if len(slots) == 0 {
		slots = []string{"10:00-11:00", "11:00-12:00"}
	}
	return commands.RequestReservationParams{
		VenueID:    f.venue.ID,
		Date:       "2026-09-15",
		Slots:      slots,
		Purpose:    "Seminar rehearsal",
		Attendance: 12,
	}
}

func (f *fixture) blockParams(slots ...string) commands.BlockParams {
	if len(slots) == 0 {
		slots = []string{"13:00-14:00"}
	}
	return commands.BlockParams{
		VenueID: f.venue.ID,
		Date:    "2026-09-15",
		Slots:   slots,
		Reason:  "floor maintenance",
	}
}

func (f *fixture) occupiedOn(t *testing.T, date string) []string {
	t.Helper()
	d, err := reservation.NewDate(date)
	require.NoError(t, err)
	occupied, err := f.reads.OccupiedSlots(context.Background(), f.venue.ID, d)
	require.NoError(t, err)
	return occupied.Strings()
}

// ------------------------------------------------------------
// Request
// ------------------------------------------------------------

func TestRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending request that binds nothing", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.cmds.Request(ctx, f.student, f.requestParams())
		require.NoError(t, err)

		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, "request", view.Kind)
		assert.Equal(t, f.student.UserID, view.RequesterID)
		assert.Equal(t, "Physics", view.Department)
		assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, view.Slots)

		assert.Empty(t, f.occupiedOn(t, "2026-09-15"), "pending must not occupy slots")
		require.Len(t, f.uow.locks, 1)
		assert.Equal(t, lockCall{venueID: f.venue.ID, date: "2026-09-15"}, f.uow.locks[0])
	})

	t.Run("faculty may request too", func(t *testing.T) {
		f := newFixture(t)
		faculty := builder.NewActorBuilder().AsFaculty().Build()

		_, err := f.cmds.Request(ctx, faculty, f.requestParams())
		require.NoError(t, err)
	})

	t.Run("non-requesting roles are forbidden", func(t *testing.T) {
		f := newFixture(t)

		for _, actor := range []identity.Actor{f.head, f.caretaker} {
			_, err := f.cmds.Request(ctx, actor, f.requestParams())
			requireMarked(t, err, errs.ErrForbidden, "role %s", actor.Role)
		}
		assert.Empty(t, f.store.reservations)
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newFixture(t)
		p := f.requestParams()
		p.VenueID = uuid.New()

		_, err := f.cmds.Request(ctx, f.student, p)
		requireMarked(t, err, errs.ErrVenueNotFound)
	})

	t.Run("invalid inputs map to validation errors", func(t *testing.T) {
		f := newFixture(t)

		badDate := f.requestParams()
		badDate.Date = "15/09/2026"
		_, err := f.cmds.Request(ctx, f.student, badDate)
		requireMarked(t, err, errs.ErrValidation)

		badSlot := f.requestParams("10:00-11:30")
		_, err = f.cmds.Request(ctx, f.student, badSlot)
		requireMarked(t, err, errs.ErrValidation)

		badPurpose := f.requestParams()
		badPurpose.Purpose = "  "
		_, err = f.cmds.Request(ctx, f.student, badPurpose)
		requireMarked(t, err, errs.ErrValidation)

		badAttendance := f.requestParams()
		badAttendance.Attendance = 0
		_, err = f.cmds.Request(ctx, f.student, badAttendance)
		requireMarked(t, err, errs.ErrValidation)

		assert.Empty(t, f.store.reservations)
	})

	t.Run("request against occupied slots fails atomically", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Block(ctx, f.caretaker, f.blockParams("11:00-12:00"))
		require.NoError(t, err)

		// One overlapping slot sinks the whole set; the free slot in the
		// request is not partially booked.
		_, err = f.cmds.Request(ctx, f.student, f.requestParams("10:00-11:00", "11:00-12:00"))
		requireMarked(t, err, errs.ErrSlotUnavailable)
		assert.Len(t, f.store.reservations, 1, "only the block remains")
	})

	t.Run("overlapping pendings may coexist", func(t *testing.T) {
		f := newFixture(t)
		other := builder.NewActorBuilder().AsStudent().Build()

		_, err := f.cmds.Request(ctx, f.student, f.requestParams())
		require.NoError(t, err)
		_, err = f.cmds.Request(ctx, other, f.requestParams())
		require.NoError(t, err)

		assert.Len(t, f.store.reservations, 2)
		assert.Empty(t, f.occupiedOn(t, "2026-09-15"))
	})
}

// ------------------------------------------------------------
// Decide
// ------------------------------------------------------------

func TestDecide(t *testing.T) {
	ctx := context.Background()

	pendingRequest := func(t *testing.T, f *fixture, slots ...string) uuid.UUID {
		t.Helper()
		view, err := f.cmds.Request(ctx, f.student, f.requestParams(slots...))
		require.NoError(t, err)
		return view.ID
	}

	t.Run("approval binds the slots", func(t *testing.T) {
		f := newFixture(t)
		id := pendingRequest(t, f)

		note := "room checked"
		view, err := f.cmds.Decide(ctx, f.head, id, commands.DecideParams{Decision: "approved", Note: &note})
		require.NoError(t, err)

		assert.Equal(t, "approved", view.Status)
		require.NotNil(t, view.OutcomeNote)
		assert.Equal(t, "room checked", *view.OutcomeNote)
		assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, f.occupiedOn(t, "2026-09-15"))
	})

	t.Run("rejection binds nothing", func(t *testing.T) {
		f := newFixture(t)
		id := pendingRequest(t, f)

		view, err := f.cmds.Decide(ctx, f.head, id, commands.DecideParams{Decision: "rejected"})
		require.NoError(t, err)

		assert.Equal(t, "rejected", view.Status)
		assert.Empty(t, f.occupiedOn(t, "2026-09-15"))
	})

	t.Run("first approval wins on overlapping pendings", func(t *testing.T) {
		f := newFixture(t)
		first := pendingRequest(t, f)

		other := builder.NewActorBuilder().AsStudent().Build()
		secondView, err := f.cmds.Request(ctx, other, f.requestParams())
		require.NoError(t, err)

		_, err = f.cmds.Decide(ctx, f.head, first, commands.DecideParams{Decision: "approved"})
		require.NoError(t, err)

		_, err = f.cmds.Decide(ctx, f.head, secondView.ID, commands.DecideParams{Decision: "approved"})
		requireMarked(t, err, errs.ErrSlotUnavailable)

		// The losing request is rolled back to pending so it can still be
		// rejected cleanly.
		assert.Equal(t, reservation.StatusPending, f.store.reservations[secondView.ID].Status())
		_, err = f.cmds.Decide(ctx, f.head, secondView.ID, commands.DecideParams{Decision: "rejected"})
		require.NoError(t, err)
	})

	t.Run("approving a request that now overlaps a block fails", func(t *testing.T) {
		f := newFixture(t)
		id := pendingRequest(t, f, "13:00-14:00")

		_, err := f.cmds.Block(ctx, f.caretaker, f.blockParams("13:00-14:00"))
		require.NoError(t, err)

		_, err = f.cmds.Decide(ctx, f.head, id, commands.DecideParams{Decision: "approved"})
		requireMarked(t, err, errs.ErrSlotUnavailable)
	})

	t.Run("deciding twice is an invalid transition", func(t *testing.T) {
		f := newFixture(t)
		id := pendingRequest(t, f)

		_, err := f.cmds.Decide(ctx, f.head, id, commands.DecideParams{Decision: "rejected"})
		require.NoError(t, err)

		for _, decision := range []string{"approved", "rejected"} {
			_, err = f.cmds.Decide(ctx, f.head, id, commands.DecideParams{Decision: decision})
			requireMarked(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("invalid decision value", func(t *testing.T) {
		f := newFixture(t)
		id := pendingRequest(t, f)

		for _, decision := range []string{"pending", "maybe", ""} {
			_, err := f.cmds.Decide(ctx, f.head, id, commands.DecideParams{Decision: decision})
			requireMarked(t, err, errs.ErrInvalidDecision, "decision %q", decision)
		}
	})

	t.Run("only the owning department's head may decide", func(t *testing.T) {
		f := newFixture(t)
		id := pendingRequest(t, f)

		foreignHead := builder.NewActorBuilder().AsDepartmentHead("Chemistry").Build()
		for _, actor := range []identity.Actor{foreignHead, f.student, f.caretaker} {
			_, err := f.cmds.Decide(ctx, actor, id, commands.DecideParams{Decision: "approved"})
			requireMarked(t, err, errs.ErrForbidden, "role %s", actor.Role)
		}

		assert.Equal(t, reservation.StatusPending, f.store.reservations[id].Status())
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Decide(ctx, f.head, uuid.New(), commands.DecideParams{Decision: "approved"})
		requireMarked(t, err, errs.ErrReservationNotFound)
	})
}

// ------------------------------------------------------------
// Withdraw
// ------------------------------------------------------------

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("requester withdraws their pending request", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.cmds.Request(ctx, f.student, f.requestParams())
		require.NoError(t, err)

		view, err := f.cmds.Withdraw(ctx, f.student, created.ID)
		require.NoError(t, err)

		assert.Equal(t, "rejected", view.Status)
		require.NotNil(t, view.OutcomeNote)
		assert.Equal(t, "withdrawn by requester", *view.OutcomeNote)
	})

	t.Run("someone else's reservation looks absent", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.cmds.Request(ctx, f.student, f.requestParams())
		require.NoError(t, err)

		stranger := builder.NewActorBuilder().AsStudent().Build()
		_, err = f.cmds.Withdraw(ctx, stranger, created.ID)
		requireMarked(t, err, errs.ErrReservationNotFound)

		assert.Equal(t, reservation.StatusPending, f.store.reservations[created.ID].Status())
	})

	t.Run("decided request cannot be withdrawn", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.cmds.Request(ctx, f.student, f.requestParams())
		require.NoError(t, err)
		_, err = f.cmds.Decide(ctx, f.head, created.ID, commands.DecideParams{Decision: "approved"})
		require.NoError(t, err)

		_, err = f.cmds.Withdraw(ctx, f.student, created.ID)
		requireMarked(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, reservation.StatusApproved, f.store.reservations[created.ID].Status())
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Withdraw(ctx, f.student, uuid.New())
		requireMarked(t, err, errs.ErrReservationNotFound)
	})
}

// ------------------------------------------------------------
// Block / Unblock
// ------------------------------------------------------------

func TestBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("block is binding immediately", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.cmds.Block(ctx, f.caretaker, f.blockParams("13:00-14:00", "14:00-15:00"))
		require.NoError(t, err)

		assert.Equal(t, "block", view.Kind)
		assert.Equal(t, "approved", view.Status)
		require.NotNil(t, view.BlockReason)
		assert.Equal(t, "floor maintenance", *view.BlockReason)
		assert.Equal(t, []string{"13:00-14:00", "14:00-15:00"}, f.occupiedOn(t, "2026-09-15"))
	})

	t.Run("only the assigned caretaker may block", func(t *testing.T) {
		f := newFixture(t)

		otherCaretaker := builder.NewActorBuilder().AsCaretakerOf(uuid.New()).Build()
		for _, actor := range []identity.Actor{f.student, f.head, otherCaretaker} {
			_, err := f.cmds.Block(ctx, actor, f.blockParams())
			requireMarked(t, err, errs.ErrForbidden, "role %s", actor.Role)
		}
	})

	t.Run("block over occupied slots fails", func(t *testing.T) {
		f := newFixture(t)

		created, err := f.cmds.Request(ctx, f.student, f.requestParams("13:00-14:00"))
		require.NoError(t, err)
		_, err = f.cmds.Decide(ctx, f.head, created.ID, commands.DecideParams{Decision: "approved"})
		require.NoError(t, err)

		_, err = f.cmds.Block(ctx, f.caretaker, f.blockParams("13:00-14:00"))
		requireMarked(t, err, errs.ErrSlotUnavailable)
	})

	t.Run("block over pending slots succeeds", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Request(ctx, f.student, f.requestParams("13:00-14:00"))
		require.NoError(t, err)

		_, err = f.cmds.Block(ctx, f.caretaker, f.blockParams("13:00-14:00"))
		require.NoError(t, err, "pending requests do not occupy slots")
	})
}

func TestUnblock(t *testing.T) {
	ctx := context.Background()

	t.Run("availability round-trips through block and unblock", func(t *testing.T) {
		f := newFixture(t)
		before := f.occupiedOn(t, "2026-09-15")

		view, err := f.cmds.Block(ctx, f.caretaker, f.blockParams("09:00-10:00", "10:00-11:00"))
		require.NoError(t, err)
		assert.NotEqual(t, before, f.occupiedOn(t, "2026-09-15"))

		require.NoError(t, f.cmds.Unblock(ctx, f.caretaker, view.ID))

		assert.Equal(t, before, f.occupiedOn(t, "2026-09-15"))
		assert.Empty(t, f.store.reservations, "the block record is removed entirely")
	})

	t.Run("only the assigned caretaker may unblock", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.cmds.Block(ctx, f.caretaker, f.blockParams())
		require.NoError(t, err)

		for _, actor := range []identity.Actor{f.student, f.head} {
			err := f.cmds.Unblock(ctx, actor, view.ID)
			requireMarked(t, err, errs.ErrForbidden, "role %s", actor.Role)
		}
	})

	t.Run("requests cannot be removed through unblock", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.cmds.Request(ctx, f.student, f.requestParams())
		require.NoError(t, err)

		// Even on their own venue a caretaker has no authority over
		// requests, so the kind mismatch is forbidden, not a bad transition.
		err = f.cmds.Unblock(ctx, f.caretaker, created.ID)
		requireMarked(t, err, errs.ErrForbidden)
		assert.Contains(t, f.store.reservations, created.ID)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		err := f.cmds.Unblock(ctx, f.caretaker, uuid.New())
		requireMarked(t, err, errs.ErrReservationNotFound)
	})
}
