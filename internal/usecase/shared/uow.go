package shared

import (
	"context"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one store transaction. Within retries on
// serialization failures, so fn must be safe to re-run.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the write-side surface available inside a transaction. LockSchedule
// takes the per-(venue, date) mutual-exclusion scope that makes
// check-then-create atomic; it must be acquired before reading the occupied
// set on any path that will bind slots. Different (venue, date) pairs never
// contend.
type Tx interface {
	LockSchedule(ctx context.Context, venueID uuid.UUID, date reservation.Date) error
	Reservations() ReservationRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// FindForUpdate row-locks the reservation so decide/withdraw/unblock
	// observe and change status atomically.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateDecision(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OccupiedSlots returns the union of slots held by binding reservations
	// for the (venue, date) pair.
	OccupiedSlots(ctx context.Context, venueID uuid.UUID, date reservation.Date) (slot.Set, error)
	// ClaimSlots records the reservation's slots as binding. The store's
	// uniqueness constraint over (venue, date, slot) is the backstop that
	// rejects a double claim even without the schedule lock.
	ClaimSlots(ctx context.Context, res *reservation.Reservation) error
}

// VenueReads is the directory lookup commands use outside transactions.
type VenueReads interface {
	ByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	List(ctx context.Context) ([]*VenueSnapshot, error)
}
