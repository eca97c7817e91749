package reservation

import (
	"errors"
	"strings"
	"time"

	"campus-booking/internal/domain/slot"
	"campus-booking/internal/domain/venue"

	"github.com/google/uuid"
)

var (
	ErrEmptyPurpose       = errors.New("purpose must not be empty")
	ErrInvalidAttendance  = errors.New("expected attendance must be positive")
	ErrInvalidDecision    = errors.New("decision must be approved or rejected")
	ErrAlreadyDecided     = errors.New("reservation is no longer pending")
	ErrNotBlock           = errors.New("reservation is not an administrative block")
	ErrBlockNotWithdrawal = errors.New("blocks cannot be withdrawn")
)

// Reservation is the central entity: a request for (or administrative hold on)
// a set of slots on one venue and one date. Venue, date and slots are fixed at
// creation; amendment is cancel-and-recreate. Department is the venue's owning
// department captured at creation time, not the requester's own.
type Reservation struct {
	id          uuid.UUID
	venueID     uuid.UUID
	requesterID uuid.UUID
	department  string
	date        Date
	slots       slot.Set
	kind        Kind
	status      Status
	purpose     string
	attendance  int32
	outcomeNote *string
	blockReason *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRequest creates a normal reservation in Pending state. Pending does not
// bind any slots; only approval does.
func NewRequest(
	requesterID uuid.UUID,
	v *venue.Venue,
	date Date,
	slots slot.Set,
	purpose string,
	attendance int32,
	now time.Time,
) (*Reservation, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return nil, ErrEmptyPurpose
	}
	if attendance <= 0 {
		return nil, ErrInvalidAttendance
	}
	if slots.IsEmpty() {
		return nil, slot.ErrEmptySet
	}

	return &Reservation{
		id:          uuid.New(),
		venueID:     v.ID(),
		requesterID: requesterID,
		department:  v.Department(),
		date:        date,
		slots:       slots,
		kind:        KindRequest,
		status:      StatusPending,
		purpose:     purpose,
		attendance:  attendance,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewBlock creates a caretaker hold. Blocks skip approval and are binding the
// moment they exist.
func NewBlock(
	caretakerID uuid.UUID,
	v *venue.Venue,
	date Date,
	slots slot.Set,
	reason string,
	now time.Time,
) (*Reservation, error) {
	if slots.IsEmpty() {
		return nil, slot.ErrEmptySet
	}

	var blockReason *string
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		blockReason = &trimmed
	}

	return &Reservation{
		id:          uuid.New(),
		venueID:     v.ID(),
		requesterID: caretakerID,
		department:  v.Department(),
		date:        date,
		slots:       slots,
		kind:        KindBlock,
		status:      StatusApproved,
		purpose:     "administrative block",
		blockReason: blockReason,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, venueID, requesterID uuid.UUID,
	department string,
	date Date,
	slots slot.Set,
	kind Kind,
	status Status,
	purpose string,
	attendance int32,
	outcomeNote, blockReason *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		venueID:     venueID,
		requesterID: requesterID,
		department:  department,
		date:        date,
		slots:       slots,
		kind:        kind,
		status:      status,
		purpose:     purpose,
		attendance:  attendance,
		outcomeNote: outcomeNote,
		blockReason: blockReason,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Decide moves a pending request to its terminal state. The transition is
// terminal in both directions: re-deciding fails regardless of the value.
func (r *Reservation) Decide(decision Status, note *string, now time.Time) error {
	if !decision.IsDecision() {
		return ErrInvalidDecision
	}
	if r.kind != KindRequest || r.status != StatusPending {
		return ErrAlreadyDecided
	}

	r.status = decision
	if note != nil {
		trimmed := strings.TrimSpace(*note)
		if trimmed != "" {
			r.outcomeNote = &trimmed
		}
	}
	r.updatedAt = now
	return nil
}

// Withdraw is the requester-initiated terminal rejection of a still-pending
// request. Modeled as Rejected with a fixed outcome note rather than a fourth
// status.
func (r *Reservation) Withdraw(now time.Time) error {
	if r.kind == KindBlock {
		return ErrBlockNotWithdrawal
	}
	if r.status != StatusPending {
		return ErrAlreadyDecided
	}

	note := "withdrawn by requester"
	r.status = StatusRejected
	r.outcomeNote = &note
	r.updatedAt = now
	return nil
}

// IsBinding reports whether this reservation's slots occupy the venue.
// Approved requests and blocks bind; pending and rejected never do.
func (r *Reservation) IsBinding() bool {
	return r.status == StatusApproved || r.kind == KindBlock
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) VenueID() uuid.UUID   { return r.venueID }
func (r *Reservation) RequesterID() uuid.UUID { return r.requesterID }
func (r *Reservation) Department() string   { return r.department }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) Slots() slot.Set      { return r.slots }
func (r *Reservation) Kind() Kind           { return r.kind }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Purpose() string      { return r.purpose }
func (r *Reservation) Attendance() int32    { return r.attendance }
func (r *Reservation) OutcomeNote() *string { return r.outcomeNote }
func (r *Reservation) BlockReason() *string { return r.blockReason }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
