package repository

import (
	"context"
	"errors"
	"time"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"
	"campus-booking/internal/infra"
	"campus-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// ReservationRepository is the write side of the reservation store. All
// methods run on the DBTX they were constructed with; the unit of work hands
// out instances bound to the current transaction.
type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const insertReservation = `
		INSERT INTO reservations (
			id, venue_id, requester_id, department, booked_date,
			kind, status, purpose, attendance, outcome_note, block_reason,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, insertReservation,
		res.ID(), res.VenueID(), res.RequesterID(), res.Department(), res.Date().Time(),
		res.Kind().String(), res.Status().String(), res.Purpose(), res.Attendance(),
		res.OutcomeNote(), res.BlockReason(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return wrapPgErr("failed to insert reservation", err)
	}

	const insertSlot = `
		INSERT INTO reservation_slots (reservation_id, slot) VALUES ($1, $2)`
	for _, s := range res.Slots().Slots() {
		if _, err := r.db.Exec(ctx, insertSlot, res.ID(), s.String()); err != nil {
			return wrapPgErr("failed to insert reservation slot", err)
		}
	}

	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, venue_id, requester_id, department, booked_date,
		       kind, status, purpose, attendance, outcome_note, block_reason,
		       created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	var (
		resID, venueID, requesterID uuid.UUID
		department, kind, status    string
		purpose                     string
		bookedDate                  time.Time
		attendance                  int32
		outcomeNote, blockReason    *string
		createdAt, updatedAt        time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resID, &venueID, &requesterID, &department, &bookedDate,
		&kind, &status, &purpose, &attendance, &outcomeNote, &blockReason,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to find reservation", err)
	}

	slots, err := r.slotsOf(ctx, resID)
	if err != nil {
		return nil, err
	}

	return reservation.Reconstruct(
		resID, venueID, requesterID,
		department,
		reservation.DateOf(bookedDate),
		slots,
		reservation.Kind(kind),
		reservation.Status(status),
		purpose,
		attendance,
		outcomeNote, blockReason,
		createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) UpdateDecision(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET status = $2, outcome_note = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, res.ID(), res.Status().String(), res.OutcomeNote(), res.UpdatedAt())
	if err != nil {
		return wrapPgErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Slot rows and claims cascade with the reservation.
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) OccupiedSlots(ctx context.Context, venueID uuid.UUID, date reservation.Date) (slot.Set, error) {
	const query = `
		SELECT slot FROM slot_claims
		WHERE venue_id = $1 AND booked_date = $2`

	rows, err := r.db.Query(ctx, query, venueID, date.Time())
	if err != nil {
		return slot.Set{}, wrapPgErr("failed to query occupied slots", err)
	}
	defer rows.Close()

	var occupied []slot.Slot
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return slot.Set{}, wrapPgErr("failed to scan occupied slot", err)
		}
		occupied = append(occupied, slot.Slot(s))
	}
	if err := rows.Err(); err != nil {
		return slot.Set{}, wrapPgErr("failed to read occupied slots", err)
	}

	return slot.CollectSet(occupied), nil
}

func (r *ReservationRepository) ClaimSlots(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO slot_claims (venue_id, booked_date, slot, reservation_id)
		VALUES ($1, $2, $3, $4)`

	for _, s := range res.Slots().Slots() {
		_, err := r.db.Exec(ctx, query, res.VenueID(), res.Date().Time(), s.String(), res.ID())
		if err != nil {
			return wrapPgErr("failed to claim slot", err)
		}
	}
	return nil
}

func (r *ReservationRepository) slotsOf(ctx context.Context, id uuid.UUID) (slot.Set, error) {
	rows, err := r.db.Query(ctx, `SELECT slot FROM reservation_slots WHERE reservation_id = $1`, id)
	if err != nil {
		return slot.Set{}, wrapPgErr("failed to query reservation slots", err)
	}
	defer rows.Close()

	var slots []slot.Slot
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return slot.Set{}, wrapPgErr("failed to scan reservation slot", err)
		}
		slots = append(slots, slot.Slot(s))
	}
	if err := rows.Err(); err != nil {
		return slot.Set{}, wrapPgErr("failed to read reservation slots", err)
	}

	return slot.CollectSet(slots), nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErr.Code == "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
