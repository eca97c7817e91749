package readstore

import (
	"context"
	"errors"
	"time"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"
	"campus-booking/internal/infra"
	"campus-booking/internal/infra/db"
	"campus-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewQuery = `
	SELECT r.id, r.venue_id, v.name, r.requester_id, r.department, r.booked_date,
	       r.kind, r.status, r.purpose, r.attendance, r.outcome_note, r.block_reason,
	       r.created_at, r.updated_at,
	       (SELECT COALESCE(array_agg(rs.slot), '{}') FROM reservation_slots rs WHERE rs.reservation_id = r.id)
	FROM reservations r
	JOIN venues v ON v.id = r.venue_id`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewQuery+` WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.ReservationListItem, error) {
	const query = listItemQuery + `
		WHERE r.requester_id = $1
		ORDER BY r.created_at DESC, r.id DESC`

	return r.listItems(ctx, query, requesterID)
}

func (r *ReservationReadStore) ListByDepartment(ctx context.Context, department string) ([]*queries.ReservationListItem, error) {
	const query = listItemQuery + `
		WHERE r.department = $1
		ORDER BY r.booked_date, r.created_at DESC, r.id DESC`

	return r.listItems(ctx, query, department)
}

func (r *ReservationReadStore) ListByVenue(ctx context.Context, venueID uuid.UUID, from, to *reservation.Date) ([]*queries.ReservationListItem, error) {
	query := listItemQuery + ` WHERE r.venue_id = $1`
	args := []any{venueID}

	if from != nil {
		args = append(args, from.Time())
		query += ` AND r.booked_date >= $2`
	}
	if to != nil {
		args = append(args, to.Time())
		if from != nil {
			query += ` AND r.booked_date <= $3`
		} else {
			query += ` AND r.booked_date <= $2`
		}
	}
	query += ` ORDER BY r.booked_date, r.created_at DESC, r.id DESC`

	return r.listItems(ctx, query, args...)
}

// OccupiedSlots is the read-path availability lookup; it sees only committed
// claims, so repeated calls with no intervening mutation are identical.
func (r *ReservationReadStore) OccupiedSlots(ctx context.Context, venueID uuid.UUID, date reservation.Date) (slot.Set, error) {
	const query = `
		SELECT slot FROM slot_claims
		WHERE venue_id = $1 AND booked_date = $2`

	rows, err := r.db.Query(ctx, query, venueID, date.Time())
	if err != nil {
		return slot.Set{}, infra.WrapRepoErr("failed to query occupied slots", err)
	}
	defer rows.Close()

	var occupied []slot.Slot
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return slot.Set{}, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		occupied = append(occupied, slot.Slot(s))
	}
	if err := rows.Err(); err != nil {
		return slot.Set{}, infra.WrapRepoErr("failed to read occupied slots", err)
	}

	return slot.CollectSet(occupied), nil
}

const listItemQuery = `
	SELECT r.id, r.venue_id, v.name, r.booked_date, r.kind, r.status, r.created_at,
	       (SELECT COALESCE(array_agg(rs.slot), '{}') FROM reservation_slots rs WHERE rs.reservation_id = r.id)
	FROM reservations r
	JOIN venues v ON v.id = r.venue_id`

func (r *ReservationReadStore) listItems(ctx context.Context, query string, args ...any) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	items := make([]*queries.ReservationListItem, 0)
	for rows.Next() {
		var (
			item       queries.ReservationListItem
			bookedDate time.Time
			rawSlots   []string
		)
		err := rows.Scan(
			&item.ID, &item.VenueID, &item.VenueName, &bookedDate,
			&item.Kind, &item.Status, &item.CreatedAt, &rawSlots,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		item.Date = reservation.DateOf(bookedDate).String()
		item.Slots = normalizeSlots(rawSlots)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation list", err)
	}

	return items, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		bookedDate time.Time
		rawSlots   []string
	)
	err := row.Scan(
		&view.ID, &view.VenueID, &view.VenueName, &view.RequesterID, &view.Department, &bookedDate,
		&view.Kind, &view.Status, &view.Purpose, &view.Attendance, &view.OutcomeNote, &view.BlockReason,
		&view.CreatedAt, &view.UpdatedAt, &rawSlots,
	)
	if err != nil {
		return nil, err
	}

	view.Date = reservation.DateOf(bookedDate).String()
	view.Slots = normalizeSlots(rawSlots)
	return &view, nil
}

// normalizeSlots re-orders stored slot values into catalog order.
func normalizeSlots(raw []string) []string {
	slots := make([]slot.Slot, len(raw))
	for i, s := range raw {
		slots[i] = slot.Slot(s)
	}
	return slot.CollectSet(slots).Strings()
}
