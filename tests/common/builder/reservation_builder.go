//go:build unit || e2e

package builder

import (
	"time"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"
	reqdto "campus-booking/internal/handler/dto/request"
	"campus-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RequesterID uuid.UUID
	Venue       *VenueBuilder
	Date        string
	Slots       []string
	Purpose     string
	Attendance  int32
	BlockReason string
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		RequesterID: uuid.New(),
		Venue:       NewVenueBuilder(),
		Date:        "2026-09-15",
		Slots:       []string{"10:00-11:00", "11:00-12:00"},
		Purpose:     "Seminar rehearsal",
		Attendance:  12,
		BlockReason: "floor maintenance",
		CreatedAt:   time.Now(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildRequest() (*reservation.Reservation, error) {
	date, err := reservation.NewDate(r.Date)
	if err != nil {
		return nil, err
	}
	slots, err := slot.NewSet(r.Slots)
	if err != nil {
		return nil, err
	}
	return reservation.NewRequest(r.RequesterID, r.Venue.BuildDomain(), date, slots, r.Purpose, r.Attendance, r.CreatedAt)
}

func (r *ReservationBuilder) BuildBlock() (*reservation.Reservation, error) {
	date, err := reservation.NewDate(r.Date)
	if err != nil {
		return nil, err
	}
	slots, err := slot.NewSet(r.Slots)
	if err != nil {
		return nil, err
	}
	return reservation.NewBlock(r.RequesterID, r.Venue.BuildDomain(), date, slots, r.BlockReason, r.CreatedAt)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		VenueID:    r.Venue.ID,
		Date:       r.Date,
		Slots:      r.Slots,
		Purpose:    r.Purpose,
		Attendance: r.Attendance,
	}
}

func (r *ReservationBuilder) BuildDecideRequestDTO(decision string, note *string) reqdto.DecideReservationRequest {
	return reqdto.DecideReservationRequest{
		Decision: decision,
		Note:     note,
	}
}

func (r *ReservationBuilder) BuildCreateBlockDTO() reqdto.CreateBlockRequest {
	return reqdto.CreateBlockRequest{
		Date:   r.Date,
		Slots:  r.Slots,
		Reason: r.BlockReason,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          uuid.New(),
		VenueID:     r.Venue.ID,
		VenueName:   r.Venue.Name,
		RequesterID: r.RequesterID,
		Department:  r.Venue.Department,
		Date:        r.Date,
		Slots:       r.Slots,
		Kind:        reservation.KindRequest.String(),
		Status:      reservation.StatusPending.String(),
		Purpose:     r.Purpose,
		Attendance:  r.Attendance,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        uuid.New(),
		VenueID:   r.Venue.ID,
		VenueName: r.Venue.Name,
		Date:      r.Date,
		Slots:     r.Slots,
		Kind:      reservation.KindRequest.String(),
		Status:    reservation.StatusPending.String(),
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReservationBuilder) WithRequesterID(id uuid.UUID) *ReservationBuilder {
	r.RequesterID = id
	return r
}

func (r *ReservationBuilder) WithVenue(v *VenueBuilder) *ReservationBuilder {
	r.Venue = v
	return r
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithSlots(slots ...string) *ReservationBuilder {
	r.Slots = slots
	return r
}

func (r *ReservationBuilder) WithPurpose(purpose string) *ReservationBuilder {
	r.Purpose = purpose
	return r
}

func (r *ReservationBuilder) WithAttendance(attendance int32) *ReservationBuilder {
	r.Attendance = attendance
	return r
}

func (r *ReservationBuilder) WithBlockReason(reason string) *ReservationBuilder {
	r.BlockReason = reason
	return r
}
