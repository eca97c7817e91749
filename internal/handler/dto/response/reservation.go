package response

import (
	"time"

	"campus-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	VenueID     uuid.UUID `json:"venueId"`
	VenueName   string    `json:"venueName"`
	RequesterID uuid.UUID `json:"requesterId"`
	Department  string    `json:"department"`
	Date        string    `json:"date"`
	Slots       []string  `json:"slots"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	Purpose     string    `json:"purpose"`
	Attendance  int32     `json:"attendance,omitempty"`
	OutcomeNote *string   `json:"outcomeNote,omitempty"`
	BlockReason *string   `json:"blockReason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venueId"`
	VenueName string    `json:"venueName"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	VenueID uuid.UUID `json:"venueId"`
	Date    string    `json:"date"`
	Slots   []string  `json:"slots"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationList(items []*queries.ReservationListItem) []*ReservationListResponse {
	out := make([]*ReservationListResponse, len(items))
	for i, rm := range items {
		out[i] = FromReservationListItem(rm)
	}
	return out
}
