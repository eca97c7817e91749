package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	VenueID     uuid.UUID `json:"venue_id"`
	VenueName   string    `json:"venue_name"`
	RequesterID uuid.UUID `json:"requester_id"`
	Department  string    `json:"department"`
	Date        string    `json:"date"`
	Slots       []string  `json:"slots"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	Purpose     string    `json:"purpose"`
	Attendance  int32     `json:"attendance"`
	OutcomeNote *string   `json:"outcome_note,omitempty"`
	BlockReason *string   `json:"block_reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type VenueView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"created_at"`
}
