package request

import "github.com/google/uuid"

// bookingdate is a custom validation registered at startup; it accepts
// YYYY-MM-DD only. Unknown JSON fields are rejected globally.

type CreateReservationRequest struct {
	VenueID    uuid.UUID `json:"venue_id" binding:"required"`
	Date       string    `json:"date" binding:"required,bookingdate"`
	Slots      []string  `json:"slots" binding:"required,min=1"`
	Purpose    string    `json:"purpose" binding:"required"`
	Attendance int32     `json:"attendance" binding:"required,gt=0"`
}

type DecideReservationRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Note     *string `json:"note,omitempty"`
}

type CreateBlockRequest struct {
	Date   string   `json:"date" binding:"required,bookingdate"`
	Slots  []string `json:"slots" binding:"required,min=1"`
	Reason string   `json:"reason,omitempty"`
}
