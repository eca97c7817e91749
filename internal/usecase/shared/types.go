package shared

import (
	"time"

	"github.com/google/uuid"
)

// VenueSnapshot is the minimal directory view commands need: identity plus
// the owning department the reservation copies at creation time.
type VenueSnapshot struct {
	ID         uuid.UUID
	Name       string
	Department string
	Kind       string
	CreatedAt  time.Time
}
