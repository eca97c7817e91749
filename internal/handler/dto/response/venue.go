package response

import (
	"time"

	"campus-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VenueResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromVenueView(rm *queries.VenueView) *VenueResponse {
	var resp VenueResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromVenueList(views []*queries.VenueView) []*VenueResponse {
	out := make([]*VenueResponse, len(views))
	for i, v := range views {
		out[i] = FromVenueView(v)
	}
	return out
}
