//go:build unit || e2e

package builder

import (
	"time"

	"campus-booking/internal/domain/venue"
	"campus-booking/internal/usecase/queries"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID         uuid.UUID
	Name       string
	Department string
	Kind       venue.Kind
	CreatedAt  time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:         uuid.New(),
		Name:       "Physics Lab 1",
		Department: "Physics",
		Kind:       venue.KindLab,
		CreatedAt:  time.Now(),
	}
}

func (v *VenueBuilder) BuildDomain() *venue.Venue {
	return venue.Reconstruct(v.ID, v.Name, v.Department, v.Kind, v.CreatedAt)
}

func (v *VenueBuilder) BuildSnapshot() *shared.VenueSnapshot {
	return &shared.VenueSnapshot{
		ID:         v.ID,
		Name:       v.Name,
		Department: v.Department,
		Kind:       v.Kind.String(),
		CreatedAt:  v.CreatedAt,
	}
}

func (v *VenueBuilder) BuildView() *queries.VenueView {
	return &queries.VenueView{
		ID:         v.ID,
		Name:       v.Name,
		Department: v.Department,
		Kind:       v.Kind.String(),
		CreatedAt:  v.CreatedAt,
	}
}

func (v *VenueBuilder) WithID(id uuid.UUID) *VenueBuilder {
	v.ID = id
	return v
}

func (v *VenueBuilder) WithName(name string) *VenueBuilder {
	v.Name = name
	return v
}

func (v *VenueBuilder) WithDepartment(department string) *VenueBuilder {
	v.Department = department
	return v
}

func (v *VenueBuilder) AsHall() *VenueBuilder {
	v.Kind = venue.KindHall
	return v
}
