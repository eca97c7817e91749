//go:build unit || e2e

package builder

import (
	"campus-booking/internal/domain/identity"

	"github.com/google/uuid"
)

type ActorBuilder struct {
	UserID     uuid.UUID
	Role       identity.Role
	Department string
	VenueID    *uuid.UUID
}

func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		UserID:     uuid.New(),
		Role:       identity.RoleStudent,
		Department: "Physics",
	}
}

func (a *ActorBuilder) Build() identity.Actor {
	return identity.Actor{
		UserID:     a.UserID,
		Role:       a.Role,
		Department: a.Department,
		VenueID:    a.VenueID,
	}
}

func (a *ActorBuilder) WithUserID(id uuid.UUID) *ActorBuilder {
	a.UserID = id
	return a
}

func (a *ActorBuilder) AsStudent() *ActorBuilder {
	a.Role = identity.RoleStudent
	a.VenueID = nil
	return a
}

func (a *ActorBuilder) AsFaculty() *ActorBuilder {
	a.Role = identity.RoleFaculty
	a.VenueID = nil
	return a
}

func (a *ActorBuilder) AsDepartmentHead(department string) *ActorBuilder {
	a.Role = identity.RoleDepartmentHead
	a.Department = department
	a.VenueID = nil
	return a
}

func (a *ActorBuilder) AsCaretakerOf(venueID uuid.UUID) *ActorBuilder {
	a.Role = identity.RoleCaretaker
	a.VenueID = &venueID
	return a
}
