// Package identity holds the authenticated actor the web layer hands to the
// reservation core, and the authorization gate every lifecycle operation
// consults before touching state.
package identity

import "github.com/google/uuid"

type Role string

const (
	RoleStudent        Role = "student"
	RoleFaculty        Role = "faculty"
	RoleDepartmentHead Role = "department_head"
	RoleCaretaker      Role = "caretaker"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleDepartmentHead, RoleCaretaker:
		return true
	default:
		return false
	}
}

// Actor is the identity supplied by the authentication layer: who is acting,
// in what role, from which home department, and (for caretakers) which venue
// they are assigned to. The core never re-derives any of this.
type Actor struct {
	UserID     uuid.UUID
	Role       Role
	Department string
	// VenueID is set only for caretakers: their single assigned venue.
	VenueID *uuid.UUID
}

func (a Actor) IsCaretakerOf(venueID uuid.UUID) bool {
	return a.Role == RoleCaretaker && a.VenueID != nil && *a.VenueID == venueID
}
