package identity

import "github.com/google/uuid"

// Action enumerates everything the capability table governs.
type Action int

const (
	ActionRequest Action = iota
	ActionDecide
	ActionWithdraw
	ActionBlock
	ActionUnblock
	ActionViewReservation
	ActionViewSchedule
	ActionListDepartment
)

// Target identifies what an action is aimed at. Department is always the
// owning department of the target venue, not the acting user's own.
type Target struct {
	VenueID     uuid.UUID
	Department  string
	RequesterID uuid.UUID
}

// Allows is the single policy function for the role capability table:
//
//	role            create  decide  block/unblock  view scope
//	student/faculty yes     no      no             own reservations
//	dept head       no      own dept no            own dept's venues
//	caretaker       no      no      assigned venue assigned venue
//
// A false result always surfaces as Forbidden to the caller; the gate never
// degrades to a silent no-op.
func Allows(a Actor, action Action, t Target) bool {
	switch a.Role {
	case RoleStudent, RoleFaculty:
		switch action {
		case ActionRequest:
			// Open booking: any department's venues.
			return true
		case ActionWithdraw, ActionViewReservation:
			return t.RequesterID == a.UserID
		default:
			return false
		}

	case RoleDepartmentHead:
		switch action {
		case ActionDecide, ActionViewReservation, ActionViewSchedule:
			return t.Department != "" && t.Department == a.Department
		case ActionListDepartment:
			return t.Department == a.Department
		default:
			return false
		}

	case RoleCaretaker:
		switch action {
		case ActionBlock, ActionUnblock, ActionViewReservation, ActionViewSchedule:
			return a.IsCaretakerOf(t.VenueID)
		default:
			return false
		}

	default:
		return false
	}
}
