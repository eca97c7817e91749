// Package slot defines the fixed daily catalog of bookable time slots and the
// set algebra the availability and conflict checks are built on. Slots are
// compared by identity only; the catalog is the single source of truth for
// which values exist and in what order.
package slot

import "errors"

var (
	ErrEmptySet  = errors.New("slot set must not be empty")
	ErrUnknown   = errors.New("slot is not in the catalog")
	ErrDuplicate = errors.New("duplicate slot in set")
)

type Slot string

// Seven one-hour slots per day, identical across all venues. Order here is the
// canonical display and iteration order.
var catalog = []Slot{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
	"14:00-15:00",
	"15:00-16:00",
}

var catalogIndex = buildIndex()

func buildIndex() map[Slot]int {
	idx := make(map[Slot]int, len(catalog))
	for i, s := range catalog {
		idx[s] = i
	}
	return idx
}

func Catalog() []Slot {
	out := make([]Slot, len(catalog))
	copy(out, catalog)
	return out
}

func IsValid(s Slot) bool {
	_, ok := catalogIndex[s]
	return ok
}

func (s Slot) String() string {
	return string(s)
}

// Set is a non-empty group of catalog slots, normalized to catalog order.
// The zero value is empty and only produced internally (occupied sets may be
// empty; requested sets come from NewSet and never are).
type Set struct {
	members map[Slot]struct{}
}

func NewSet(values []string) (Set, error) {
	if len(values) == 0 {
		return Set{}, ErrEmptySet
	}
	members := make(map[Slot]struct{}, len(values))
	for _, v := range values {
		s := Slot(v)
		if !IsValid(s) {
			return Set{}, ErrUnknown
		}
		if _, seen := members[s]; seen {
			return Set{}, ErrDuplicate
		}
		members[s] = struct{}{}
	}
	return Set{members: members}, nil
}

func NewSetFromSlots(slots []Slot) (Set, error) {
	values := make([]string, len(slots))
	for i, s := range slots {
		values[i] = string(s)
	}
	return NewSet(values)
}

// CollectSet builds a set from already-validated slots, silently dropping
// anything outside the catalog. Used when reading occupied slots back from the
// store, where emptiness and duplicates are not errors.
func CollectSet(slots []Slot) Set {
	members := make(map[Slot]struct{}, len(slots))
	for _, s := range slots {
		if IsValid(s) {
			members[s] = struct{}{}
		}
	}
	return Set{members: members}
}

func (s Set) Contains(v Slot) bool {
	_, ok := s.members[v]
	return ok
}

func (s Set) Len() int {
	return len(s.members)
}

func (s Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Slots returns the members in catalog order.
func (s Set) Slots() []Slot {
	out := make([]Slot, 0, len(s.members))
	for _, c := range catalog {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) Strings() []string {
	slots := s.Slots()
	out := make([]string, len(slots))
	for i, v := range slots {
		out[i] = string(v)
	}
	return out
}

func (s Set) Intersects(other Set) bool {
	for m := range s.members {
		if other.Contains(m) {
			return true
		}
	}
	return false
}

func (s Set) IsSubsetOf(other Set) bool {
	for m := range s.members {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

func (s Set) Union(other Set) Set {
	members := make(map[Slot]struct{}, len(s.members)+other.Len())
	for m := range s.members {
		members[m] = struct{}{}
	}
	for m := range other.members {
		members[m] = struct{}{}
	}
	return Set{members: members}
}

// Available returns the catalog minus the occupied set, in catalog order.
func Available(occupied Set) []Slot {
	out := make([]Slot, 0, len(catalog))
	for _, c := range catalog {
		if !occupied.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
