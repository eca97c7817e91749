// Package venue models the resource directory: bookable spaces and the
// department that owns them. The directory is consumed by the reservation
// core; venue administration itself lives outside this service.
package venue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("venue name must not be empty")
	ErrEmptyDepartment = errors.New("venue department must not be empty")
	ErrInvalidKind     = errors.New("invalid venue kind")
)

type Kind string

const (
	KindLab  Kind = "lab"
	KindHall Kind = "hall"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindLab, KindHall:
		return true
	default:
		return false
	}
}

type Venue struct {
	id         uuid.UUID
	name       string
	department string
	kind       Kind
	createdAt  time.Time
}

func NewVenue(name, department string, kind Kind, now time.Time) (*Venue, error) {
	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	if name == "" {
		return nil, ErrEmptyName
	}
	if department == "" {
		return nil, ErrEmptyDepartment
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Venue{
		id:         uuid.New(),
		name:       name,
		department: department,
		kind:       kind,
		createdAt:  now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, department string, kind Kind, createdAt time.Time) *Venue {
	return &Venue{
		id:         id,
		name:       name,
		department: department,
		kind:       kind,
		createdAt:  createdAt,
	}
}

func (v *Venue) ID() uuid.UUID        { return v.id }
func (v *Venue) Name() string         { return v.name }
func (v *Venue) Department() string   { return v.department }
func (v *Venue) Kind() Kind           { return v.kind }
func (v *Venue) CreatedAt() time.Time { return v.createdAt }
