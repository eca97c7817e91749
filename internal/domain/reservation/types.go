package reservation

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the value is a legal outcome of the approval
// step. Pending is a valid status but never a valid decision.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type Kind string

const (
	// KindRequest is a normal reservation that passes through approval.
	KindRequest Kind = "request"
	// KindBlock is a caretaker-created administrative hold. It is born
	// binding and never has a pending or rejected phase.
	KindBlock Kind = "block"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRequest, KindBlock:
		return true
	default:
		return false
	}
}
