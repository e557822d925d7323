package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return Status(raw), nil
	}
	return "", ErrInvalidState
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return ErrInvalidState
	}
	return nil
}

// CanTransition only lets scheduled appointments move; completed and
// cancelled are terminal and may only "transition" to themselves.
func CanTransition(current, next Status) error {
	if current == next {
		return nil
	}
	if current != StatusScheduled {
		return ErrInvalidState
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// BlocksTimeline reports whether an appointment in this status occupies its
// interval for conflict purposes.
func (s Status) BlocksTimeline() bool {
	return s != StatusCancelled
}
