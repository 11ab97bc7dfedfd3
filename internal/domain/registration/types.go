package registration

type Status string

const (
	// StatusRegistered is the initial state for donors who self-register
	// without staff pre-approval. It behaves like Pending for staff actions.
	StatusRegistered Status = "registered"
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusCheckedIn  Status = "checked_in"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRegistered, StatusPending, StatusApproved, StatusCheckedIn,
		StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// awaitingStaffDecision reports whether Approve/Reject/Cancel may act on s.
func (s Status) awaitingStaffDecision() bool {
	return s == StatusRegistered || s == StatusPending
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
