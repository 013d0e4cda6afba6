package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusPaid       Status = "paid"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCheckedOut
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}
