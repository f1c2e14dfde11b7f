package order

// Status is the closed set of order lifecycle states. StatusCancelled is a
// defined target with no triggering operation yet; StatusPaid is reserved by
// peripheral artifacts and unreachable here.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus maps a stored representation back onto the enumeration.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDraft, StatusConfirmed, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

func (s Status) String() string { return string(s) }
