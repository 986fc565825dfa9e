package domain

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
)

// NextStatus returns the single legal forward step for a kitchen order.
// Ready is terminal and maps to itself.
func NextStatus(status string) string {
	switch status {
	case StatusPending:
		return StatusPreparing
	case StatusPreparing:
		return StatusReady
	default:
		return StatusReady
	}
}

// CanTransition reports whether from -> to is exactly one forward step.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusPreparing
	case StatusPreparing:
		return to == StatusReady
	default:
		return false
	}
}

// StatusLabel renders a display label, falling back to a neutral one for
// statuses this version does not know about.
func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return "Pending"
	case StatusPreparing:
		return "Preparing"
	case StatusReady:
		return "Ready"
	default:
		return "Unknown"
	}
}
