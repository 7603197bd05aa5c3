package model

// RefreshState represents the phase of the pull-to-refresh header
type RefreshState int

const (
	// RefreshIdle means the header is hidden and no gesture is in progress
	RefreshIdle RefreshState = iota

	// RefreshPulling means the user is dragging the header into view
	RefreshPulling

	// RefreshRefreshing means a refresh is running and the header is pinned
	RefreshRefreshing

	// RefreshFinished means the refresh completed and the header is about to hide
	RefreshFinished
)

// String returns the string representation of RefreshState
func (rs RefreshState) String() string {
	switch rs {
	case RefreshIdle:
		return "Idle"
	case RefreshPulling:
		return "Pulling"
	case RefreshRefreshing:
		return "Refreshing"
	case RefreshFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// IsActive returns true while the header is visible for a refresh cycle
func (rs RefreshState) IsActive() bool {
	return rs == RefreshRefreshing || rs == RefreshFinished
}
