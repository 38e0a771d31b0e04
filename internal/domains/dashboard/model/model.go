package model

const (
	EntityName = "dashboard"
	Path       = "/dashboard"
)

// Stat holds the headline counters. The zero value is what the cards show
// before, or instead of, a successful load.
type Stat struct {
	TotalRooms      int
	BookingsToday   int
	PendingRequests int
}
