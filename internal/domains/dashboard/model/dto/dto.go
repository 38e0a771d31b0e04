package dto

import "bookspace/internal/domains/dashboard/model"

// StatResponse is the body of GET /dashboard. Every counter must be present.
type StatResponse struct {
	TotalRooms      *int `json:"totalRooms"      validate:"required,gte=0"`
	BookingsToday   *int `json:"bookingsToday"   validate:"required,gte=0"`
	PendingRequests *int `json:"pendingRequests" validate:"required,gte=0"`
}

func (r StatResponse) ToModel() model.Stat {
	return model.Stat{
		TotalRooms:      deref(r.TotalRooms),
		BookingsToday:   deref(r.BookingsToday),
		PendingRequests: deref(r.PendingRequests),
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
