package model_test

import (
	"testing"

	"bookspace/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestBadge(t *testing.T) {
	tests := []struct {
		status    string
		wantLabel string
		wantStyle string
	}{
		{status: "Pending", wantLabel: "Pending", wantStyle: "bg-yellow-500/20 text-yellow-400"},
		{status: "Approved", wantLabel: "Approved", wantStyle: "bg-blue-500/20 text-blue-400"},
		{status: "OnGoing", wantLabel: "On Going", wantStyle: "bg-green-200/20 text-green-100"},
		{status: "Completed", wantLabel: "Completed", wantStyle: "bg-green-500/20 text-green-400"},
		{status: "Expired", wantLabel: "Expired", wantStyle: "bg-gray-500/20 text-gray-400"},
		{status: "Rejected", wantLabel: "Rejected", wantStyle: "bg-red-500/20 text-red-400"},
		{status: "Deleted", wantLabel: "Deleted", wantStyle: "bg-red-200/20 text-red-100"},
		{status: "Archived", wantLabel: "Archived", wantStyle: "bg-gray-500/20 text-gray-400"},
		{status: "", wantLabel: "", wantStyle: "bg-gray-500/20 text-gray-400"},
		{status: "pending", wantLabel: "pending", wantStyle: "bg-gray-500/20 text-gray-400"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			label, style := model.Badge(tt.status)

			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantStyle, style)
		})
	}
}

func TestBadge_KnownStatusesAreDistinct(t *testing.T) {
	seen := map[[2]string]string{}

	for _, status := range model.Statuses {
		label, style := model.Badge(status)
		key := [2]string{label, style}

		if other, ok := seen[key]; ok {
			t.Fatalf("%s and %s render the same badge", status, other)
		}

		seen[key] = status
		assert.True(t, model.IsKnownStatus(status))
	}

	assert.False(t, model.IsKnownStatus("Archived"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "All Status", model.StatusLabel("All"))
	assert.Equal(t, "On Going", model.StatusLabel("OnGoing"))
	assert.Equal(t, "Rejected", model.StatusLabel("Rejected"))
}

func TestBooking_RoomName(t *testing.T) {
	assert.Equal(t, "Aula", model.Booking{Room: &model.RoomRef{ID: 2, Name: "Aula"}}.RoomName())
	assert.Empty(t, model.Booking{}.RoomName())
}

func TestBooking_BookedRoomID(t *testing.T) {
	roomID := 3

	tests := []struct {
		name    string
		booking model.Booking
		wantID  int
		wantOK  bool
	}{
		{name: "room id", booking: model.Booking{RoomID: &roomID}, wantID: 3, wantOK: true},
		{name: "embedded room", booking: model.Booking{Room: &model.RoomRef{ID: 5, Name: "Lab"}}, wantID: 5, wantOK: true},
		{name: "room id wins", booking: model.Booking{RoomID: &roomID, Room: &model.RoomRef{ID: 5}}, wantID: 3, wantOK: true},
		{name: "missing", booking: model.Booking{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.booking.BookedRoomID()

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestItemPath(t *testing.T) {
	assert.Equal(t, "/bookings/12", model.ItemPath(12))
}
