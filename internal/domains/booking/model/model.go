package model

import (
	"fmt"

	"bookspace/shared/constant"
)

const (
	EntityName  = "booking"
	Path        = "/bookings"
	HistoryPath = "/histories"

	FieldBorrowerName = "BorrowerName"
	FieldRoomID       = "RoomId"
	FieldStartTime    = "StartTime"
	FieldEndTime      = "EndTime"
)

// CreateFields and EditFields list the inputs that can carry a field error.
var (
	CreateFields = []string{FieldBorrowerName, FieldRoomID, FieldStartTime, FieldEndTime}
	EditFields   = []string{FieldRoomID, FieldStartTime, FieldEndTime}
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusOnGoing   = "OnGoing"
	StatusCompleted = "Completed"
	StatusExpired   = "Expired"
	StatusRejected  = "Rejected"
	StatusDeleted   = "Deleted"
)

// Statuses is the order the status filter offers them in.
var Statuses = []string{
	StatusPending,
	StatusApproved,
	StatusOnGoing,
	StatusCompleted,
	StatusExpired,
	StatusRejected,
	StatusDeleted,
}

const styleNeutral = "bg-gray-500/20 text-gray-400"

type badge struct {
	label string
	style string
}

var badges = map[string]badge{
	StatusPending:   {label: "Pending", style: "bg-yellow-500/20 text-yellow-400"},
	StatusApproved:  {label: "Approved", style: "bg-blue-500/20 text-blue-400"},
	StatusOnGoing:   {label: "On Going", style: "bg-green-200/20 text-green-100"},
	StatusCompleted: {label: "Completed", style: "bg-green-500/20 text-green-400"},
	StatusExpired:   {label: "Expired", style: styleNeutral},
	StatusRejected:  {label: "Rejected", style: "bg-red-500/20 text-red-400"},
	StatusDeleted:   {label: "Deleted", style: "bg-red-200/20 text-red-100"},
}

// Badge maps a status to its display label and style classes. Unknown
// statuses keep their text and get the neutral style.
func Badge(status string) (label, style string) {
	if b, ok := badges[status]; ok {
		return b.label, b.style
	}

	return status, styleNeutral
}

func IsKnownStatus(status string) bool {
	_, ok := badges[status]

	return ok
}

// StatusLabel is the filter option text, "All Status" for the catch-all.
func StatusLabel(status string) string {
	if status == constant.DefaultValueStatus {
		return "All Status"
	}

	label, _ := Badge(status)

	return label
}

type RoomRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Booking struct {
	ID           int      `json:"id"           validate:"gt=0"`
	BorrowerName string   `json:"borrowerName"`
	RoomID       *int     `json:"roomId"`
	Room         *RoomRef `json:"room"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Status       string   `json:"status"`
}

// RoomName is the name of the booked room, empty when the API left it out.
func (b Booking) RoomName() string {
	if b.Room == nil {
		return constant.Empty
	}

	return b.Room.Name
}

// BookedRoomID prefers roomId and falls back to the embedded room.
func (b Booking) BookedRoomID() (int, bool) {
	if b.RoomID != nil {
		return *b.RoomID, true
	}

	if b.Room != nil && b.Room.ID > 0 {
		return b.Room.ID, true
	}

	return 0, false
}

func (b Booking) Badge() (label, style string) {
	return Badge(b.Status)
}

func ItemPath(id int) string {
	return fmt.Sprintf("%s/%d", Path, id)
}

func ID(booking Booking) int {
	return booking.ID
}
