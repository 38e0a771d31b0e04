package dto

import (
	"net/http"
	"strconv"
	"strings"

	"bookspace/internal/domains/booking/model"
	"bookspace/shared"
	"bookspace/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	InputBorrowerName = "borrowerName"
	InputRoomID       = "roomId"
	InputStartTime    = "startTime"
	InputEndTime      = "endTime"
)

// BookingForm is the raw text of the booking form. Times are datetime-local
// values in the application timezone.
type BookingForm struct {
	BorrowerName string
	RoomID       string
	StartTime    string
	EndTime      string
}

func (f *BookingForm) FromRequest(r *http.Request) {
	f.BorrowerName = r.PostFormValue(InputBorrowerName)
	f.RoomID = r.PostFormValue(InputRoomID)
	f.StartTime = r.PostFormValue(InputStartTime)
	f.EndTime = r.PostFormValue(InputEndTime)
}

// FromModel fills the edit form from a loaded booking.
func (f *BookingForm) FromModel(booking model.Booking) {
	f.BorrowerName = booking.BorrowerName

	f.RoomID = ""
	if id, ok := booking.BookedRoomID(); ok {
		f.RoomID = strconv.Itoa(id)
	}

	f.StartTime = timezone.ToDateTimeLocal(booking.StartTime)
	f.EndTime = timezone.ToDateTimeLocal(booking.EndTime)
}

// Values keys the form text by API field name.
func (f BookingForm) Values() map[string]string {
	return map[string]string{
		model.FieldBorrowerName: f.BorrowerName,
		model.FieldRoomID:       f.RoomID,
		model.FieldStartTime:    f.StartTime,
		model.FieldEndTime:      f.EndTime,
	}
}

func (f BookingForm) ToCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		BorrowerName: f.BorrowerName,
		RoomID:       shared.ConvertStringToInt(f.RoomID),
		StartTime:    toISO(f.StartTime),
		EndTime:      toISO(f.EndTime),
	}
}

func (f BookingForm) ToUpdateRequest() UpdateBookingRequest {
	return UpdateBookingRequest{
		RoomID:    shared.ConvertStringToInt(f.RoomID),
		StartTime: toISO(f.StartTime),
		EndTime:   toISO(f.EndTime),
	}
}

// CreateBookingRequest is the body of POST /bookings. Missing or unparseable
// inputs are sent as null and left for the API to report.
type CreateBookingRequest struct {
	BorrowerName string  `json:"borrowerName"`
	RoomID       *int    `json:"roomId"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
}

// UpdateBookingRequest is the body of PUT /bookings/{id}. The borrower is fixed
// once a booking exists.
type UpdateBookingRequest struct {
	RoomID    *int    `json:"roomId"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

func toISO(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	iso, err := timezone.ToISO(value)
	if err != nil {
		log.Debug().Err(err).Msg("failed to convert date time")

		return nil
	}

	return &iso
}
