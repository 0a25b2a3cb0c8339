package dto

import (
	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
)

type BookingResponse struct {
	ID   int64        `json:"id"`
	Room RoomResponse `json:"Room"`
}

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  int64  `json:"hotelId"`
}

// BookingIDResponse is the payload for create and edit: the booking id only.
type BookingIDResponse struct {
	ID int64 `json:"id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(d *domain.BookingDetails) BookingResponse {
	return BookingResponse{
		ID: d.ID,
		Room: RoomResponse{
			ID:       d.Room.ID,
			Name:     d.Room.Name,
			Capacity: d.Room.Capacity,
			HotelID:  d.Room.HotelID,
		},
	}
}
