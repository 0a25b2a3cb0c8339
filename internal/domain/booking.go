package domain

import "time"

type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingDetails is the read model for a user's current reservation:
// the booking id plus a summary of the occupied room.
type BookingDetails struct {
	ID   int64 `json:"id"`
	Room Room  `json:"Room"`
}

type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  int64  `json:"hotelId"`
}

// RoomOccupancy is the audit readout of a room's booking load.
type RoomOccupancy struct {
	RoomID   int64
	Name     string
	Capacity int
	Booked   int
}
