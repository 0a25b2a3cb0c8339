package ports

import (
	"context"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
)

type BookingRepo interface {
	FindByUser(ctx context.Context, userID int64) (*domain.BookingDetails, error)
	FindRoom(ctx context.Context, roomID int64) (*domain.Room, error)
	CountByRoom(ctx context.Context, roomID int64) (int, error)
	Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error)
	OverbookedRooms(ctx context.Context) ([]domain.RoomOccupancy, error)
}
