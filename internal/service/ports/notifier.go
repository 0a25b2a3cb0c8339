package ports

import (
	"context"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking)
	NotifyRoomChanged(ctx context.Context, booking *domain.Booking)
}
