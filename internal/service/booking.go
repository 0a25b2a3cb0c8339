package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
	"github.com/ArturFariaVieira/drivent-s4/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	ticketRepo  ports.TicketRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	ticketRepo ports.TicketRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		ticketRepo:  ticketRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// CheckHotelEligibility verifies that the user holds a paid, non-remote
// ticket whose plan includes a hotel stay.
func (s *BookingService) CheckHotelEligibility(ctx context.Context, userID int64) error {
	enrollment, err := s.ticketRepo.FindEnrollmentByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("find enrollment: %w", err)
	}

	ticket, err := s.ticketRepo.FindTicketByEnrollment(ctx, enrollment.ID)
	if err != nil {
		return fmt.Errorf("find ticket: %w", err)
	}

	if ticket.Status != domain.TicketStatusPaid ||
		!ticket.TicketType.IncludesHotel ||
		ticket.TicketType.IsRemote {
		return domain.ErrPaymentRequired
	}

	return nil
}

// GetBooking returns the user's current reservation with its room summary.
// Eligibility is not re-verified here; the HTTP layer checks it first.
func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}

	return booking, nil
}

// CheckRoomCapacity reports whether the room still has a free spot. A room
// at exactly full capacity is not available.
func (s *BookingService) CheckRoomCapacity(ctx context.Context, roomID int64) error {
	room, err := s.bookingRepo.FindRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}

	booked, err := s.bookingRepo.CountByRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}

	if booked >= room.Capacity {
		return domain.ErrRoomFull
	}

	return nil
}

func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	if err := s.CheckHotelEligibility(ctx, userID); err != nil {
		return nil, err
	}

	// Capacity is checked inside the insert transaction, so two concurrent
	// requests cannot both pass on a stale count.
	booking, err := s.bookingRepo.Create(ctx, userID, roomID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("user_id", userID),
		logger.Int64("room_id", roomID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) EditBooking(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error) {
	current, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		// Editing without a prior reservation is an authorization
		// failure, not a lookup failure.
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrNotBookingOwner
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	if current.ID != bookingID {
		return nil, domain.ErrNotBookingOwner
	}

	booking, err := s.bookingRepo.UpdateRoom(ctx, current.ID, roomID)
	if err != nil {
		return nil, fmt.Errorf("update booking room: %w", err)
	}

	s.logger.Info("booking moved",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("user_id", userID),
		logger.Int64("room_id", roomID),
	)

	go s.notifier.NotifyRoomChanged(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// OverbookedRooms lists rooms whose booking count exceeds capacity. Used by
// the occupancy auditor.
func (s *BookingService) OverbookedRooms(ctx context.Context) ([]domain.RoomOccupancy, error) {
	return s.bookingRepo.OverbookedRooms(ctx)
}
