package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
	"github.com/ArturFariaVieira/drivent-s4/internal/handler/dto"
	"github.com/ArturFariaVieira/drivent-s4/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	CheckHotelEligibility(ctx context.Context, userID int64) error
	GetBooking(ctx context.Context, userID int64) (*domain.BookingDetails, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	EditBooking(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

func (h *Handler) GetBooking(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	if err := h.bookingService.CheckHotelEligibility(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	var req dto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{ID: booking.ID})
}

func (h *Handler) EditBooking(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.EditBooking(c.Request.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{ID: booking.ID})
}

// handleError maps every domain error to its status; anything outside the
// known set is an infrastructure fault and answers 500.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
