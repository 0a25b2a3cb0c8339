package domain

import "errors"

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

var (
	ErrPaymentRequired = errors.New("ticket is not paid or does not include hotel")
	ErrRoomFull        = errors.New("room is full")
	ErrNotBookingOwner = errors.New("booking does not belong to user")
)
