package ports

import (
	"context"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
)

type TicketRepo interface {
	FindEnrollmentByUser(ctx context.Context, userID int64) (*domain.Enrollment, error)
	FindTicketByEnrollment(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}
