package domain

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type Enrollment struct {
	ID     int64
	UserID int64
}

type TicketType struct {
	ID            int64
	Name          string
	IncludesHotel bool
	IsRemote      bool
}

type Ticket struct {
	ID           int64
	EnrollmentID int64
	Status       TicketStatus
	TicketType   TicketType
}
