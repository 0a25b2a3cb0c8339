package scheduler

import (
	"context"
	"time"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type occupancyAuditor interface {
	OverbookedRooms(ctx context.Context) ([]domain.RoomOccupancy, error)
}

// Scheduler periodically audits room occupancy. Capacity is enforced at
// write time, but rows written before that guard existed (or out of band)
// can still exceed capacity; the audit surfaces them.
type Scheduler struct {
	bookingService occupancyAuditor
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService occupancyAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("occupancy auditor started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("occupancy auditor stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	rooms, err := s.bookingService.OverbookedRooms(ctx)
	if err != nil {
		s.logger.Error("failed to audit room occupancy",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, room := range rooms {
		s.logger.Warn("room over capacity",
			logger.Int64("room_id", room.RoomID),
			logger.String("room", room.Name),
			logger.Int("capacity", room.Capacity),
			logger.Int("booked", room.Booked),
		)
	}
}
