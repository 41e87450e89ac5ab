package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type bookingSweeper interface {
	SweepElapsed(ctx context.Context) (int64, error)
}

// Sweeper periodically runs the elapsed-booking sweep so bookings reach
// Completed even when nobody loads their booking list.
type Sweeper struct {
	bookings bookingSweeper
	interval time.Duration
}

func New(bookings bookingSweeper, interval time.Duration) *Sweeper {
	return &Sweeper{bookings: bookings, interval: interval}
}

// Start blocks until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Msg("sweeper started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	completed, err := s.bookings.SweepElapsed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to sweep elapsed bookings")
		return
	}
	if completed > 0 {
		log.Info().Int64("count", completed).Msg("elapsed bookings completed")
	}
}
