package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/brewrain/brewrain-backend/internal/app/repository"
	"github.com/brewrain/brewrain-backend/pkg/logger"
)

// CartSweeper periodically evicts carts whose sessions went quiet. Carts
// only live for the page session; the sweep keeps abandoned ones from
// accumulating in memory.
type CartSweeper struct {
	cron     *cron.Cron
	cartRepo repository.CartRepository
	schedule string
	ttl      time.Duration
}

func NewCartSweeper(cartRepo repository.CartRepository, schedule string, ttl time.Duration) *CartSweeper {
	return &CartSweeper{
		cron:     cron.New(),
		cartRepo: cartRepo,
		schedule: schedule,
		ttl:      ttl,
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *CartSweeper) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		cutoff := time.Now().Add(-s.ttl)
		removed := s.cartRepo.DeleteIdleSince(cutoff)
		if removed > 0 {
			logger.Info("Swept abandoned session carts", map[string]interface{}{
				"removed": removed,
				"ttl":     s.ttl.String(),
			})
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for cart sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart sweeper started", map[string]interface{}{
		"schedule": s.schedule,
		"ttl":      s.ttl.String(),
	})
	return nil
}

// Stop halts the scheduler.
func (s *CartSweeper) Stop() {
	s.cron.Stop()
	logger.Info("Cart sweeper stopped", nil)
}
