package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
)

// OfferSweeper periodically deactivates offers whose expiry has passed, so that
// the admin list reflects what the public menu already hides.
type OfferSweeper struct {
	BaseService
	offerRepo portsrepo.OfferLifecycleManager
	logger    *slog.Logger
	cron      *cron.Cron
}

// NewOfferSweeper creates a sweeper. Call Start to schedule it.
func NewOfferSweeper(repo portsrepo.OfferLifecycleManager, logger *slog.Logger, options ...ServiceOption) *OfferSweeper {
	sw := &OfferSweeper{
		offerRepo: repo,
		logger:    logger.With(slog.String("component", "offer_sweeper")),
	}
	sw.apply(options)
	return sw
}

// Sweep runs one deactivation pass and returns the number of offers changed.
func (s *OfferSweeper) Sweep(ctx context.Context) (int64, error) {
	count, err := s.offerRepo.DeactivateExpiredOffers(ctx, s.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired offers: %w", err)
	}
	return count, nil
}

// Start schedules Sweep using a standard cron spec or descriptor such as "@hourly".
// An empty schedule leaves the sweeper disabled.
func (s *OfferSweeper) Start(schedule string) error {
	if schedule == "" {
		s.logger.Info("Offer sweep disabled")
		return nil
	}

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		count, err := s.Sweep(context.Background())
		if err != nil {
			s.logger.Error("Offer sweep failed", slog.String("error", err.Error()))
			return
		}
		if count > 0 {
			s.logger.Info("Expired offers deactivated", slog.Int64("count", count))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid offer sweep schedule %q: %w", schedule, err)
	}

	s.cron = c
	c.Start()
	s.logger.Info("Offer sweep scheduled", slog.String("schedule", schedule))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *OfferSweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}
