package service

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher re-warms the quote cache for held tickers on a schedule so
// the dashboard stays within the cache's staleness bound even when no
// client is polling.
type Refresher struct {
	portfolioService *PortfolioService
	cron             *cron.Cron
}

// NewRefresher creates a Refresher for the given portfolio.
func NewRefresher(portfolioService *PortfolioService) *Refresher {
	return &Refresher{
		portfolioService: portfolioService,
		cron:             cron.New(),
	}
}

// Start registers the refresh job with the given cron schedule and
// starts the scheduler.
func (r *Refresher) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, r.refresh)
	if err != nil {
		return err
	}
	r.cron.Start()
	log.Printf("Quote refresh scheduled: %s", schedule)
	return nil
}

// Stop stops the scheduler, waiting for a running job to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// refresh batch-fetches quotes for all holdings plus the forex rate.
// GetSummary already does exactly that and populates the cache as a
// side effect; the computed summary is discarded.
func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := r.portfolioService.GetSummary(ctx); err != nil {
		log.Printf("Quote refresh failed: %v", err)
	}
}
