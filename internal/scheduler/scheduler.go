package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the nightly maintenance jobs. All schedules are UTC
// because the quota ledger and quiz cache roll over at UTC midnight.
type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	sweepFunc  func(ctx context.Context) error
	warmupFunc func(ctx context.Context) error
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetSweepFunction sets the job that deletes expired quota rows.
func (s *Scheduler) SetSweepFunction(f func(ctx context.Context) error) {
	s.sweepFunc = f
}

// SetWarmupFunction sets the job that pre-generates the daily quiz so
// the first morning request hits the cache.
func (s *Scheduler) SetWarmupFunction(f func(ctx context.Context) error) {
	s.warmupFunc = f
}

func (s *Scheduler) Start() error {
	if s.sweepFunc != nil {
		// Shortly after UTC midnight, once yesterday's rows are out of
		// the retention window.
		_, err := s.cron.AddFunc("10 0 * * *", func() {
			log.Println("🕛 Triggered nightly quota sweep")
			if err := s.sweepFunc(s.ctx); err != nil {
				log.Printf("❌ Nightly quota sweep failed: %v", err)
			}
		})
		if err != nil {
			return err
		}
	}

	if s.warmupFunc != nil {
		_, err := s.cron.AddFunc("5 0 * * *", func() {
			log.Println("🕛 Triggered daily quiz warmup")
			if err := s.warmupFunc(s.ctx); err != nil {
				log.Printf("❌ Daily quiz warmup failed: %v", err)
			}
		})
		if err != nil {
			return err
		}
	}

	if s.sweepFunc == nil && s.warmupFunc == nil {
		log.Println("⚠️ No jobs configured, scheduler will not start")
		return nil
	}

	s.cron.Start()
	log.Println("📅 Scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
