// Package scheduler runs the periodic catalog asset verification.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/qazaqkitap/qazaqkitap/internal/assets"
)

// AssetCheckScheduler runs the asset checker on a cron schedule and logs
// any catalog rows whose cover or PDF has gone missing from disk.
type AssetCheckScheduler struct {
	checker  *assets.Checker
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAssetCheckScheduler creates a new scheduler instance.
func NewAssetCheckScheduler(checker *assets.Checker, schedule string) *AssetCheckScheduler {
	return &AssetCheckScheduler{
		checker:  checker,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *AssetCheckScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runCheck()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule asset check '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Asset check scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running check.
func (s *AssetCheckScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Asset check scheduler: stopped")
}

// RunNow triggers an immediate check.
func (s *AssetCheckScheduler) RunNow() {
	go s.runCheck()
}

// IsRunning returns whether the scheduler is active.
func (s *AssetCheckScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next check will occur.
func (s *AssetCheckScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *AssetCheckScheduler) runCheck() {
	start := time.Now()

	report, err := s.checker.Check()
	if err != nil {
		log.Printf("Asset check: failed: %v", err)
		return
	}

	if report.OK() {
		log.Printf("Asset check: %d books verified in %v, no missing files",
			report.BooksChecked, time.Since(start).Round(time.Millisecond))
		return
	}

	for _, missing := range report.Missing {
		log.Printf("Asset check: book %d (%s) missing %s file %s",
			missing.BookID, missing.Title, missing.Kind, missing.Path)
	}
	log.Printf("Asset check: %d books verified in %v, %d files missing",
		report.BooksChecked, time.Since(start).Round(time.Millisecond), len(report.Missing))
}
