package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/qazaqkitap/qazaqkitap/internal/assets"
)

// CheckAssetsTask verifies that every catalog row's cover and PDF exist
// under the upload directories.
type CheckAssetsTask struct {
	// RequestedBy records which user triggered the run, for the log only.
	RequestedBy uint `json:"requested_by"`
}

// Config returns the queue configuration for asset check tasks.
func (t CheckAssetsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "check_assets",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CheckAssetsProcessor creates a processor function for CheckAssetsTask.
func CheckAssetsProcessor(checker *assets.Checker) backlite.QueueProcessor[CheckAssetsTask] {
	return func(ctx context.Context, task CheckAssetsTask) error {
		if checker == nil {
			return fmt.Errorf("asset checker not configured")
		}

		report, err := checker.Check()
		if err != nil {
			return fmt.Errorf("check assets: %w", err)
		}

		if report.OK() {
			log.Printf("[TASK] Asset check: %d books verified, no missing files", report.BooksChecked)
			return nil
		}

		for _, missing := range report.Missing {
			log.Printf("[TASK] Asset check: book %d (%s) missing %s file %s",
				missing.BookID, missing.Title, missing.Kind, missing.Path)
		}
		log.Printf("[TASK] Asset check: %d books verified, %d files missing",
			report.BooksChecked, len(report.Missing))

		return nil
	}
}

// NewCheckAssetsQueue creates a backlite queue for asset check tasks.
func NewCheckAssetsQueue(checker *assets.Checker) backlite.Queue {
	return backlite.NewQueue(CheckAssetsProcessor(checker))
}
