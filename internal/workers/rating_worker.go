package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wistara_backend/internal/logger"
)

// RatingWorker periodically reconciles stored destination ratings against the
// review table. It is a safety net for recomputations that exhausted their
// retries; under normal operation it finds nothing to repair.
type RatingWorker struct {
	db       *gorm.DB
	interval time.Duration
}

func NewRatingWorker(db *gorm.DB, interval time.Duration) *RatingWorker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &RatingWorker{db: db, interval: interval}
}

func (w *RatingWorker) Start(ctx context.Context) {
	go w.reconcileRatings(ctx)
}

func (w *RatingWorker) reconcileRatings(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("rating reconciliation worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE destinations
				SET rating = COALESCE(
					(SELECT AVG(r.rating) FROM reviews r WHERE r.destination_id = destinations.id),
					0
				),
				updated_at = NOW()
				WHERE rating IS DISTINCT FROM COALESCE(
					(SELECT AVG(r.rating) FROM reviews r WHERE r.destination_id = destinations.id),
					0
				)
			`)
			if result.Error != nil {
				logger.Error("rating reconciliation failed", "error", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Warn("reconciled drifted destination ratings", "count", result.RowsAffected)
			}
		}
	}
}
