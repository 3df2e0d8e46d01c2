package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"wistara_backend/internal/cache"
	"wistara_backend/internal/logger"
	"wistara_backend/internal/repositories"
	"wistara_backend/pkg/apperrors"
)

// recomputeAttempts bounds how many times a failed aggregation is retried
// before the error is surfaced. The committed review is never rolled back.
const recomputeAttempts = 3

type RatingService interface {
	Recompute(ctx context.Context, db *gorm.DB, destinationID string) (float64, error)
	GetStats(ctx context.Context, db *gorm.DB, destinationID string) (float64, int64, error)
}

type RatingServiceImpl struct {
	reviewRepo      repositories.ReviewRepository
	destinationRepo repositories.DestinationRepository
	ratingCache     cache.RatingCache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRatingService(
	reviewRepo repositories.ReviewRepository,
	destinationRepo repositories.DestinationRepository,
	ratingCache cache.RatingCache,
) RatingService {
	return &RatingServiceImpl{
		reviewRepo:      reviewRepo,
		destinationRepo: destinationRepo,
		ratingCache:     ratingCache,
		locks:           make(map[string]*sync.Mutex),
	}
}

// lockFor serializes recomputation per destination so concurrent review
// mutations cannot interleave their average-then-write sequences. The map
// holds at most one mutex per destination slug, so its size is bounded by
// the catalog and entries are never evicted.
func (s *RatingServiceImpl) lockFor(destinationID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[destinationID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[destinationID] = lock
	}
	return lock
}

// Recompute recalculates the destination's average rating from its reviews
// and persists it. Destinations with no reviews are reset to 0. Failures are
// retried a bounded number of times; if all attempts fail, the stored rating
// keeps its previous value and an aggregation error is returned.
func (s *RatingServiceImpl) Recompute(ctx context.Context, db *gorm.DB, destinationID string) (float64, error) {
	lock := s.lockFor(destinationID)
	lock.Lock()
	defer lock.Unlock()

	var lastErr error
	for attempt := 1; attempt <= recomputeAttempts; attempt++ {
		avg, err := s.recomputeOnce(db, destinationID)
		if err == nil {
			s.refreshCache(ctx, db, destinationID, avg)
			return avg, nil
		}
		lastErr = err
		logger.CtxWarn(ctx, "rating recompute attempt failed",
			"destination_id", destinationID,
			"attempt", attempt,
			"error", err,
		)
	}

	logger.CtxError(ctx, "rating recompute exhausted retries",
		"destination_id", destinationID,
		"attempts", recomputeAttempts,
		"error", lastErr,
	)
	return 0, apperrors.ErrAggregationFailed(lastErr, destinationID)
}

func (s *RatingServiceImpl) recomputeOnce(db *gorm.DB, destinationID string) (float64, error) {
	avg, err := s.reviewRepo.CalculateDestinationRating(db, destinationID)
	if err != nil {
		return 0, err
	}
	if err := s.destinationRepo.UpdateRating(db, destinationID, avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func (s *RatingServiceImpl) refreshCache(ctx context.Context, db *gorm.DB, destinationID string, avg float64) {
	if s.ratingCache == nil {
		return
	}
	total, err := s.reviewRepo.CountReviewsByDestination(db, destinationID)
	if err != nil {
		// Cache refresh is best effort; a stale entry expires on its own.
		if cacheErr := s.ratingCache.Invalidate(ctx, destinationID); cacheErr != nil {
			logger.CtxWarn(ctx, "rating cache invalidation failed", "destination_id", destinationID, "error", cacheErr)
		}
		return
	}
	stats := &cache.RatingStats{AverageRating: avg, TotalReviews: total}
	if err := s.ratingCache.Set(ctx, destinationID, stats); err != nil {
		logger.CtxWarn(ctx, "rating cache update failed", "destination_id", destinationID, "error", err)
	}
}

// GetStats returns the current average rating and review count, served from
// the cache when possible.
func (s *RatingServiceImpl) GetStats(ctx context.Context, db *gorm.DB, destinationID string) (float64, int64, error) {
	if s.ratingCache != nil {
		if stats, ok, err := s.ratingCache.Get(ctx, destinationID); err == nil && ok {
			return stats.AverageRating, stats.TotalReviews, nil
		}
	}

	avg, err := s.reviewRepo.CalculateDestinationRating(db, destinationID)
	if err != nil {
		return 0, 0, apperrors.InternalError(err)
	}
	total, err := s.reviewRepo.CountReviewsByDestination(db, destinationID)
	if err != nil {
		return 0, 0, apperrors.InternalError(err)
	}

	if s.ratingCache != nil {
		stats := &cache.RatingStats{AverageRating: avg, TotalReviews: total}
		if err := s.ratingCache.Set(ctx, destinationID, stats); err != nil {
			logger.CtxWarn(ctx, "rating cache update failed", "destination_id", destinationID, "error", err)
		}
	}
	return avg, total, nil
}
