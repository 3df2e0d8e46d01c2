package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wistara_backend/internal/logger"
	"wistara_backend/internal/models"
	"wistara_backend/internal/repositories"
	"wistara_backend/internal/reviewgen"
	"wistara_backend/internal/services/dto"
	"wistara_backend/pkg/apperrors"
)

const (
	minSyntheticReviews = 3
	maxSyntheticReviews = 5

	minSeedReviewsPerUser = 10
	maxSeedReviewsPerUser = 20

	seedBatchSize = 100

	// backfillAgeDays spreads on-demand review timestamps over the recent
	// past so a fresh destination does not show N reviews from one instant.
	backfillAgeDays = 90
)

type GeneratorService interface {
	BackfillDestination(ctx context.Context, db *gorm.DB, destination *models.Destination) ([]models.Review, error)
	SeedReviews(ctx context.Context, db *gorm.DB) (*dto.SeedResult, error)
}

type GeneratorServiceImpl struct {
	reviewRepo      repositories.ReviewRepository
	destinationRepo repositories.DestinationRepository
	userRepo        repositories.UserRepository
	ratingService   RatingService

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewGeneratorService(
	reviewRepo repositories.ReviewRepository,
	destinationRepo repositories.DestinationRepository,
	userRepo repositories.UserRepository,
	ratingService RatingService,
) GeneratorService {
	return &GeneratorServiceImpl{
		reviewRepo:      reviewRepo,
		destinationRepo: destinationRepo,
		userRepo:        userRepo,
		ratingService:   ratingService,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BackfillDestination populates a destination that has no reviews with 3 to 5
// synthetic ones from distinct pseudo-authors, persists them, recomputes the
// rating, and returns the destination's review list. Each author pairs with a
// deterministic template, so repeated backfills of the same destination would
// produce the same texts.
func (s *GeneratorServiceImpl) BackfillDestination(ctx context.Context, db *gorm.DB, destination *models.Destination) ([]models.Review, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(users) == 0 {
		logger.CtxWarn(ctx, "no users available for synthetic backfill", "destination_id", destination.ID)
		return nil, nil
	}

	s.rngMu.Lock()
	count := minSyntheticReviews + s.rng.Intn(maxSyntheticReviews-minSyntheticReviews+1)
	if count > len(users) {
		count = len(users)
	}
	s.rng.Shuffle(len(users), func(i, j int) {
		users[i], users[j] = users[j], users[i]
	})

	now := time.Now()
	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		author := users[i]
		age := time.Duration(s.rng.Intn(backfillAgeDays*24)) * time.Hour
		reviews = append(reviews, models.Review{
			BaseModel: models.BaseModel{
				ID:        uuid.NewString(),
				CreatedAt: now.Add(-age),
			},
			DestinationID: destination.ID,
			AuthorID:      author.ID,
			Text:          reviewgen.OnDemandText(author.Username, destination.Name, i),
			Rating:        reviewgen.OnDemandRating(s.rng),
			Synthetic:     true,
		})
	}
	s.rngMu.Unlock()

	if err := s.reviewRepo.CreateReviewsInBatches(db, reviews, seedBatchSize); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.ratingService.Recompute(ctx, db, destination.ID); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "backfilled destination with synthetic reviews",
		"destination_id", destination.ID,
		"count", len(reviews),
	)

	persisted, err := s.reviewRepo.FindReviewsByDestination(db, destination.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return persisted, nil
}

// SeedReviews bulk-generates reviews for every user across random
// destinations: 10 to 20 per user, sentiment split roughly 60% positive, 30%
// neutral, 10% negative. Inserts go out in batches of 100 and affected
// destination ratings are recomputed once, after all inserts.
func (s *GeneratorServiceImpl) SeedReviews(ctx context.Context, db *gorm.DB) (*dto.SeedResult, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	destinations, err := s.destinationRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(users) == 0 || len(destinations) == 0 {
		return nil, apperrors.ErrInvalidOperation("generator", "seeding requires at least one user and one destination")
	}

	affected := make(map[string]struct{})
	batch := make([]models.Review, 0, seedBatchSize)
	created := 0
	now := time.Now()

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.reviewRepo.CreateReviewsInBatches(db, batch, seedBatchSize); err != nil {
			return apperrors.InternalError(err)
		}
		created += len(batch)
		batch = batch[:0]
		return nil
	}

	s.rngMu.Lock()
	for _, user := range users {
		count := minSeedReviewsPerUser + s.rng.Intn(maxSeedReviewsPerUser-minSeedReviewsPerUser+1)
		for i := 0; i < count; i++ {
			destination := destinations[s.rng.Intn(len(destinations))]
			sentiment := reviewgen.RollSentiment(s.rng)
			age := time.Duration(s.rng.Intn(365*24)) * time.Hour
			batch = append(batch, models.Review{
				BaseModel: models.BaseModel{
					ID:        uuid.NewString(),
					CreatedAt: now.Add(-age),
				},
				DestinationID: destination.ID,
				AuthorID:      user.ID,
				Text:          reviewgen.Fill(sentiment, s.rng, destination.Name, destination.Region),
				Rating:        reviewgen.RatingFor(sentiment, s.rng),
				Synthetic:     true,
			})
			affected[destination.ID] = struct{}{}

			if len(batch) == seedBatchSize {
				if err := flush(); err != nil {
					s.rngMu.Unlock()
					return nil, err
				}
			}
		}
	}
	s.rngMu.Unlock()

	if err := flush(); err != nil {
		return nil, err
	}

	for destinationID := range affected {
		if _, err := s.ratingService.Recompute(ctx, db, destinationID); err != nil {
			// Inserted reviews stay committed; the reconciliation worker
			// repairs any destination whose recompute failed here.
			logger.CtxError(ctx, "rating recompute failed after seeding",
				"destination_id", destinationID,
				"error", err,
			)
		}
	}

	logger.CtxInfo(ctx, "bulk review seeding finished",
		"users", len(users),
		"reviews_created", created,
		"destinations_affected", len(affected),
	)

	return &dto.SeedResult{
		UsersSeeded:          len(users),
		ReviewsCreated:       created,
		DestinationsAffected: len(affected),
	}, nil
}
