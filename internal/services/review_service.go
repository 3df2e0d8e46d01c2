package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wistara_backend/internal/logger"
	"wistara_backend/internal/models"
	"wistara_backend/internal/pagination"
	"wistara_backend/internal/repositories"
	"wistara_backend/internal/services/dto"
	"wistara_backend/pkg/apperrors"
)

// ReviewPageSize is the fixed page size for destination review listings.
const ReviewPageSize = 3

type ReviewService interface {
	CreateReview(ctx context.Context, db *gorm.DB, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReview(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error)
	GetDestinationReviews(ctx context.Context, db *gorm.DB, destinationID string, page int) (*dto.ReviewListResponse, error)
	GetAuthorReviews(db *gorm.DB, authorID string) ([]dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, db *gorm.DB, reviewID, authorID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, db *gorm.DB, reviewID, authorID string) error
	GetDestinationRatingStats(ctx context.Context, db *gorm.DB, destinationID string) (*dto.RatingStatsResponse, error)
}

type ReviewServiceImpl struct {
	reviewRepo      repositories.ReviewRepository
	destinationRepo repositories.DestinationRepository
	ratingService   RatingService
	generator       GeneratorService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	destinationRepo repositories.DestinationRepository,
	ratingService RatingService,
	generator GeneratorService,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:      reviewRepo,
		destinationRepo: destinationRepo,
		ratingService:   ratingService,
		generator:       generator,
	}
}

// CreateReview persists the review and then recomputes the destination
// rating. The review stays committed even when recomputation fails; the
// aggregation error is surfaced so the client knows the stored average may
// lag.
func (s *ReviewServiceImpl) CreateReview(ctx context.Context, db *gorm.DB, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	exists, err := s.destinationRepo.ExistsByID(db, req.DestinationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(repositories.ErrDestinationNotFound)
	}

	review := &models.Review{
		DestinationID: req.DestinationID,
		AuthorID:      authorID,
		Text:          req.Text,
		Rating:        req.Rating,
	}
	if err := s.reviewRepo.CreateReview(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.ratingService.Recompute(ctx, db, req.DestinationID); err != nil {
		return nil, err
	}

	created, err := s.reviewRepo.FindReviewByID(db, review.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToReviewResponse(created)
	return &resp, nil
}

func (s *ReviewServiceImpl) GetReview(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindReviewByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToReviewResponse(review)
	return &resp, nil
}

// GetDestinationReviews lists reviews newest first, three per page. A
// destination that exists but has no reviews is backfilled with synthetic
// ones before the first page is served, so listings are never empty.
func (s *ReviewServiceImpl) GetDestinationReviews(ctx context.Context, db *gorm.DB, destinationID string, page int) (*dto.ReviewListResponse, error) {
	destination, err := s.destinationRepo.FindByID(db, destinationID)
	if err != nil {
		if errors.Is(err, repositories.ErrDestinationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindReviewsByDestination(db, destinationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(reviews) == 0 && s.generator != nil {
		reviews, err = s.generator.BackfillDestination(ctx, db, destination)
		if err != nil {
			logger.CtxWarn(ctx, "synthetic backfill failed, serving empty listing",
				"destination_id", destinationID,
				"error", err,
			)
			reviews = nil
		}
	}

	pageResult := pagination.Paginate(reviews, ReviewPageSize, page)
	return &dto.ReviewListResponse{
		Reviews:    dto.ToReviewResponses(pageResult.Items),
		Total:      int64(len(reviews)),
		Page:       pageResult.Page,
		PageSize:   ReviewPageSize,
		TotalPages: pageResult.TotalPages,
	}, nil
}

func (s *ReviewServiceImpl) GetAuthorReviews(db *gorm.DB, authorID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindReviewsByAuthor(db, authorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToReviewResponses(reviews), nil
}

// UpdateReview applies partial changes after checking that the caller is the
// review's author. The rating is only recomputed when the review's rating
// actually changed.
func (s *ReviewServiceImpl) UpdateReview(ctx context.Context, db *gorm.DB, reviewID, authorID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindReviewByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if review.AuthorID != authorID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	ratingChanged := false
	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		ratingChanged = true
	}

	if err := s.reviewRepo.UpdateReview(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if ratingChanged {
		if _, err := s.ratingService.Recompute(ctx, db, review.DestinationID); err != nil {
			return nil, err
		}
	}

	resp := dto.ToReviewResponse(review)
	return &resp, nil
}

// DeleteReview removes the review after the ownership check and recomputes
// the destination rating from the remaining reviews.
func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, db *gorm.DB, reviewID, authorID string) error {
	review, err := s.reviewRepo.FindReviewByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if review.AuthorID != authorID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.reviewRepo.DeleteReview(db, reviewID); err != nil {
		return apperrors.InternalError(err)
	}

	if _, err := s.ratingService.Recompute(ctx, db, review.DestinationID); err != nil {
		return err
	}
	return nil
}

func (s *ReviewServiceImpl) GetDestinationRatingStats(ctx context.Context, db *gorm.DB, destinationID string) (*dto.RatingStatsResponse, error) {
	exists, err := s.destinationRepo.ExistsByID(db, destinationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(repositories.ErrDestinationNotFound)
	}

	avg, total, err := s.ratingService.GetStats(ctx, db, destinationID)
	if err != nil {
		return nil, err
	}
	return &dto.RatingStatsResponse{
		DestinationID: destinationID,
		AverageRating: avg,
		TotalReviews:  total,
	}, nil
}
