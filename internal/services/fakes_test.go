package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wistara_backend/internal/cache"
	"wistara_backend/internal/models"
	"wistara_backend/internal/repositories"
)

// In-memory repository fakes. The *gorm.DB argument is part of the repository
// contract but unused here; tests pass nil.

type fakeReviewRepo struct {
	reviews map[string]*models.Review

	// failCalculations makes the next N aggregate queries fail, for
	// exercising the bounded retry path.
	failCalculations int
	calculateCalls   int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewRepo) CreateReview(_ *gorm.DB, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) CreateReviewsInBatches(db *gorm.DB, reviews []models.Review, _ int) error {
	for i := range reviews {
		if err := f.CreateReview(db, &reviews[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeReviewRepo) FindReviewByID(_ *gorm.DB, id string) (*models.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) FindReviewsByDestination(_ *gorm.DB, destinationID string) ([]models.Review, error) {
	var result []models.Review
	for _, review := range f.reviews {
		if review.DestinationID == destinationID {
			result = append(result, *review)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (f *fakeReviewRepo) FindReviewsByAuthor(_ *gorm.DB, authorID string) ([]models.Review, error) {
	var result []models.Review
	for _, review := range f.reviews {
		if review.AuthorID == authorID {
			result = append(result, *review)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeReviewRepo) CountReviewsByDestination(_ *gorm.DB, destinationID string) (int64, error) {
	var count int64
	for _, review := range f.reviews {
		if review.DestinationID == destinationID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReviewRepo) CountReviews(_ *gorm.DB) (int64, error) {
	return int64(len(f.reviews)), nil
}

func (f *fakeReviewRepo) UpdateReview(_ *gorm.DB, review *models.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return repositories.ErrReviewNotFound
	}
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) DeleteReview(_ *gorm.DB, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return repositories.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) CalculateDestinationRating(_ *gorm.DB, destinationID string) (float64, error) {
	f.calculateCalls++
	if f.failCalculations > 0 {
		f.failCalculations--
		return 0, errors.New("aggregate query failed")
	}

	var sum float64
	var count int
	for _, review := range f.reviews {
		if review.DestinationID == destinationID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

type fakeDestinationRepo struct {
	destinations map[string]*models.Destination
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{destinations: make(map[string]*models.Destination)}
}

func (f *fakeDestinationRepo) add(id, name, region string) *models.Destination {
	destination := &models.Destination{ID: id, Name: name, Region: region}
	f.destinations[id] = destination
	return destination
}

func (f *fakeDestinationRepo) CreateDestination(_ *gorm.DB, destination *models.Destination) error {
	stored := *destination
	f.destinations[destination.ID] = &stored
	return nil
}

func (f *fakeDestinationRepo) FindByID(_ *gorm.DB, id string) (*models.Destination, error) {
	destination, ok := f.destinations[id]
	if !ok {
		return nil, repositories.ErrDestinationNotFound
	}
	copied := *destination
	return &copied, nil
}

func (f *fakeDestinationRepo) FindAll(_ *gorm.DB) ([]models.Destination, error) {
	result := make([]models.Destination, 0, len(f.destinations))
	for _, destination := range f.destinations {
		result = append(result, *destination)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeDestinationRepo) FindByRegion(db *gorm.DB, region string) ([]models.Destination, error) {
	all, _ := f.FindAll(db)
	var result []models.Destination
	for _, destination := range all {
		if destination.Region == region {
			result = append(result, destination)
		}
	}
	return result, nil
}

func (f *fakeDestinationRepo) FindByCategory(db *gorm.DB, category string) ([]models.Destination, error) {
	all, _ := f.FindAll(db)
	var result []models.Destination
	for _, destination := range all {
		if destination.Category == category {
			result = append(result, destination)
		}
	}
	return result, nil
}

func (f *fakeDestinationRepo) FindFeatured(db *gorm.DB) ([]models.Destination, error) {
	return f.FindAll(db)
}

func (f *fakeDestinationRepo) ExistsByID(_ *gorm.DB, id string) (bool, error) {
	_, ok := f.destinations[id]
	return ok, nil
}

func (f *fakeDestinationRepo) UpdateRating(_ *gorm.DB, id string, rating float64) error {
	destination, ok := f.destinations[id]
	if !ok {
		return repositories.ErrDestinationNotFound
	}
	destination.Rating = rating
	return nil
}

func (f *fakeDestinationRepo) CountDestinations(_ *gorm.DB) (int64, error) {
	return int64(len(f.destinations)), nil
}

type fakeRatingCache struct {
	entries         map[string]cache.RatingStats
	setCalls        int
	invalidateCalls int
}

var _ cache.RatingCache = (*fakeRatingCache)(nil)

func newFakeRatingCache() *fakeRatingCache {
	return &fakeRatingCache{entries: make(map[string]cache.RatingStats)}
}

func (f *fakeRatingCache) Get(_ context.Context, destinationID string) (*cache.RatingStats, bool, error) {
	stats, ok := f.entries[destinationID]
	if !ok {
		return nil, false, nil
	}
	copied := stats
	return &copied, true, nil
}

func (f *fakeRatingCache) Set(_ context.Context, destinationID string, stats *cache.RatingStats) error {
	f.setCalls++
	f.entries[destinationID] = *stats
	return nil
}

func (f *fakeRatingCache) Invalidate(_ context.Context, destinationID string) error {
	f.invalidateCalls++
	delete(f.entries, destinationID)
	return nil
}

type fakeUserRepo struct {
	users []models.User
}

func newFakeUserRepo(usernames ...string) *fakeUserRepo {
	repo := &fakeUserRepo{}
	for _, username := range usernames {
		repo.users = append(repo.users, models.User{
			BaseModel: models.BaseModel{ID: uuid.NewString()},
			Name:      username,
			Username:  username,
			Email:     username + "@example.com",
			Role:      models.UserRoleUser,
		})
	}
	return repo
}

func (f *fakeUserRepo) CreateUser(_ *gorm.DB, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			copied := f.users[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			copied := f.users[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(_ *gorm.DB) ([]models.User, error) {
	result := make([]models.User, len(f.users))
	copy(result, f.users)
	return result, nil
}

func (f *fakeUserRepo) CountUsers(_ *gorm.DB) (int64, error) {
	return int64(len(f.users)), nil
}
