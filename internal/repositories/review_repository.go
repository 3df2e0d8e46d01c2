package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wistara_backend/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	CreateReviewsInBatches(db *gorm.DB, reviews []models.Review, batchSize int) error
	FindReviewByID(db *gorm.DB, id string) (*models.Review, error)
	FindReviewsByDestination(db *gorm.DB, destinationID string) ([]models.Review, error)
	FindReviewsByAuthor(db *gorm.DB, authorID string) ([]models.Review, error)
	CountReviewsByDestination(db *gorm.DB, destinationID string) (int64, error)
	CountReviews(db *gorm.DB) (int64, error)
	UpdateReview(db *gorm.DB, review *models.Review) error
	DeleteReview(db *gorm.DB, id string) error
	CalculateDestinationRating(db *gorm.DB, destinationID string) (float64, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) CreateReviewsInBatches(db *gorm.DB, reviews []models.Review, batchSize int) error {
	if len(reviews) == 0 {
		return nil
	}
	return db.CreateInBatches(reviews, batchSize).Error
}

func (r *ReviewRepositoryImpl) FindReviewByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("Author").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindReviewsByDestination returns reviews newest first, with the id as a
// tiebreaker so that rows created in the same instant keep a stable order.
func (r *ReviewRepositoryImpl) FindReviewsByDestination(db *gorm.DB, destinationID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Author").
		Where("destination_id = ?", destinationID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindReviewsByAuthor(db *gorm.DB, authorID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) CountReviewsByDestination(db *gorm.DB, destinationID string) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("destination_id = ?", destinationID).Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) CountReviews(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) UpdateReview(db *gorm.DB, review *models.Review) error {
	return db.Save(review).Error
}

func (r *ReviewRepositoryImpl) DeleteReview(db *gorm.DB, id string) error {
	result := db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// CalculateDestinationRating averages all review ratings for a destination.
// Destinations without reviews get 0, which the API treats as "not yet rated".
func (r *ReviewRepositoryImpl) CalculateDestinationRating(db *gorm.DB, destinationID string) (float64, error) {
	var avg float64
	err := db.Model(&models.Review{}).
		Where("destination_id = ?", destinationID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}
