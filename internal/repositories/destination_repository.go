package repositories

import (
	"errors"

	"gorm.io/gorm"

	"wistara_backend/internal/models"
)

var ErrDestinationNotFound = errors.New("destination not found")

const featuredLimit = 12

type DestinationRepository interface {
	CreateDestination(db *gorm.DB, destination *models.Destination) error
	FindByID(db *gorm.DB, id string) (*models.Destination, error)
	FindAll(db *gorm.DB) ([]models.Destination, error)
	FindByRegion(db *gorm.DB, region string) ([]models.Destination, error)
	FindByCategory(db *gorm.DB, category string) ([]models.Destination, error)
	FindFeatured(db *gorm.DB) ([]models.Destination, error)
	ExistsByID(db *gorm.DB, id string) (bool, error)
	UpdateRating(db *gorm.DB, id string, rating float64) error
	CountDestinations(db *gorm.DB) (int64, error)
}

type DestinationRepositoryImpl struct{}

func NewDestinationRepository() DestinationRepository {
	return &DestinationRepositoryImpl{}
}

func (r *DestinationRepositoryImpl) CreateDestination(db *gorm.DB, destination *models.Destination) error {
	return db.Create(destination).Error
}

func (r *DestinationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Destination, error) {
	var destination models.Destination
	err := db.First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return &destination, nil
}

func (r *DestinationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Destination, error) {
	var destinations []models.Destination
	err := db.Order("name ASC").Find(&destinations).Error
	return destinations, err
}

func (r *DestinationRepositoryImpl) FindByRegion(db *gorm.DB, region string) ([]models.Destination, error) {
	var destinations []models.Destination
	err := db.Where("region = ?", region).Order("name ASC").Find(&destinations).Error
	return destinations, err
}

func (r *DestinationRepositoryImpl) FindByCategory(db *gorm.DB, category string) ([]models.Destination, error) {
	var destinations []models.Destination
	err := db.Where("category = ?", category).Order("name ASC").Find(&destinations).Error
	return destinations, err
}

func (r *DestinationRepositoryImpl) FindFeatured(db *gorm.DB) ([]models.Destination, error) {
	var destinations []models.Destination
	err := db.Order("likes DESC").Limit(featuredLimit).Find(&destinations).Error
	return destinations, err
}

func (r *DestinationRepositoryImpl) ExistsByID(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.Destination{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DestinationRepositoryImpl) UpdateRating(db *gorm.DB, id string, rating float64) error {
	result := db.Model(&models.Destination{}).Where("id = ?", id).Update("rating", rating)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDestinationNotFound
	}
	return nil
}

func (r *DestinationRepositoryImpl) CountDestinations(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Destination{}).Count(&count).Error
	return count, err
}
