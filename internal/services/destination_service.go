package services

import (
	"errors"

	"gorm.io/gorm"

	"wistara_backend/internal/models"
	"wistara_backend/internal/repositories"
	"wistara_backend/internal/services/dto"
	"wistara_backend/pkg/apperrors"
)

type DestinationService interface {
	GetDestination(db *gorm.DB, destinationID string) (*dto.DestinationResponse, error)
	ListDestinations(db *gorm.DB, region, category string) (*dto.DestinationListResponse, error)
	GetFeaturedDestinations(db *gorm.DB) (*dto.DestinationListResponse, error)
}

type DestinationServiceImpl struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationService {
	return &DestinationServiceImpl{destinationRepo: destinationRepo}
}

func (s *DestinationServiceImpl) GetDestination(db *gorm.DB, destinationID string) (*dto.DestinationResponse, error) {
	destination, err := s.destinationRepo.FindByID(db, destinationID)
	if err != nil {
		if errors.Is(err, repositories.ErrDestinationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToDestinationResponse(destination)
	return &resp, nil
}

// ListDestinations filters by region or category when provided. Region wins
// when both are set.
func (s *DestinationServiceImpl) ListDestinations(db *gorm.DB, region, category string) (*dto.DestinationListResponse, error) {
	var found []models.Destination
	switch {
	case region != "":
		items, err := s.destinationRepo.FindByRegion(db, region)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		found = items
	case category != "":
		items, err := s.destinationRepo.FindByCategory(db, category)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		found = items
	default:
		items, err := s.destinationRepo.FindAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		found = items
	}

	return &dto.DestinationListResponse{
		Destinations: dto.ToDestinationResponses(found),
		Total:        len(found),
	}, nil
}

func (s *DestinationServiceImpl) GetFeaturedDestinations(db *gorm.DB) (*dto.DestinationListResponse, error) {
	destinations, err := s.destinationRepo.FindFeatured(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.DestinationListResponse{
		Destinations: dto.ToDestinationResponses(destinations),
		Total:        len(destinations),
	}, nil
}
