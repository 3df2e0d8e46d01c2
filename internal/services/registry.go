package services

import (
	"wistara_backend/internal/cache"
	"wistara_backend/internal/repositories"
)

// ServiceContainer holds every service the application wires at startup.
type ServiceContainer struct {
	ReviewService      ReviewService
	RatingService      RatingService
	GeneratorService   GeneratorService
	DestinationService DestinationService
}

// NewServiceContainer wires repositories and services together. ratingCache
// may be nil, in which case rating stats are always computed from the store.
func NewServiceContainer(ratingCache cache.RatingCache) *ServiceContainer {
	reviewRepo := repositories.NewReviewRepository()
	destinationRepo := repositories.NewDestinationRepository()
	userRepo := repositories.NewUserRepository()

	ratingService := NewRatingService(reviewRepo, destinationRepo, ratingCache)
	generatorService := NewGeneratorService(reviewRepo, destinationRepo, userRepo, ratingService)
	reviewService := NewReviewService(reviewRepo, destinationRepo, ratingService, generatorService)
	destinationService := NewDestinationService(destinationRepo)

	return &ServiceContainer{
		ReviewService:      reviewService,
		RatingService:      ratingService,
		GeneratorService:   generatorService,
		DestinationService: destinationService,
	}
}
