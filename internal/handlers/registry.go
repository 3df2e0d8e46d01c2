package handlers

import (
	"wistara_backend/internal/services"
	"wistara_backend/internal/validator"
)

// AppHandlers holds every HTTP handler group the router registers.
type AppHandlers struct {
	ReviewHandler      *ReviewHandler
	DestinationHandler *DestinationHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		ReviewHandler:      NewReviewHandler(base, container.ReviewService, container.GeneratorService),
		DestinationHandler: NewDestinationHandler(base, container.DestinationService),
	}
}
