package dto

import (
	"time"

	"wistara_backend/internal/models"
)

type DestinationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Region      string    `json:"region"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Likes       int       `json:"likes"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DestinationListResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	Total        int                   `json:"total"`
}

func ToDestinationResponse(destination *models.Destination) DestinationResponse {
	return DestinationResponse{
		ID:          destination.ID,
		Name:        destination.Name,
		Region:      destination.Region,
		Category:    destination.Category,
		Description: destination.Description,
		ImageURL:    destination.ImageURL,
		Likes:       destination.Likes,
		Rating:      destination.Rating,
		CreatedAt:   destination.CreatedAt,
		UpdatedAt:   destination.UpdatedAt,
	}
}

func ToDestinationResponses(destinations []models.Destination) []DestinationResponse {
	responses := make([]DestinationResponse, 0, len(destinations))
	for i := range destinations {
		responses = append(responses, ToDestinationResponse(&destinations[i]))
	}
	return responses
}
