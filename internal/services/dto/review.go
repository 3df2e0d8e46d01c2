package dto

import (
	"time"

	"wistara_backend/internal/models"
)

type CreateReviewRequest struct {
	DestinationID string  `json:"destination_id" validate:"required"`
	Text          string  `json:"text" validate:"required,max=2000"`
	Rating        float64 `json:"rating" validate:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Text   *string  `json:"text,omitempty" validate:"omitempty,min=1,max=2000"`
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type AuthorInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type ReviewResponse struct {
	ID            string      `json:"id"`
	DestinationID string      `json:"destination_id"`
	Text          string      `json:"text"`
	Rating        float64     `json:"rating"`
	Synthetic     bool        `json:"synthetic"`
	Author        *AuthorInfo `json:"author,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

type RatingStatsResponse struct {
	DestinationID string  `json:"destination_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

type SeedResult struct {
	UsersSeeded          int `json:"users_seeded"`
	ReviewsCreated       int `json:"reviews_created"`
	DestinationsAffected int `json:"destinations_affected"`
}

func ToReviewResponse(review *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:            review.ID,
		DestinationID: review.DestinationID,
		Text:          review.Text,
		Rating:        review.Rating,
		Synthetic:     review.Synthetic,
		CreatedAt:     review.CreatedAt,
		UpdatedAt:     review.UpdatedAt,
	}
	if review.Author.ID != "" {
		resp.Author = &AuthorInfo{
			ID:       review.Author.ID,
			Name:     review.Author.Name,
			Username: review.Author.Username,
			Avatar:   review.Author.Avatar,
		}
	}
	return resp
}

func ToReviewResponses(reviews []models.Review) []ReviewResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, ToReviewResponse(&reviews[i]))
	}
	return responses
}
