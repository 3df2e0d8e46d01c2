package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wistara_backend/internal/middleware"
	"wistara_backend/internal/models"
	"wistara_backend/internal/services"
	"wistara_backend/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService    services.ReviewService
	generatorService services.GeneratorService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService, generatorService services.GeneratorService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:      base,
		reviewService:    reviewService,
		generatorService: generatorService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("")
	{
		public.GET("/reviews/:reviewId", h.GetReview)
		public.GET("/reviews/users/:userId", h.GetUserReviews)
		public.GET("/destinations/:destinationId/reviews", h.GetDestinationReviews)
		public.GET("/destinations/:destinationId/reviews/stats", h.GetDestinationRatingStats)
	}

	// Protected routes - authenticated users
	reviews := r.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("/my", h.GetMyReviews)
		reviews.PUT("/:reviewId", h.UpdateReview)
		reviews.DELETE("/:reviewId", h.DeleteReview)
	}

	// Admin routes
	admin := r.Group("/admin/reviews")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("/seed", h.SeedReviews)
	}
}

// --- Public handlers ---

func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID := c.Param("reviewId")

	review, err := h.reviewService.GetReview(h.GetDB(c), reviewID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	userID := c.Param("userId")

	reviews, err := h.reviewService.GetAuthorReviews(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}

func (h *ReviewHandler) GetDestinationReviews(c *gin.Context) {
	destinationID := c.Param("destinationId")
	page := ParsePage(c)

	list, err := h.reviewService.GetDestinationReviews(c.Request.Context(), h.GetDB(c), destinationID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) GetDestinationRatingStats(c *gin.Context) {
	destinationID := c.Param("destinationId")

	stats, err := h.reviewService.GetDestinationRatingStats(c.Request.Context(), h.GetDB(c), destinationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// --- Authenticated handlers ---

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetMyReviews(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetAuthorReviews(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	reviewID := c.Param("reviewId")

	var req dto.UpdateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), h.GetDB(c), reviewID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	reviewID := c.Param("reviewId")

	if err := h.reviewService.DeleteReview(c.Request.Context(), h.GetDB(c), reviewID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// --- Admin handlers ---

func (h *ReviewHandler) SeedReviews(c *gin.Context) {
	result, err := h.generatorService.SeedReviews(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
