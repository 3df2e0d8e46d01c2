package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wistara_backend/internal/services"
)

type DestinationHandler struct {
	*BaseHandler
	destinationService services.DestinationService
}

func NewDestinationHandler(base *BaseHandler, destinationService services.DestinationService) *DestinationHandler {
	return &DestinationHandler{
		BaseHandler:        base,
		destinationService: destinationService,
	}
}

func (h *DestinationHandler) RegisterRoutes(r *gin.RouterGroup) {
	destinations := r.Group("/destinations")
	{
		destinations.GET("", h.ListDestinations)
		destinations.GET("/featured", h.GetFeaturedDestinations)
		destinations.GET("/:destinationId", h.GetDestination)
	}
}

func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	region := c.Query("region")
	category := c.Query("category")

	list, err := h.destinationService.ListDestinations(h.GetDB(c), region, category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *DestinationHandler) GetFeaturedDestinations(c *gin.Context) {
	list, err := h.destinationService.GetFeaturedDestinations(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *DestinationHandler) GetDestination(c *gin.Context) {
	destinationID := c.Param("destinationId")

	destination, err := h.destinationService.GetDestination(h.GetDB(c), destinationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, destination)
}
