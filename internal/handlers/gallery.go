package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/pixelprompt/internal/logging"
	"github.com/dmitrijs2005/pixelprompt/internal/models"
)

// GalleryLister retrieves a user's analyzed images.
type GalleryLister interface {
	List(ctx context.Context, userID string, limit int) (*models.GalleryResponse, error)
}

// GalleryHandler serves GET requests for the image gallery.
type GalleryHandler struct {
	service GalleryLister
	logger  logging.Logger
}

func NewGalleryHandler(service GalleryLister, logger logging.Logger) *GalleryHandler {
	return &GalleryHandler{service: service, logger: logger}
}

// Handle reads userId and limit from the query string (missing or
// malformed values fall back to service defaults) and returns the gallery.
func (h *GalleryHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID := req.QueryStringParameters["userId"]

	limit := 0
	if raw, ok := req.QueryStringParameters["limit"]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	resp, err := h.service.List(ctx, userID, limit)
	if err != nil {
		h.logger.Error(ctx, "error fetching images", "error", err.Error())
		return errorResponse(http.StatusInternalServerError, "Failed to fetch images", err.Error()), nil
	}

	return jsonResponse(http.StatusOK, resp), nil
}
