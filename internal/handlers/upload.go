package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
	"github.com/dmitrijs2005/pixelprompt/internal/logging"
	"github.com/dmitrijs2005/pixelprompt/internal/models"
)

// UploadAuthorizer issues direct-upload authorizations.
type UploadAuthorizer interface {
	Authorize(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error)
}

// UploadHandler serves POST requests for upload authorizations.
type UploadHandler struct {
	service UploadAuthorizer
	logger  logging.Logger
}

func NewUploadHandler(service UploadAuthorizer, logger logging.Logger) *UploadHandler {
	return &UploadHandler{service: service, logger: logger}
}

// Handle parses the JSON body, delegates to the service, and maps
// validation failures to 400 and everything else to 500.
func (h *UploadHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// An absent body falls through to the missing-fields validation error.
	var body models.UploadRequest
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return errorResponse(http.StatusBadRequest, "Invalid JSON body", ""), nil
		}
	}

	resp, err := h.service.Authorize(ctx, &body)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return errorResponse(http.StatusBadRequest, validationMessage(err), ""), nil
		}
		h.logger.Error(ctx, "error generating presigned URL", "error", err.Error())
		return errorResponse(http.StatusInternalServerError, "Failed to generate upload URL", err.Error()), nil
	}

	return jsonResponse(http.StatusOK, resp), nil
}

// validationMessage strips the sentinel prefix so the client sees only the
// human-readable part.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
}
