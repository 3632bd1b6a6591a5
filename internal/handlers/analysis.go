package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/pixelprompt/internal/logging"
)

// EventProcessor consumes a batch of object-creation notifications.
type EventProcessor interface {
	ProcessEvent(ctx context.Context, event events.S3Event) error
}

// AnalysisHandler is the entry point of the analysis Lambda.
type AnalysisHandler struct {
	service EventProcessor
	logger  logging.Logger
}

func NewAnalysisHandler(service EventProcessor, logger logging.Logger) *AnalysisHandler {
	return &AnalysisHandler{service: service, logger: logger}
}

// Handle returns the per-entry processing errors so the event system can
// redeliver the notification; parse-level failures never reach here.
func (h *AnalysisHandler) Handle(ctx context.Context, event events.S3Event) error {
	if err := h.service.ProcessEvent(ctx, event); err != nil {
		h.logger.Error(ctx, "error processing s3 event", "error", err.Error())
		return err
	}
	return nil
}
