// The uploadurl Lambda issues scoped, time-limited direct-upload
// authorizations for the image bucket.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dmitrijs2005/pixelprompt/internal/config"
	"github.com/dmitrijs2005/pixelprompt/internal/handlers"
	"github.com/dmitrijs2005/pixelprompt/internal/logging"
	"github.com/dmitrijs2005/pixelprompt/internal/services"
	"github.com/dmitrijs2005/pixelprompt/internal/storage"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	s3Client, err := storage.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("s3 client init error: %v", err)
	}

	service := services.NewUploadService(s3Client, cfg, logger)
	handler := handlers.NewUploadHandler(service, logger)

	lambda.Start(handler.Handle)
}
