// The getimages Lambda returns a user's analyzed images, newest first,
// each with a fresh time-limited read URL.
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
	"github.com/dmitrijs2005/pixelprompt/internal/metadata"
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

	store, err := metadata.NewStoreFromRegion(ctx, cfg.AWSRegion, cfg.TableName)
	if err != nil {
		log.Fatalf("metadata store init error: %v", err)
	}

	service := services.NewGalleryService(store, s3Client, cfg, logger)
	handler := handlers.NewGalleryHandler(service, logger)

	lambda.Start(handler.Handle)
}
