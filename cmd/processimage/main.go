// The processimage Lambda consumes object-creation events, runs the
// vision-language analysis, and records image metadata.
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
	"github.com/dmitrijs2005/pixelprompt/internal/vision"
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

	classifier := vision.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	service := services.NewAnalysisService(s3Client, classifier, store, logger)
	handler := handlers.NewAnalysisHandler(service, logger)

	lambda.Start(handler.Handle)
}
