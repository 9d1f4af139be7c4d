package main

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/soaringlab/loadsheet/backend-go/internal/aircraft"
	"github.com/soaringlab/loadsheet/backend-go/internal/cache"
	"github.com/soaringlab/loadsheet/backend-go/internal/config"
	"github.com/soaringlab/loadsheet/backend-go/internal/handler"
	"github.com/soaringlab/loadsheet/backend-go/internal/loadsheet"
	"github.com/soaringlab/loadsheet/backend-go/pkg/http/client"
)

var (
	loadsheetHandler *handler.LoadsheetHandler
	setupOnce        sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		httpClient := client.New(client.Options{
			BaseURL:    cfg.CatalogBaseURL,
			Timeout:    cfg.HTTPTimeout,
			MaxRetries: cfg.MaxRetries,
		})

		// We can pass nil for the profile cache as it uses the default config
		catalog, err := aircraft.NewCatalog(httpClient, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize aircraft catalog")
		}

		cacheService, err := cache.NewCacheService(context.Background(), nil)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize loadsheet cache")
		}

		service := loadsheet.NewService(catalog, cacheService)
		loadsheetHandler = handler.NewLoadsheetHandler(service)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Info().Msg("Handling loadsheet request")
	return loadsheetHandler.HandleRequest(ctx, request)
}

func main() {
	lambda.Start(handleRequest)
}
