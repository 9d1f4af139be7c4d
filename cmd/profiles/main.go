package main

import (
	"context"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/soaringlab/loadsheet/backend-go/internal/aircraft"
	"github.com/soaringlab/loadsheet/backend-go/internal/cache"
	"github.com/soaringlab/loadsheet/backend-go/internal/config"
	"github.com/soaringlab/loadsheet/backend-go/internal/handler"
	"github.com/soaringlab/loadsheet/backend-go/pkg/http/client"
)

var (
	profilesHandler *handler.ProfilesHandler
	setupOnce       sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		log.Info().Str("env", cfg.Environment).Msg("Environment")

		httpClient := client.New(client.Options{
			BaseURL:    cfg.CatalogBaseURL,
			Timeout:    cfg.HTTPTimeout,
			MaxRetries: cfg.MaxRetries,
		})

		catalog, err := aircraft.NewCatalog(httpClient, cache.NewProfileCache(nil))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize aircraft catalog")
		}

		// Share the fetched catalog across cold starts when a bucket is configured
		if bucket := os.Getenv("CATALOG_CACHE_BUCKET"); bucket != "" {
			s3Cache, err := cache.NewS3ProfileCache(context.Background(), bucket, nil)
			if err != nil {
				log.Error().Err(err).Msg("Failed to initialize S3 catalog cache")
			} else {
				catalog = catalog.WithS3Cache(s3Cache)
			}
		}

		profilesHandler = handler.NewProfilesHandler(catalog)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Info().Msg("Handling profiles request")
	return profilesHandler.HandleRequest(ctx, request)
}

func main() {
	lambda.Start(handleRequest)
}
