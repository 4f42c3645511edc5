package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sicko7947/bookshelf"
	"github.com/sicko7947/bookshelf/api"
	"github.com/sicko7947/bookshelf/auth"
	"github.com/sicko7947/bookshelf/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	cfg := bookshelf.ConfigFromEnv()

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	catalog := store.NewDynamoDBStore(
		dynamodb.NewFromConfig(awsCfg),
		cfg.BooksTableName,
		cfg.ReviewsTableName,
	)

	var authService *auth.Service
	if cfg.UserPoolClientID != "" {
		authService = auth.NewService(
			cognitoidentityprovider.NewFromConfig(awsCfg),
			cfg.UserPoolClientID,
		)
	} else {
		log.Warn().Msg("No user pool client configured, auth routes disabled")
	}

	app := api.New(catalog, authService, log.Logger).Router()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()
	log.Info().Str("addr", cfg.ListenAddr).Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}
