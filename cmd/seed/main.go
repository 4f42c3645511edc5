// Command seed bulk-writes the fixed initial dataset into the Books and
// Reviews tables. Run once at provisioning time.
package main

import (
	"context"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sicko7947/bookshelf"
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

	books := bookshelf.SeedBooks()
	reviews := bookshelf.SeedReviews()

	if err := catalog.SeedCatalog(ctx, books, reviews); err != nil {
		log.Fatal().Err(err).Msg("Seed failed")
	}

	bookshelf.LogSeedCompleted(log.Logger, len(books), len(reviews))
}
