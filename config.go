package bookshelf

import "os"

// Environment variable names
const (
	EnvBooksTable       = "BOOKS_TABLE_NAME"
	EnvReviewsTable     = "REVIEWS_TABLE_NAME"
	EnvRegion           = "AWS_REGION"
	EnvUserPoolClientID = "USER_POOL_CLIENT_ID"
	EnvListenAddr       = "LISTEN_ADDR"
)

// Config holds the service configuration: the names of the two backing
// tables, the store region, and the transport settings.
type Config struct {
	BooksTableName   string
	ReviewsTableName string
	Region           string

	// UserPoolClientID is the Cognito app client used by the auth routes.
	// When empty the auth routes are not registered.
	UserPoolClientID string

	ListenAddr string
}

// DefaultConfig provides sensible defaults
var DefaultConfig = Config{
	BooksTableName:   "Books",
	ReviewsTableName: "Reviews",
	ListenAddr:       ":8080",
}

// ConfigFromEnv builds a Config from the environment, falling back to
// DefaultConfig for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig
	if v := os.Getenv(EnvBooksTable); v != "" {
		cfg.BooksTableName = v
	}
	if v := os.Getenv(EnvReviewsTable); v != "" {
		cfg.ReviewsTableName = v
	}
	if v := os.Getenv(EnvRegion); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv(EnvUserPoolClientID); v != "" {
		cfg.UserPoolClientID = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	return cfg
}
