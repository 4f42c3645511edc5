package bookshelf

import (
	"time"

	"github.com/rs/zerolog"
)

// Log event names
const (
	EventRequestCompleted = "request_completed"
	EventValidationFailed = "validation_failed"
	EventConflictDetected = "conflict_detected"
	EventStoreError       = "store_error"
	EventSeedCompleted    = "seed_completed"
	EventAuthError        = "auth_error"
)

// LogRequestCompleted logs the outcome of a handled request
func LogRequestCompleted(logger zerolog.Logger, method, path string, status int, duration time.Duration) {
	logger.Info().
		Str("event", EventRequestCompleted).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration).
		Msg("Request completed")
}

// LogValidationFailed logs a rejected request
func LogValidationFailed(logger zerolog.Logger, operation string, err error) {
	logger.Warn().
		Str("event", EventValidationFailed).
		Str("operation", operation).
		Err(err).
		Msg("Validation failed")
}

// LogConflictDetected logs a failed conditional update on a review
func LogConflictDetected(logger zerolog.Logger, bookID int, reviewerName string) {
	logger.Warn().
		Str("event", EventConflictDetected).
		Int("book_id", bookID).
		Str("reviewer_name", reviewerName).
		Msg("Concurrent modification detected")
}

// LogStoreError logs a failure from the backing store
func LogStoreError(logger zerolog.Logger, operation string, err error) {
	logger.Error().
		Str("event", EventStoreError).
		Str("operation", operation).
		Err(err).
		Msg("Store operation failed")
}

// LogSeedCompleted logs a finished seed run
func LogSeedCompleted(logger zerolog.Logger, books, reviews int) {
	logger.Info().
		Str("event", EventSeedCompleted).
		Int("books", books).
		Int("reviews", reviews).
		Msg("Seed completed")
}

// LogAuthError logs a failure from the identity provider
func LogAuthError(logger zerolog.Logger, operation string, err error) {
	logger.Error().
		Str("event", EventAuthError).
		Str("operation", operation).
		Err(err).
		Msg("Auth operation failed")
}

// RequestLogger creates a logger enriched with request context
func RequestLogger(baseLogger zerolog.Logger, requestID, method, path string) zerolog.Logger {
	return baseLogger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()
}
