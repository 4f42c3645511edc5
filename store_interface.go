package bookshelf

import "context"

// CatalogStore is the persistence contract the handlers depend on. It is
// defined here rather than in the store package so the store implementations
// can reference the entity types without an import cycle.
//
// Implementations must keep UpdateReview atomic: the condition check and the
// mutation happen as a single store-side operation, never as two round
// trips. Optimistic concurrency correctness depends on it.
type CatalogStore interface {
	// GetBook returns the book with the given id, or a NOT_FOUND error.
	GetBook(ctx context.Context, bookID int) (*Book, error)

	// ListBooks returns every book in the catalogue.
	ListBooks(ctx context.Context) ([]*Book, error)

	// PutBook writes a book. With WriteCreateOnly it fails with a CONFLICT
	// error if a book with the same id already exists.
	PutBook(ctx context.Context, book *Book, mode WriteMode) error

	// PutReview writes a review, assigning CreatedAt when unset. With
	// WriteCreateOnly it fails with a CONFLICT error if a review with the
	// same (bookId, reviewerName) key already exists.
	PutReview(ctx context.Context, review *Review, mode WriteMode) error

	// QueryReviews returns all reviews sharing the given book id partition.
	// A book with no reviews yields an empty slice, not an error.
	QueryReviews(ctx context.Context, bookID int) ([]*Review, error)

	// UpdateReview sets the review text and refreshes lastUpdated in one
	// atomic operation. When expectedLastUpdated is non-empty the update
	// only applies if the stored lastUpdated still matches it (or the item
	// has no lastUpdated yet); a mismatch fails with a CONFLICT error. When
	// empty the update is unconditional. Returns the post-mutation review.
	UpdateReview(ctx context.Context, key ReviewKey, reviewText, expectedLastUpdated string) (*Review, error)

	// SeedCatalog bulk-writes the initial dataset.
	SeedCatalog(ctx context.Context, books []Book, reviews []Review) error
}
