package bookshelf

import (
	"strconv"
	"strings"
	"time"
)

// DefaultGenre is applied when add-book omits the genre field.
const DefaultGenre = "Unknown"

// Validators are pure functions: raw request in, validated entity or
// *CatalogError out. They never touch the store.

// ValidateAddBook checks the add-book contract and applies defaults for the
// optional fields: genre falls back to DefaultGenre and publishedYear to the
// current calendar year.
func ValidateAddBook(req AddBookRequest) (*Book, error) {
	author := req.Author
	if author == "" {
		author = req.AuthorName
	}

	var missing []string
	if req.BookID == nil || *req.BookID <= 0 {
		missing = append(missing, "bookId")
	}
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(author) == "" {
		missing = append(missing, "author")
	}
	if len(missing) > 0 {
		return nil, NewValidationError(missing...)
	}

	book := &Book{
		BookID:        *req.BookID,
		Title:         req.Title,
		Author:        author,
		Genre:         req.Genre,
		PublishedYear: time.Now().Year(),
	}
	if book.Genre == "" {
		book.Genre = DefaultGenre
	}
	if req.PublishedYear != nil {
		book.PublishedYear = *req.PublishedYear
	}
	return book, nil
}

// ValidateAddReview checks the add-review contract. The book id arrives as a
// raw path parameter and must parse as a positive integer.
func ValidateAddReview(rawBookID string, req AddReviewRequest) (*Review, error) {
	var missing []string
	bookID, err := strconv.Atoi(rawBookID)
	if err != nil || bookID <= 0 {
		missing = append(missing, "bookId")
	}
	if strings.TrimSpace(req.ReviewerName) == "" {
		missing = append(missing, "reviewerName")
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		missing = append(missing, "reviewText")
	}
	if len(missing) > 0 {
		return nil, NewValidationError(missing...)
	}

	return &Review{
		BookID:       bookID,
		ReviewerName: req.ReviewerName,
		ReviewText:   req.ReviewText,
	}, nil
}

// ValidateUpdateReview checks the update-review contract: the composite key
// from the path plus reviewText from the body. The lastUpdated token is
// passed through untouched; an empty token means an unconditional update.
func ValidateUpdateReview(rawBookID, reviewerName string, req UpdateReviewRequest) (ReviewKey, error) {
	var missing []string
	bookID, err := strconv.Atoi(rawBookID)
	if err != nil || bookID <= 0 {
		missing = append(missing, "bookId")
	}
	if strings.TrimSpace(reviewerName) == "" {
		missing = append(missing, "reviewerName")
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		missing = append(missing, "reviewText")
	}
	if len(missing) > 0 {
		return ReviewKey{}, NewValidationError(missing...)
	}

	return ReviewKey{BookID: bookID, ReviewerName: reviewerName}, nil
}

// ParseBookID parses a raw path parameter as a positive integer book id.
func ParseBookID(raw string) (int, error) {
	bookID, err := strconv.Atoi(raw)
	if err != nil || bookID <= 0 {
		return 0, NewNotFoundError("Missing book Id")
	}
	return bookID, nil
}

// ParseReviewsFlag reports whether the reviews query flag requests the
// review join. Only a case-insensitive "true" counts.
func ParseReviewsFlag(raw string) bool {
	return strings.EqualFold(raw, "true")
}

// ParseStrictFlag reports whether the strict query flag requests
// create-only semantics for an add operation.
func ParseStrictFlag(raw string) WriteMode {
	if strings.EqualFold(raw, "true") {
		return WriteCreateOnly
	}
	return WriteUpsert
}
