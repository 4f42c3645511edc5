package bookshelf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddBook(t *testing.T) {
	book, err := ValidateAddBook(AddBookRequest{
		BookID:        ToPtr(1),
		Title:         "The Hobbit",
		Author:        "J.R.R. Tolkien",
		Genre:         "Fantasy",
		PublishedYear: ToPtr(1937),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, book.BookID)
	assert.Equal(t, "Fantasy", book.Genre)
	assert.Equal(t, 1937, book.PublishedYear)
}

func TestValidateAddBook_Defaults(t *testing.T) {
	book, err := ValidateAddBook(AddBookRequest{
		BookID: ToPtr(5),
		Title:  "Untitled Draft",
		Author: "Anon",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultGenre, book.Genre)
	assert.Equal(t, time.Now().Year(), book.PublishedYear)
}

func TestValidateAddBook_AuthorNameAlias(t *testing.T) {
	book, err := ValidateAddBook(AddBookRequest{
		BookID:     ToPtr(2),
		Title:      "The Hobbit",
		AuthorName: "J.R.R. Tolkien",
	})
	require.NoError(t, err)
	assert.Equal(t, "J.R.R. Tolkien", book.Author)
}

func TestValidateAddBook_MissingFields(t *testing.T) {
	_, err := ValidateAddBook(AddBookRequest{Genre: "Fantasy"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	ce := err.(*CatalogError)
	assert.Equal(t, []string{"bookId", "title", "author"}, ce.Fields)
	assert.Equal(t, "bookId, title, and author are required fields.", ce.Message)
}

func TestValidateAddBook_RejectsNonPositiveID(t *testing.T) {
	_, err := ValidateAddBook(AddBookRequest{BookID: ToPtr(0), Title: "T", Author: "A"})
	assert.True(t, IsValidation(err))

	_, err = ValidateAddBook(AddBookRequest{BookID: ToPtr(-3), Title: "T", Author: "A"})
	assert.True(t, IsValidation(err))
}

func TestValidateAddReview(t *testing.T) {
	review, err := ValidateAddReview("1", AddReviewRequest{
		ReviewerName: "Alice",
		ReviewText:   "Loved it",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, review.BookID)
	assert.Equal(t, "Alice", review.ReviewerName)
	assert.Empty(t, review.CreatedAt) // assigned by the store, not the validator
}

func TestValidateAddReview_MissingFields(t *testing.T) {
	_, err := ValidateAddReview("not-a-number", AddReviewRequest{})
	require.Error(t, err)

	ce := err.(*CatalogError)
	assert.Equal(t, []string{"bookId", "reviewerName", "reviewText"}, ce.Fields)
}

func TestValidateUpdateReview(t *testing.T) {
	key, err := ValidateUpdateReview("2", "Bob", UpdateReviewRequest{
		ReviewText:  "Changed my mind",
		LastUpdated: "2024-05-01T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, ReviewKey{BookID: 2, ReviewerName: "Bob"}, key)
}

func TestValidateUpdateReview_MissingText(t *testing.T) {
	_, err := ValidateUpdateReview("2", "Bob", UpdateReviewRequest{})
	require.Error(t, err)
	assert.Equal(t, []string{"reviewText"}, err.(*CatalogError).Fields)
}

func TestParseBookID(t *testing.T) {
	id, err := ParseBookID("7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, raw := range []string{"", "abc", "0", "-1", "1.5"} {
		_, err := ParseBookID(raw)
		assert.True(t, IsNotFound(err), "ParseBookID(%q) should fail", raw)
	}
}

func TestParseReviewsFlag(t *testing.T) {
	assert.True(t, ParseReviewsFlag("true"))
	assert.True(t, ParseReviewsFlag("TRUE"))
	assert.True(t, ParseReviewsFlag("True"))
	assert.False(t, ParseReviewsFlag("false"))
	assert.False(t, ParseReviewsFlag(""))
	assert.False(t, ParseReviewsFlag("yes"))
}

func TestParseStrictFlag(t *testing.T) {
	assert.Equal(t, WriteCreateOnly, ParseStrictFlag("true"))
	assert.Equal(t, WriteCreateOnly, ParseStrictFlag("True"))
	assert.Equal(t, WriteUpsert, ParseStrictFlag(""))
	assert.Equal(t, WriteUpsert, ParseStrictFlag("false"))
}
