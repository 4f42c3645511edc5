package store

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names shared by both tables. Books are keyed by bookId alone;
// Reviews by (bookId, reviewerName).
const (
	AttrBookID        = "bookId"
	AttrTitle         = "title"
	AttrAuthor        = "author"
	AttrGenre         = "genre"
	AttrPublishedYear = "publishedYear"

	AttrReviewerName = "reviewerName"
	AttrReviewText   = "reviewText"
	AttrCreatedAt    = "createdAt"
	AttrLastUpdated  = "lastUpdated"
)

// maxBatchWriteItems is the BatchWriteItem request limit imposed by DynamoDB.
const maxBatchWriteItems = 25

// Key builders

// Book key: bookId (N)
func bookKey(bookID int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrBookID: &types.AttributeValueMemberN{Value: strconv.Itoa(bookID)},
	}
}

// Review key: bookId (N) + reviewerName (S)
func reviewKey(bookID int, reviewerName string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrBookID:       &types.AttributeValueMemberN{Value: strconv.Itoa(bookID)},
		AttrReviewerName: &types.AttributeValueMemberS{Value: reviewerName},
	}
}
