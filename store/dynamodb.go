// Package store provides persistence implementations for the book catalogue.
// The CatalogStore interface is defined in the parent bookshelf package
// (../store_interface.go) to avoid import cycles between the bookshelf
// and store packages.
//
// This package contains concrete implementations:
//   - DynamoDBStore: Production AWS DynamoDB backend
//   - MemoryStore: In-memory backend for testing
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sicko7947/bookshelf"
)

// DynamoDBStore implements bookshelf.CatalogStore using AWS DynamoDB.
// Books and Reviews live in separate tables; all mutation goes through a
// single PutItem, UpdateItem or BatchWriteItem call, so no operation ever
// needs cross-call cleanup.
type DynamoDBStore struct {
	client       DynamoDBClient
	booksTable   string
	reviewsTable string
	now          func() time.Time
}

// NewDynamoDBStore creates a new DynamoDB-backed catalog store
func NewDynamoDBStore(client DynamoDBClient, booksTable, reviewsTable string) bookshelf.CatalogStore {
	return &DynamoDBStore{
		client:       client,
		booksTable:   booksTable,
		reviewsTable: reviewsTable,
		now:          time.Now,
	}
}

// Book operations

func (s *DynamoDBStore) GetBook(ctx context.Context, bookID int) (*bookshelf.Book, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.booksTable),
		Key:       bookKey(bookID),
	})
	if err != nil {
		return nil, bookshelf.NewStoreError("get book", err)
	}

	if result.Item == nil {
		return nil, bookshelf.NewNotFoundError(fmt.Sprintf("book %d not found", bookID))
	}

	var book bookshelf.Book
	if err := attributevalue.UnmarshalMap(result.Item, &book); err != nil {
		return nil, bookshelf.NewStoreError("unmarshal book", err)
	}

	return &book, nil
}

func (s *DynamoDBStore) ListBooks(ctx context.Context) ([]*bookshelf.Book, error) {
	books := []*bookshelf.Book{}
	var lastEvaluatedKey map[string]types.AttributeValue

	// Paginate through all results
	for {
		scanInput := &dynamodb.ScanInput{
			TableName: aws.String(s.booksTable),
		}
		if lastEvaluatedKey != nil {
			scanInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := s.client.Scan(ctx, scanInput)
		if err != nil {
			return nil, bookshelf.NewStoreError("list books", err)
		}

		for _, item := range result.Items {
			var book bookshelf.Book
			if err := attributevalue.UnmarshalMap(item, &book); err != nil {
				return nil, bookshelf.NewStoreError("unmarshal book", err)
			}
			books = append(books, &book)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return books, nil
}

func (s *DynamoDBStore) PutBook(ctx context.Context, book *bookshelf.Book, mode bookshelf.WriteMode) error {
	item, err := attributevalue.MarshalMap(book)
	if err != nil {
		return bookshelf.NewStoreError("marshal book", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.booksTable),
		Item:      item,
	}

	if mode == bookshelf.WriteCreateOnly {
		expr, err := expression.NewBuilder().
			WithCondition(expression.AttributeNotExists(expression.Name(AttrBookID))).
			Build()
		if err != nil {
			return bookshelf.NewStoreError("build condition", err)
		}
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return bookshelf.NewConflictError(fmt.Sprintf("book %d already exists", book.BookID))
		}
		return bookshelf.NewStoreError("put book", err)
	}

	return nil
}

// Review operations

func (s *DynamoDBStore) PutReview(ctx context.Context, review *bookshelf.Review, mode bookshelf.WriteMode) error {
	if review.CreatedAt == "" {
		review.CreatedAt = s.now().UTC().Format(time.RFC3339Nano)
	}

	item, err := attributevalue.MarshalMap(review)
	if err != nil {
		return bookshelf.NewStoreError("marshal review", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.reviewsTable),
		Item:      item,
	}

	if mode == bookshelf.WriteCreateOnly {
		expr, err := expression.NewBuilder().
			WithCondition(expression.AttributeNotExists(expression.Name(AttrBookID))).
			Build()
		if err != nil {
			return bookshelf.NewStoreError("build condition", err)
		}
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return bookshelf.NewConflictError(fmt.Sprintf(
				"review by %s for book %d already exists", review.ReviewerName, review.BookID))
		}
		return bookshelf.NewStoreError("put review", err)
	}

	return nil
}

func (s *DynamoDBStore) QueryReviews(ctx context.Context, bookID int) ([]*bookshelf.Review, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(AttrBookID).Equal(expression.Value(bookID))).
		Build()
	if err != nil {
		return nil, bookshelf.NewStoreError("build key condition", err)
	}

	reviews := []*bookshelf.Review{}
	var lastEvaluatedKey map[string]types.AttributeValue

	// Paginate through all results
	for {
		queryInput := &dynamodb.QueryInput{
			TableName:                 aws.String(s.reviewsTable),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		}
		if lastEvaluatedKey != nil {
			queryInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := s.client.Query(ctx, queryInput)
		if err != nil {
			return nil, bookshelf.NewStoreError("query reviews", err)
		}

		for _, item := range result.Items {
			var review bookshelf.Review
			if err := attributevalue.UnmarshalMap(item, &review); err != nil {
				return nil, bookshelf.NewStoreError("unmarshal review", err)
			}
			reviews = append(reviews, &review)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return reviews, nil
}

// UpdateReview performs the conditional update guarding against concurrent
// modification. The condition and the mutation run in a single UpdateItem
// call; DynamoDB evaluates them atomically. The condition also passes when
// the item has no lastUpdated attribute yet, which covers reviews that were
// seeded or created without one, and means an update against a missing key
// upserts the review the same way the document client did.
func (s *DynamoDBStore) UpdateReview(ctx context.Context, key bookshelf.ReviewKey, reviewText, expectedLastUpdated string) (*bookshelf.Review, error) {
	update := expression.
		Set(expression.Name(AttrReviewText), expression.Value(reviewText)).
		Set(expression.Name(AttrLastUpdated), expression.Value(s.now().UTC().Format(time.RFC3339Nano)))

	builder := expression.NewBuilder().WithUpdate(update)
	if expectedLastUpdated != "" {
		builder = builder.WithCondition(
			expression.Name(AttrLastUpdated).Equal(expression.Value(expectedLastUpdated)).
				Or(expression.AttributeNotExists(expression.Name(AttrLastUpdated))),
		)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, bookshelf.NewStoreError("build update expression", err)
	}

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.reviewsTable),
		Key:                       reviewKey(key.BookID, key.ReviewerName),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, bookshelf.NewConflictError(fmt.Sprintf(
				"review by %s for book %d was modified concurrently", key.ReviewerName, key.BookID))
		}
		return nil, bookshelf.NewStoreError("update review", err)
	}

	var review bookshelf.Review
	if err := attributevalue.UnmarshalMap(result.Attributes, &review); err != nil {
		return nil, bookshelf.NewStoreError("unmarshal review", err)
	}

	return &review, nil
}

// Seed operations

// SeedCatalog bulk-writes the initial dataset, chunked at the BatchWriteItem
// request limit. Unprocessed items are resubmitted a bounded number of times
// before giving up.
func (s *DynamoDBStore) SeedCatalog(ctx context.Context, books []bookshelf.Book, reviews []bookshelf.Review) error {
	var requests []batchRequest

	for i := range books {
		item, err := attributevalue.MarshalMap(&books[i])
		if err != nil {
			return bookshelf.NewStoreError("marshal book", err)
		}
		requests = append(requests, batchRequest{table: s.booksTable, item: item})
	}

	for i := range reviews {
		review := reviews[i]
		if review.CreatedAt == "" {
			review.CreatedAt = s.now().UTC().Format(time.RFC3339Nano)
		}
		item, err := attributevalue.MarshalMap(&review)
		if err != nil {
			return bookshelf.NewStoreError("marshal review", err)
		}
		requests = append(requests, batchRequest{table: s.reviewsTable, item: item})
	}

	for start := 0; start < len(requests); start += maxBatchWriteItems {
		end := min(start+maxBatchWriteItems, len(requests))

		batch := make(map[string][]types.WriteRequest)
		for _, req := range requests[start:end] {
			batch[req.table] = append(batch[req.table], types.WriteRequest{
				PutRequest: &types.PutRequest{Item: req.item},
			})
		}

		if err := s.writeBatch(ctx, batch); err != nil {
			return err
		}
	}

	return nil
}

type batchRequest struct {
	table string
	item  map[string]types.AttributeValue
}

func (s *DynamoDBStore) writeBatch(ctx context.Context, batch map[string][]types.WriteRequest) error {
	const maxAttempts = 5

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: batch,
		})
		if err != nil {
			return bookshelf.NewStoreError("batch write", err)
		}

		if len(result.UnprocessedItems) == 0 {
			return nil
		}
		batch = result.UnprocessedItems
	}

	return bookshelf.NewStoreError("batch write",
		fmt.Errorf("unprocessed items remain after %d attempts", maxAttempts))
}
