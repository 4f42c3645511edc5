package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sicko7947/bookshelf"
)

// MemoryStore implements bookshelf.CatalogStore using in-memory storage
// (for testing). It mirrors the DynamoDB conditional-update semantics,
// including the upsert behavior of an update against a missing key.
type MemoryStore struct {
	books       map[int]*bookshelf.Book
	reviews     map[int]map[string]*bookshelf.Review // bookID -> reviewerName -> review
	reviewOrder map[int][]string                     // insertion order per partition
	now         func() time.Time
	mu          sync.RWMutex
}

// NewMemoryStore creates a new in-memory catalog store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:       make(map[int]*bookshelf.Book),
		reviews:     make(map[int]map[string]*bookshelf.Review),
		reviewOrder: make(map[int][]string),
		now:         time.Now,
	}
}

// Book operations

func (s *MemoryStore) GetBook(ctx context.Context, bookID int) (*bookshelf.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, exists := s.books[bookID]
	if !exists {
		return nil, bookshelf.NewNotFoundError(fmt.Sprintf("book %d not found", bookID))
	}

	bookCopy := *book
	return &bookCopy, nil
}

func (s *MemoryStore) ListBooks(ctx context.Context) ([]*bookshelf.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*bookshelf.Book, 0, len(s.books))
	for _, book := range s.books {
		bookCopy := *book
		books = append(books, &bookCopy)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].BookID < books[j].BookID })

	return books, nil
}

func (s *MemoryStore) PutBook(ctx context.Context, book *bookshelf.Book, mode bookshelf.WriteMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == bookshelf.WriteCreateOnly {
		if _, exists := s.books[book.BookID]; exists {
			return bookshelf.NewConflictError(fmt.Sprintf("book %d already exists", book.BookID))
		}
	}

	bookCopy := *book
	s.books[book.BookID] = &bookCopy

	return nil
}

// Review operations

func (s *MemoryStore) PutReview(ctx context.Context, review *bookshelf.Review, mode bookshelf.WriteMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.CreatedAt == "" {
		review.CreatedAt = s.now().UTC().Format(time.RFC3339Nano)
	}

	partition := s.reviews[review.BookID]
	if partition == nil {
		partition = make(map[string]*bookshelf.Review)
		s.reviews[review.BookID] = partition
	}

	if _, exists := partition[review.ReviewerName]; exists {
		if mode == bookshelf.WriteCreateOnly {
			return bookshelf.NewConflictError(fmt.Sprintf(
				"review by %s for book %d already exists", review.ReviewerName, review.BookID))
		}
	} else {
		s.reviewOrder[review.BookID] = append(s.reviewOrder[review.BookID], review.ReviewerName)
	}

	reviewCopy := *review
	partition[review.ReviewerName] = &reviewCopy

	return nil
}

func (s *MemoryStore) QueryReviews(ctx context.Context, bookID int) ([]*bookshelf.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := []*bookshelf.Review{}
	for _, reviewerName := range s.reviewOrder[bookID] {
		reviewCopy := *s.reviews[bookID][reviewerName]
		reviews = append(reviews, &reviewCopy)
	}

	return reviews, nil
}

func (s *MemoryStore) UpdateReview(ctx context.Context, key bookshelf.ReviewKey, reviewText, expectedLastUpdated string) (*bookshelf.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	partition := s.reviews[key.BookID]
	existing := partition[key.ReviewerName]

	// Condition: stored lastUpdated matches the expected token, or the item
	// has no lastUpdated yet (which includes the item not existing at all).
	if expectedLastUpdated != "" && existing != nil && existing.LastUpdated != "" &&
		existing.LastUpdated != expectedLastUpdated {
		return nil, bookshelf.NewConflictError(fmt.Sprintf(
			"review by %s for book %d was modified concurrently", key.ReviewerName, key.BookID))
	}

	if partition == nil {
		partition = make(map[string]*bookshelf.Review)
		s.reviews[key.BookID] = partition
	}

	if existing == nil {
		existing = &bookshelf.Review{
			BookID:       key.BookID,
			ReviewerName: key.ReviewerName,
		}
		partition[key.ReviewerName] = existing
		s.reviewOrder[key.BookID] = append(s.reviewOrder[key.BookID], key.ReviewerName)
	}

	existing.ReviewText = reviewText
	existing.LastUpdated = s.now().UTC().Format(time.RFC3339Nano)

	reviewCopy := *existing
	return &reviewCopy, nil
}

// Seed operations

func (s *MemoryStore) SeedCatalog(ctx context.Context, books []bookshelf.Book, reviews []bookshelf.Review) error {
	for i := range books {
		if err := s.PutBook(ctx, &books[i], bookshelf.WriteUpsert); err != nil {
			return err
		}
	}
	for i := range reviews {
		review := reviews[i]
		if err := s.PutReview(ctx, &review, bookshelf.WriteUpsert); err != nil {
			return err
		}
	}
	return nil
}
