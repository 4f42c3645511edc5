package bookshelf

// WriteMode controls how a put behaves when an item with the same key
// already exists.
type WriteMode string

const (
	// WriteUpsert replaces any existing item with the same key.
	WriteUpsert WriteMode = "UPSERT"
	// WriteCreateOnly fails with a conflict if an item with the same key
	// already exists.
	WriteCreateOnly WriteMode = "CREATE_ONLY"
)

// String returns the string representation
func (m WriteMode) String() string {
	return string(m)
}

// Book is a catalogue entry. BookID is the partition key of the Books
// table and is immutable once written.
type Book struct {
	BookID        int    `json:"bookId" dynamodbav:"bookId"`
	Title         string `json:"title" dynamodbav:"title"`
	Author        string `json:"author" dynamodbav:"author"`
	Genre         string `json:"genre" dynamodbav:"genre"`
	PublishedYear int    `json:"publishedYear" dynamodbav:"publishedYear"`
}

// Review is a single reader review of a book. Reviews are addressed by the
// composite key (BookID, ReviewerName): a given (book, reviewer) pair has at
// most one current review. CreatedAt and LastUpdated are server-assigned
// RFC3339 timestamps; LastUpdated doubles as the optimistic-concurrency
// token for updates.
type Review struct {
	BookID       int    `json:"bookId" dynamodbav:"bookId"`
	ReviewerName string `json:"reviewerName" dynamodbav:"reviewerName"`
	ReviewText   string `json:"reviewText" dynamodbav:"reviewText"`
	CreatedAt    string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	LastUpdated  string `json:"lastUpdated,omitempty" dynamodbav:"lastUpdated,omitempty"`
}

// ReviewKey is the full primary key of a review.
type ReviewKey struct {
	BookID       int
	ReviewerName string
}

// AddBookRequest is the decoded body of POST /books. BookID and
// PublishedYear are pointers so a missing field can be told apart from a
// zero value. AuthorName is accepted as an alias for Author; some clients
// still send the older field name.
type AddBookRequest struct {
	BookID        *int   `json:"bookId"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	AuthorName    string `json:"authorName"`
	Genre         string `json:"genre"`
	PublishedYear *int   `json:"publishedYear"`
}

// AddReviewRequest is the decoded body of POST /books/{bookId}/reviews.
// The book id comes from the path, not the body.
type AddReviewRequest struct {
	ReviewerName string `json:"reviewerName"`
	ReviewText   string `json:"reviewText"`
}

// UpdateReviewRequest is the decoded body of
// PUT /books/{bookId}/reviews/{reviewerName}. LastUpdated, when present, is
// the expected value of the stored lastUpdated attribute: the update only
// applies if the stored value still matches. When absent the update is
// unconditional.
type UpdateReviewRequest struct {
	ReviewText  string `json:"reviewText"`
	LastUpdated string `json:"lastUpdated"`
}
