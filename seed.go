package bookshelf

// Fixed dataset written at provisioning time by cmd/seed.

// SeedBooks returns the initial book catalogue.
func SeedBooks() []Book {
	return []Book{
		{
			BookID:        1,
			Author:        "J.K. Rowling",
			Title:         "Harry Potter and the Sorcerer's Stone",
			Genre:         "Fantasy",
			PublishedYear: 1997,
		},
		{
			BookID:        2,
			Author:        "J.R.R. Tolkien",
			Title:         "The Hobbit",
			Genre:         "Fantasy",
			PublishedYear: 1937,
		},
	}
}

// SeedReviews returns the initial reviews.
func SeedReviews() []Review {
	return []Review{
		{
			BookID:       1,
			ReviewerName: "Alice",
			ReviewText:   "Amazing book! A must-read for everyone.",
		},
		{
			BookID:       1,
			ReviewerName: "Bob",
			ReviewText:   "Great story, but a bit predictable.",
		},
		{
			BookID:       2,
			ReviewerName: "Charlie",
			ReviewText:   "A true classic. Beautifully written.",
		},
		{
			BookID:       2,
			ReviewerName: "David",
			ReviewText:   "A bit slow at the start, but worth it in the end.",
		},
	}
}
