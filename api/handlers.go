package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sicko7947/bookshelf"
)

// handleListBooks returns the whole catalogue.
//
//	GET /books
func (s *Server) handleListBooks(c fiber.Ctx) error {
	books, err := s.store.ListBooks(c.Context())
	if err != nil {
		return s.respondError(c, "list books", err)
	}

	return c.JSON(fiber.Map{"data": books})
}

// handleGetBook returns one book, optionally joined with its reviews.
//
//	GET /books/:bookId?reviews=true
func (s *Server) handleGetBook(c fiber.Ctx) error {
	bookID, err := bookshelf.ParseBookID(c.Params("bookId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Missing book Id"})
	}

	book, err := s.store.GetBook(c.Context(), bookID)
	if err != nil {
		if bookshelf.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Invalid book Id"})
		}
		return s.respondError(c, "get book", err)
	}

	response := fiber.Map{"data": book}

	if bookshelf.ParseReviewsFlag(c.Query("reviews")) {
		reviews, err := s.store.QueryReviews(c.Context(), bookID)
		if err != nil {
			return s.respondError(c, "query reviews", err)
		}
		response["reviews"] = reviews
	}

	return c.JSON(response)
}

// handleAddBook creates (or with the default upsert mode, replaces) a book.
//
//	POST /books?strict=true
func (s *Server) handleAddBook(c fiber.Ctx) error {
	var req bookshelf.AddBookRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	book, err := bookshelf.ValidateAddBook(req)
	if err != nil {
		return s.respondError(c, "add book", err)
	}

	mode := bookshelf.ParseStrictFlag(c.Query("strict"))
	if err := s.store.PutBook(c.Context(), book, mode); err != nil {
		return s.respondError(c, "add book", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Book added successfully!"})
}

// handleAddReview creates (or with the default upsert mode, replaces) a
// review. The referenced book is not checked to exist.
//
//	POST /books/:bookId/reviews?strict=true
func (s *Server) handleAddReview(c fiber.Ctx) error {
	var req bookshelf.AddReviewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	review, err := bookshelf.ValidateAddReview(c.Params("bookId"), req)
	if err != nil {
		return s.respondError(c, "add review", err)
	}

	mode := bookshelf.ParseStrictFlag(c.Query("strict"))
	if err := s.store.PutReview(c.Context(), review, mode); err != nil {
		return s.respondError(c, "add review", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review added successfully!"})
}

// handleUpdateReview rewrites a review's text behind the lastUpdated guard.
// A stale token is the one place a concurrent write is reported instead of
// silently lost.
//
//	PUT /books/:bookId/reviews/:reviewerName
func (s *Server) handleUpdateReview(c fiber.Ctx) error {
	var req bookshelf.UpdateReviewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	key, err := bookshelf.ValidateUpdateReview(c.Params("bookId"), c.Params("reviewerName"), req)
	if err != nil {
		return s.respondError(c, "update review", err)
	}

	review, err := s.store.UpdateReview(c.Context(), key, req.ReviewText, req.LastUpdated)
	if err != nil {
		if bookshelf.IsConflict(err) {
			bookshelf.LogConflictDetected(s.logger, key.BookID, key.ReviewerName)
		}
		return s.respondError(c, "update review", err)
	}

	return c.JSON(fiber.Map{
		"message": "Review updated successfully!",
		"data":    review,
	})
}

// respondError maps the error taxonomy to HTTP statuses: validation 400,
// not found 404, conflict 409, everything else 500. Internal detail is
// logged, never returned beyond the message string.
func (s *Server) respondError(c fiber.Ctx, operation string, err error) error {
	var ce *bookshelf.CatalogError
	if errors.As(err, &ce) {
		switch ce.Code {
		case bookshelf.ErrCodeValidation:
			bookshelf.LogValidationFailed(s.logger, operation, err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ce.Message})
		case bookshelf.ErrCodeNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": ce.Message})
		case bookshelf.ErrCodeConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": ce.Message})
		}
	}

	bookshelf.LogStoreError(s.logger, operation, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
