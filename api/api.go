// Package api exposes the catalogue and auth operations over HTTP.
// Every handler is stateless: validate, one store call, JSON response.
package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/sicko7947/bookshelf"
	"github.com/sicko7947/bookshelf/auth"
)

// Server holds the collaborators the handlers need. It keeps no per-request
// state; concurrency is entirely inter-request.
type Server struct {
	store  bookshelf.CatalogStore
	auth   *auth.Service
	logger zerolog.Logger
}

// New creates a new API server. authService may be nil, in which case the
// auth routes are not registered.
func New(store bookshelf.CatalogStore, authService *auth.Service, logger zerolog.Logger) *Server {
	return &Server{
		store:  store,
		auth:   authService,
		logger: logger,
	}
}

// Router builds the fiber application with all routes and middleware.
func (s *Server) Router() *fiber.App {
	app := fiber.New()

	app.Use(s.requestLogger())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "bookshelf",
		})
	})

	// Listing the catalogue is public; everything else on /books requires
	// a bearer token (validated upstream, only presence is checked here).
	app.Get("/books", s.handleListBooks)

	books := app.Group("/books", requireBearer())
	books.Get("/:bookId", s.handleGetBook)
	books.Post("/", s.handleAddBook)
	books.Post("/:bookId/reviews", s.handleAddReview)
	books.Put("/:bookId/reviews/:reviewerName", s.handleUpdateReview)

	if s.auth != nil {
		authGroup := app.Group("/auth")
		authGroup.Post("/signup", s.handleSignUp)
		authGroup.Post("/confirm", s.handleConfirmSignUp)
		authGroup.Post("/signin", s.handleSignIn)
		authGroup.Post("/signout", s.handleSignOut)
	}

	return app
}
