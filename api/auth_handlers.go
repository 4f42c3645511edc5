package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sicko7947/bookshelf"
	"github.com/sicko7947/bookshelf/auth"
)

type signUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type confirmSignUpRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signOutRequest struct {
	AccessToken string `json:"accessToken"`
}

// POST /auth/signup
func (s *Server) handleSignUp(c fiber.Ctx) error {
	var req signUpRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return s.respondError(c, "signup", bookshelf.NewValidationError(missing...))
	}

	if err := s.auth.SignUp(c.Context(), req.Username, req.Password, req.Email); err != nil {
		bookshelf.LogAuthError(s.logger, "signup", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Signup failed"})
	}

	return c.JSON(fiber.Map{"message": "Signup successful"})
}

// POST /auth/confirm
func (s *Server) handleConfirmSignUp(c fiber.Ctx) error {
	var req confirmSignUpRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Code == "" {
		missing = append(missing, "code")
	}
	if len(missing) > 0 {
		return s.respondError(c, "confirm signup", bookshelf.NewValidationError(missing...))
	}

	if err := s.auth.ConfirmSignUp(c.Context(), req.Username, req.Code); err != nil {
		bookshelf.LogAuthError(s.logger, "confirm signup", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Confirmation failed"})
	}

	return c.JSON(fiber.Map{"message": "Signup confirmed"})
}

// POST /auth/signin
func (s *Server) handleSignIn(c fiber.Ctx) error {
	var req signInRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return s.respondError(c, "signin", bookshelf.NewValidationError(missing...))
	}

	tokens, err := s.auth.SignIn(c.Context(), req.Username, req.Password)
	if err != nil {
		bookshelf.LogAuthError(s.logger, "signin", err)
		if auth.IsNotAuthorized(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Signin failed"})
	}

	return c.JSON(fiber.Map{
		"message": "Signin successful",
		"tokens":  tokens,
	})
}

// POST /auth/signout
func (s *Server) handleSignOut(c fiber.Ctx) error {
	var req signOutRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.AccessToken == "" {
		return s.respondError(c, "signout", bookshelf.NewValidationError("accessToken"))
	}

	if err := s.auth.SignOut(c.Context(), req.AccessToken); err != nil {
		bookshelf.LogAuthError(s.logger, "signout", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Signout failed"})
	}

	return c.JSON(fiber.Map{"message": "Signout successful"})
}
