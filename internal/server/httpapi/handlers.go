package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/dmitrijs2005/linkhub/internal/server/accounts"
)

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(healthResponse{Status: "ok", Service: "linkhub-auth"})
}

func (s *Server) signUp(c *fiber.Ctx) error {
	req := &signUpRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Invalid signup payload."})
	}

	view, err := s.accounts.Register(c.UserContext(), req.FullName, req.Email, req.Password, req.Headline)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Name, email, and password are required."})
		case errors.Is(err, common.ErrorAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(messageResponse{Message: "Account already exists. Try signing in."})
		default:
			return s.internalError(c, "signup", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(signUpResponse{
		Message: "Account created. Welcome to LinkHub.",
		Profile: *view,
	})
}

func (s *Server) signIn(c *fiber.Ctx) error {
	req := &signInRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Invalid signin payload."})
	}

	view, profile, token, err := s.accounts.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Email and password are required."})
		case errors.Is(err, common.ErrorInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(messageResponse{Message: "Invalid credentials. Please try again."})
		default:
			return s.internalError(c, "signin", err)
		}
	}

	return c.JSON(signInResponse{
		Message:     "Signed in. Redirecting you to LinkHub.",
		Token:       token,
		Profile:     *view,
		ProfileData: profile,
	})
}

func (s *Server) updateProfile(c *fiber.Ctx) error {
	req := &updateProfileRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Invalid profile payload."})
	}

	profile := accounts.Profile{
		WorkHistory: req.WorkHistory,
		Education:   req.Education,
		Skills:      req.Skills,
		Interests:   req.Interests,
	}

	err := s.accounts.UpdateProfile(c.UserContext(), req.Email, profile)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Email is required for profile updates."})
		case errors.Is(err, common.ErrorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(messageResponse{Message: "User not found. Sign in again."})
		default:
			return s.internalError(c, "update-profile", err)
		}
	}

	return c.JSON(messageResponse{Message: "Profile updated successfully."})
}

func (s *Server) profile(c *fiber.Ctx) error {
	email := c.Query("email")

	profile, err := s.accounts.GetProfile(c.UserContext(), email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Email is required."})
		case errors.Is(err, common.ErrorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(messageResponse{Message: "Profile not found."})
		default:
			return s.internalError(c, "profile", err)
		}
	}

	return c.JSON(profileResponse{ProfileData: profile})
}

// internalError logs the failure with detail and answers with a generic
// message; backend specifics never reach the caller.
func (s *Server) internalError(c *fiber.Ctx, op string, err error) error {
	s.logger.Error(c.UserContext(), "request failed", "op", op, "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: "Something went wrong. Please try again later."})
}
