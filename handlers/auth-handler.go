package handler

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/auth"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/middleware"
	"github.com/krishkalaria12/vitalplan-api/models"
	"github.com/krishkalaria12/vitalplan-api/repository"
	"go.uber.org/zap"
)

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

func isEmail(identity string) bool {
	_, err := mail.ParseAddress(identity)
	return err == nil
}

func (h *Handler) setTokenCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.Config.SecureCookie,
		SameSite: "Lax",
	})
}

// issue signs a token for user, sets the cookie and builds the response body.
func (h *Handler) issue(c *fiber.Ctx, user *models.User) (*tokenResponse, error) {
	tokenStr, err := h.Tokens.Issue(user)
	if err != nil {
		logger.Error("failed to generate token", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}
	h.setTokenCookie(c, tokenStr, h.now().Add(h.Config.CookieDuration))
	return &tokenResponse{AccessToken: tokenStr, TokenType: "bearer", User: user}, nil
}

func (h *Handler) Register(c *fiber.Ctx) error {
	type registerInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		profileInput
	}

	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}

	input.Email = strings.TrimSpace(input.Email)
	if !isEmail(input.Email) {
		return badRequest("Invalid email address")
	}
	if input.Password == "" {
		return badRequest("Password is required")
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return badRequest("Name is required")
	}

	user := &models.User{Email: input.Email, IsActive: true}
	if err := input.apply(user); err != nil {
		return err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.Password = hash

	if err := h.Users.Create(c.UserContext(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		logger.Error("failed to create user", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	resp, err := h.issue(c, user)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "User registered successfully", resp)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	type loginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}

	user, err := h.Users.GetByEmail(c.UserContext(), input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		logger.Error("failed to load user", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	if !auth.CheckPasswordHash(input.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusUnauthorized, "Account is inactive")
	}

	resp, err := h.issue(c, user)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Login successful", resp)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	h.setTokenCookie(c, "", h.now().Add(-time.Hour))
	return respond(c, fiber.StatusOK, "Logout successful", nil)
}
