package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/middleware"
	"github.com/krishkalaria12/vitalplan-api/models"
	"go.uber.org/zap"
)

// profileInput carries the editable profile fields. Nil fields are left
// untouched.
type profileInput struct {
	Name                *string   `json:"name"`
	Age                 *int      `json:"age"`
	Height              *float64  `json:"height"`
	Weight              *float64  `json:"weight"`
	Gender              *string   `json:"gender"`
	ActivityLevel       *string   `json:"activity_level"`
	DietaryRestrictions *[]string `json:"dietary_restrictions"`
	Allergies           *[]string `json:"allergies"`
	Avatar              *string   `json:"avatar"`
	Bio                 *string   `json:"bio"`
	Location            *string   `json:"location"`
}

func (p profileInput) apply(user *models.User) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return badRequest("Name cannot be empty")
		}
		user.Name = name
	}
	if p.Age != nil {
		if *p.Age < 0 {
			return badRequest("Invalid age")
		}
		user.Age = *p.Age
	}
	if p.Height != nil {
		if *p.Height < 0 {
			return badRequest("Invalid height")
		}
		user.Height = *p.Height
	}
	if p.Weight != nil {
		if *p.Weight < 0 {
			return badRequest("Invalid weight")
		}
		user.Weight = *p.Weight
	}
	if p.Gender != nil {
		if !models.ValidGender(*p.Gender) {
			return badRequest("Invalid gender")
		}
		user.Gender = *p.Gender
	}
	if p.ActivityLevel != nil {
		if !models.ValidActivityLevel(*p.ActivityLevel) {
			return badRequest("Invalid activity level")
		}
		user.ActivityLevel = *p.ActivityLevel
	}
	if p.DietaryRestrictions != nil {
		user.DietaryRestrictions = *p.DietaryRestrictions
	}
	if p.Allergies != nil {
		user.Allergies = *p.Allergies
	}
	if p.Avatar != nil {
		user.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		user.Bio = *p.Bio
	}
	if p.Location != nil {
		user.Location = *p.Location
	}
	return nil
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "User found", user)
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}

	updated := *user
	if err := input.apply(&updated); err != nil {
		return err
	}

	if err := h.Users.Save(c.UserContext(), &updated); err != nil {
		logger.Error("failed to update user", zap.Uint("user_id", user.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	return respond(c, fiber.StatusOK, "User successfully updated", &updated)
}

// DeleteProfile deactivates the account and clears the session cookie.
func (h *Handler) DeleteProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	updated := *user
	updated.IsActive = false
	if err := h.Users.Save(c.UserContext(), &updated); err != nil {
		logger.Error("failed to deactivate user", zap.Uint("user_id", user.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}

	h.setTokenCookie(c, "", h.now().Add(-time.Hour))
	return respond(c, fiber.StatusOK, "User deleted successfully", nil)
}
