package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/middleware"
	"github.com/krishkalaria12/vitalplan-api/models"
	"go.uber.org/zap"
)

// date accepts RFC 3339 timestamps and plain YYYY-MM-DD dates. Set records
// that the field was present; null or "" leave Time zero to clear it.
type date struct {
	time.Time
	Set bool
}

func (d *date) UnmarshalJSON(b []byte) error {
	d.Set = true
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

type goalInput struct {
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	TargetDate  date    `json:"target_date"`
	IsActive    *bool   `json:"is_active"`
}

func (in goalInput) apply(goal *models.Goal) error {
	if in.Type != nil {
		if !models.ValidGoalType(*in.Type) {
			return badRequest("Invalid goal type")
		}
		goal.Type = *in.Type
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return badRequest("Title is required")
		}
		goal.Title = title
	}
	if in.Description != nil {
		goal.Description = *in.Description
	}
	if in.Priority != nil {
		if !models.ValidGoalPriority(*in.Priority) {
			return badRequest("Invalid goal priority")
		}
		goal.Priority = *in.Priority
	}
	if in.TargetDate.Set {
		if in.TargetDate.IsZero() {
			goal.TargetDate = nil
		} else {
			t := in.TargetDate.Time
			goal.TargetDate = &t
		}
	}
	if in.IsActive != nil {
		goal.IsActive = *in.IsActive
	}
	return nil
}

func (h *Handler) ListGoals(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	goals, err := h.Goals.ListActive(c.UserContext(), user.ID)
	if err != nil {
		return storeError(err, "Goal not found")
	}
	return respond(c, fiber.StatusOK, "Goals found", goals)
}

func (h *Handler) CreateGoal(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var input goalInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}
	if input.Type == nil {
		return badRequest("Goal type is required")
	}
	if input.Title == nil {
		return badRequest("Title is required")
	}

	goal := &models.Goal{UserID: user.ID, Priority: models.DefaultGoalPriority}
	if err := input.apply(goal); err != nil {
		return err
	}

	if err := h.Goals.Create(c.UserContext(), goal); err != nil {
		logger.Error("failed to create goal", zap.Uint("user_id", user.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create goal")
	}
	return respond(c, fiber.StatusCreated, "Goal created successfully", goal)
}

func (h *Handler) UpdateGoal(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var input goalInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}

	goal, err := h.Goals.Get(c.UserContext(), user.ID, id)
	if err != nil {
		return storeError(err, "Goal not found")
	}
	if err := input.apply(goal); err != nil {
		return err
	}

	if err := h.Goals.Save(c.UserContext(), goal); err != nil {
		logger.Error("failed to update goal", zap.Uint("goal_id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update goal")
	}
	return respond(c, fiber.StatusOK, "Goal updated successfully", goal)
}

func (h *Handler) DeleteGoal(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.Goals.Deactivate(c.UserContext(), user.ID, id); err != nil {
		return storeError(err, "Goal not found")
	}
	return respond(c, fiber.StatusOK, "Goal deleted successfully", nil)
}
