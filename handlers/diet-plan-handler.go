package handler

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/ai"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/middleware"
	"github.com/krishkalaria12/vitalplan-api/models"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type dietPlanInput struct {
	Name              *string         `json:"name"`
	Description       *string         `json:"description"`
	TotalCalories     *int            `json:"total_calories"`
	Macros            json.RawMessage `json:"macros"`
	Meals             json.RawMessage `json:"meals"`
	Supplements       json.RawMessage `json:"supplements"`
	AIRecommendations *[]string       `json:"ai_recommendations"`
	Goals             json.RawMessage `json:"goals"`
	IsActive          *bool           `json:"is_active"`
}

func (in dietPlanInput) apply(plan *models.DietPlan) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return badRequest("Name is required")
		}
		plan.Name = name
	}
	if in.Description != nil {
		plan.Description = *in.Description
	}
	if in.TotalCalories != nil {
		if *in.TotalCalories < 0 {
			return badRequest("Invalid total calories")
		}
		plan.TotalCalories = *in.TotalCalories
	}
	if in.Macros != nil {
		plan.Macros = datatypes.JSON(in.Macros)
	}
	if in.Meals != nil {
		plan.Meals = datatypes.JSON(in.Meals)
	}
	if in.Supplements != nil {
		plan.Supplements = datatypes.JSON(in.Supplements)
	}
	if in.AIRecommendations != nil {
		plan.AIRecommendations = *in.AIRecommendations
	}
	if in.Goals != nil {
		plan.Goals = datatypes.JSON(in.Goals)
	}
	if in.IsActive != nil {
		plan.IsActive = *in.IsActive
	}
	return nil
}

func (h *Handler) ListDietPlans(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	plans, err := h.DietPlans.ListActive(c.UserContext(), user.ID)
	if err != nil {
		return storeError(err, "Diet plan not found")
	}
	return respond(c, fiber.StatusOK, "Diet plans found", plans)
}

func (h *Handler) CreateDietPlan(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var input dietPlanInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}
	if input.Name == nil {
		return badRequest("Name is required")
	}

	plan := &models.DietPlan{UserID: user.ID}
	if err := input.apply(plan); err != nil {
		return err
	}

	if err := h.DietPlans.Create(c.UserContext(), plan); err != nil {
		logger.Error("failed to create diet plan", zap.Uint("user_id", user.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create diet plan")
	}
	return respond(c, fiber.StatusCreated, "Diet plan created successfully", plan)
}

func profileOf(user *models.User) ai.Profile {
	return ai.Profile{
		ID:                  user.ID,
		Age:                 user.Age,
		Gender:              user.Gender,
		Height:              user.Height,
		Weight:              user.Weight,
		ActivityLevel:       user.ActivityLevel,
		DietaryRestrictions: user.DietaryRestrictions,
		Allergies:           user.Allergies,
	}
}

// GenerateDietPlan asks the model for a plan and stores it. Without goals in
// the request the user's active goals are used.
func (h *Handler) GenerateDietPlan(c *fiber.Ctx) error {
	type generateInput struct {
		Goals       []ai.GoalInput `json:"goals"`
		Preferences map[string]any `json:"preferences"`
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var input generateInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return invalidBody()
		}
	}

	ctx := c.UserContext()
	goals := input.Goals
	if len(goals) == 0 {
		active, err := h.Goals.ListActive(ctx, user.ID)
		if err != nil {
			return generateFailed(err)
		}
		goals = make([]ai.GoalInput, 0, len(active))
		for _, g := range active {
			goals = append(goals, ai.GoalInput{
				Type:        g.Type,
				Title:       g.Title,
				Description: g.Description,
				Priority:    g.Priority,
				TargetDate:  g.TargetDate,
			})
		}
	}

	generated, err := h.AI.GenerateDietPlan(ctx, profileOf(user), goals)
	if err != nil {
		return generateFailed(err)
	}

	goalsJSON, err := json.Marshal(generated.Goals)
	if err != nil {
		return generateFailed(err)
	}

	plan := &models.DietPlan{
		UserID:            user.ID,
		Name:              "AI Diet Plan - " + generated.GeneratedAt.Format("2006-01-02T15:04:05"),
		Description:       "AI-generated personalized diet plan",
		TotalCalories:     int(math.Round(generated.TotalCalories)),
		Macros:            datatypes.JSON(generated.Macros),
		Meals:             datatypes.JSON(generated.Meals),
		Supplements:       datatypes.JSON(generated.Supplements),
		AIRecommendations: generated.AIRecommendations,
		Goals:             datatypes.JSON(goalsJSON),
	}
	if err := h.DietPlans.Create(ctx, plan); err != nil {
		return generateFailed(err)
	}

	return respond(c, fiber.StatusCreated, "Diet plan generated successfully", plan)
}

func generateFailed(err error) error {
	logger.Error("failed to generate diet plan", zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate diet plan: "+err.Error())
}

func (h *Handler) GetDietPlan(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	plan, err := h.DietPlans.Get(c.UserContext(), user.ID, id)
	if err != nil {
		return storeError(err, "Diet plan not found")
	}
	return respond(c, fiber.StatusOK, "Diet plan found", plan)
}

func (h *Handler) UpdateDietPlan(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var input dietPlanInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}

	plan, err := h.DietPlans.Get(c.UserContext(), user.ID, id)
	if err != nil {
		return storeError(err, "Diet plan not found")
	}
	if err := input.apply(plan); err != nil {
		return err
	}

	if err := h.DietPlans.Save(c.UserContext(), plan); err != nil {
		logger.Error("failed to update diet plan", zap.Uint("plan_id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update diet plan")
	}
	return respond(c, fiber.StatusOK, "Diet plan updated successfully", plan)
}

func (h *Handler) DeleteDietPlan(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.DietPlans.Deactivate(c.UserContext(), user.ID, id); err != nil {
		return storeError(err, "Diet plan not found")
	}
	return respond(c, fiber.StatusOK, "Diet plan deleted successfully", nil)
}
