package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/krishkalaria12/vitalplan-api/logger"
	"go.uber.org/zap"
)

const (
	insightsMaxTokens   = 200
	insightsTemperature = 0.3
)

type Options struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Service runs the prompt, call and parse round trips against a Provider.
type Service struct {
	provider Provider
	opts     Options
	now      func() time.Time
}

func NewService(provider Provider, opts Options) *Service {
	return &Service{provider: provider, opts: opts, now: time.Now}
}

func (s *Service) complete(ctx context.Context, req Request) (string, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	return s.provider.Complete(ctx, req)
}

// AnalyzeFoodImage resizes the image, asks the model for nutrition facts and
// returns the parsed result together with the JPEG that was sent.
func (s *Service) AnalyzeFoodImage(ctx context.Context, data []byte) (*FoodAnalysis, []byte, error) {
	img, err := PrepareImage(data)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.complete(ctx, Request{
		Prompt:      buildFoodAnalysisPrompt(),
		Image:       img,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		logger.Error("error analyzing food image", zap.Error(err))
		return nil, nil, err
	}

	var analysis FoodAnalysis
	if err := decodeJSON(content, &analysis); err != nil {
		logger.Error("error analyzing food image", zap.Error(err))
		return nil, nil, err
	}
	if analysis.FoodName == "" {
		return nil, nil, fmt.Errorf("%w: missing food_name", ErrInvalidAIResponse)
	}

	analysis.AnalyzedAt = s.now().UTC()
	analysis.ImageProcessed = true
	return &analysis, img, nil
}

// GenerateDietPlan asks the model for a plan tailored to profile and goals.
func (s *Service) GenerateDietPlan(ctx context.Context, profile Profile, goals []GoalInput) (*GeneratedPlan, error) {
	content, err := s.complete(ctx, Request{
		Prompt:      buildDietPlanPrompt(profile, goals),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		logger.Error("error generating diet plan", zap.Uint("user_id", profile.ID), zap.Error(err))
		return nil, err
	}

	var plan GeneratedPlan
	if err := decodeJSON(content, &plan); err != nil {
		logger.Error("error generating diet plan", zap.Uint("user_id", profile.ID), zap.Error(err))
		return nil, err
	}

	plan.GeneratedAt = s.now().UTC()
	plan.UserID = profile.ID
	plan.Goals = goals
	return &plan, nil
}

// NutritionInsights returns short health insights. A JSON value that is not
// an array yields no insights.
func (s *Service) NutritionInsights(ctx context.Context, n NutritionSummary) ([]string, error) {
	content, err := s.complete(ctx, Request{
		Prompt:      buildInsightsPrompt(n),
		MaxTokens:   insightsMaxTokens,
		Temperature: insightsTemperature,
	})
	if err != nil {
		logger.Error("error generating insights", zap.Error(err))
		return nil, err
	}

	var raw any
	if err := decodeJSON(content, &raw); err != nil {
		logger.Error("error generating insights", zap.Error(err))
		return nil, err
	}

	insights := []string{}
	if list, ok := raw.([]any); ok {
		for _, item := range list {
			if str, ok := item.(string); ok {
				insights = append(insights, str)
			}
		}
	}
	return insights, nil
}

// BarcodePlaceholder is returned for barcode scans until a product database
// is wired in. It is never marked as image-processed.
func BarcodePlaceholder(barcode string, at time.Time) *FoodAnalysis {
	return &FoodAnalysis{
		FoodName:    "Scanned Product",
		Barcode:     barcode,
		Confidence:  0.9,
		ServingSize: "1 serving",
		Calories:    150,
		Macros:      map[string]float64{"protein": 5, "carbs": 20, "fat": 6},
		NutritionDetails: map[string]any{
			"vitamins":      map[string]string{"Vitamin C": "10% DV"},
			"minerals":      map[string]string{"Iron": "5% DV"},
			"fiber":         3,
			"sugar":         8,
			"sodium":        200,
			"cholesterol":   0,
			"saturated_fat": 2,
			"trans_fat":     0,
		},
		AIInsights: []string{
			"Moderate calorie content",
			"Good source of carbohydrates",
			"Watch sodium intake",
		},
		AnalyzedAt:     at.UTC(),
		ImageProcessed: false,
	}
}
