package ai

import (
	"fmt"
	"strings"
)

const foodAnalysisPrompt = `Analyze this food image and provide detailed nutritional information.
Return only a JSON object with the following structure:
{
    "food_name": "Name of the food item",
    "confidence": 0.95,
    "serving_size": "1 medium apple (182g)",
    "calories": 95,
    "macros": {
        "protein": 0.5,
        "carbs": 25,
        "fat": 0.3
    },
    "nutrition_details": {
        "vitamins": {"Vitamin C": "14% DV", "Vitamin K": "5% DV"},
        "minerals": {"Potassium": "6% DV", "Manganese": "3% DV"},
        "fiber": 4.4,
        "sugar": 19,
        "sodium": 2,
        "cholesterol": 0,
        "saturated_fat": 0.1,
        "trans_fat": 0
    },
    "ai_insights": [
        "Rich in antioxidants and fiber",
        "Great for heart health",
        "Natural source of energy"
    ]
}

Be accurate with nutritional values and provide helpful health insights.`

const dietPlanShape = `Create a comprehensive, personalized diet plan and return only a JSON object with the following structure:
{
    "total_calories": 2000,
    "macros": {"protein": 150, "carbs": 200, "fat": 67},
    "meals": [
        {
            "id": "meal-1",
            "name": "Power Protein Breakfast Bowl",
            "type": "breakfast",
            "description": "Greek yogurt with berries and nuts",
            "ingredients": ["Greek yogurt (200g)", "Mixed berries (100g)", "Almonds (30g)"],
            "calories": 485,
            "macros": {"protein": 38, "carbs": 32, "fat": 18},
            "prep_time": 5,
            "difficulty": "easy",
            "instructions": ["Add yogurt to bowl", "Top with berries and nuts"],
            "nutrition_details": {
                "vitamins": {"Vitamin C": "45mg", "Vitamin B12": "2.4µg"},
                "minerals": {"Calcium": "320mg", "Iron": "2.1mg"},
                "fiber": 8.5,
                "sugar": 24,
                "sodium": 95,
                "cholesterol": 15,
                "saturated_fat": 4.2,
                "trans_fat": 0
            }
        }
    ],
    "supplements": [
        {
            "id": "supp-1",
            "name": "Omega-3 Fish Oil",
            "description": "High-potency fish oil for heart health",
            "dosage": "2 capsules daily",
            "timing": "With meals",
            "benefits": ["Heart health", "Brain function", "Anti-inflammatory"],
            "price": 29.99
        }
    ],
    "ai_recommendations": [
        "Focus on lean proteins for muscle building",
        "Include antioxidant-rich foods for skin health"
    ]
}

Ensure the plan is tailored to the user's goals, restrictions, and preferences.
Include 4 meals (breakfast, lunch, dinner, snack) and 2-3 relevant supplements.`

// Profile defaults used when the user has not filled the field in.
const (
	defaultAge           = 25
	defaultGender        = "other"
	defaultHeight        = 170
	defaultWeight        = 70
	defaultActivityLevel = "moderate"
	defaultPriority      = "medium"
)

func buildFoodAnalysisPrompt() string {
	return foodAnalysisPrompt
}

func buildDietPlanPrompt(p Profile, goals []GoalInput) string {
	age := p.Age
	if age <= 0 {
		age = defaultAge
	}
	gender := orDefault(p.Gender, defaultGender)
	height := p.Height
	if height <= 0 {
		height = defaultHeight
	}
	weight := p.Weight
	if weight <= 0 {
		weight = defaultWeight
	}
	activity := orDefault(p.ActivityLevel, defaultActivityLevel)

	var b strings.Builder
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Age: %d\n", age)
	fmt.Fprintf(&b, "- Gender: %s\n", gender)
	fmt.Fprintf(&b, "- Height: %gcm\n", height)
	fmt.Fprintf(&b, "- Weight: %gkg\n", weight)
	fmt.Fprintf(&b, "- Activity Level: %s\n", activity)
	fmt.Fprintf(&b, "- Dietary Restrictions: %s\n", strings.Join(p.DietaryRestrictions, ", "))
	fmt.Fprintf(&b, "- Allergies: %s\n", strings.Join(p.Allergies, ", "))
	b.WriteString("\nGoals:\n")
	for _, g := range goals {
		fmt.Fprintf(&b, "- %s: %s (Priority: %s)\n", g.Title, g.Description, orDefault(g.Priority, defaultPriority))
	}
	b.WriteString("\n")
	b.WriteString(dietPlanShape)
	return b.String()
}

func buildInsightsPrompt(n NutritionSummary) string {
	return fmt.Sprintf(`Based on this nutritional information:
Calories: %g
Protein: %gg
Carbs: %gg
Fat: %gg
Fiber: %gg

Provide 3-4 brief, actionable health insights about this food.
Return as a JSON array of strings.`, n.Calories, n.Protein, n.Carbs, n.Fat, n.Fiber)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
