package core

import (
	"context"

	"nutrilog.app/food-tracker/internal/catalog"
)

// RecipeSummary is the aggregate result of analyzing a recipe. Totals cover
// the whole recipe; callers divide by Servings for per-serving values.
type RecipeSummary struct {
	Name          string   `json:"name"`
	Ingredients   []string `json:"ingredients"`
	TotalCalories float64  `json:"totalCalories"`
	TotalProtein  float64  `json:"totalProtein"`
	TotalCarbs    float64  `json:"totalCarbs"`
	TotalFat      float64  `json:"totalFat"`
	Servings      int      `json:"servings"`
}

// Analyzer is the food-recognition capability behind photo scanning and
// recipe import. Both calls may be slow and must not block callers that need
// to stay responsive; run them off the hot path and pass a context.
//
// StubAnalyzer is the default simulated implementation; GeminiAnalyzer is
// the production one.
type Analyzer interface {
	// ClassifyImage returns the single best-guess food for an image
	// reference.
	ClassifyImage(ctx context.Context, imageName string) (catalog.FoodItem, error)

	// ParseRecipeURL fetches and analyzes a recipe page, returning whole-
	// recipe totals plus a serving count.
	ParseRecipeURL(ctx context.Context, url string) (RecipeSummary, error)
}
