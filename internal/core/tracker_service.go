package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"nutrilog.app/food-tracker/internal/catalog"
	"nutrilog.app/food-tracker/internal/store"
)

// ErrFoodNotFound is returned when a log request names a food id the catalog
// does not have.
var ErrFoodNotFound = errors.New("food not found")

var validMealTypes = map[string]bool{
	store.MealBreakfast: true,
	store.MealLunch:     true,
	store.MealDinner:    true,
	store.MealSnack:     true,
}

var validSources = map[string]bool{
	store.SourceManual: true,
	store.SourceVoice:  true,
	store.SourcePhoto:  true,
	store.SourceRecipe: true,
}

// TrackerService composes the catalog, the daily log store and the analyzer
// into the operations the presentation layer calls.
type TrackerService struct {
	logs     *store.LogStore
	analyzer Analyzer
}

func NewTrackerService(logs *store.LogStore, analyzer Analyzer) *TrackerService {
	return &TrackerService{
		logs:     logs,
		analyzer: analyzer,
	}
}

// SearchFoods treats a blank query as "no results", per the catalog's
// caller-side contract.
func (s *TrackerService) SearchFoods(query string) []catalog.FoodItem {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	return catalog.Search(query)
}

func (s *TrackerService) LookupFood(id string) (catalog.FoodItem, bool) {
	return catalog.Lookup(id)
}

// LogFood appends a meal for the given catalog food to the log for date,
// denormalizing the food's name and macros so the entry survives catalog
// changes.
func (s *TrackerService) LogFood(date, foodID string, quantity float64, mealType, source string) (store.Meal, error) {
	if quantity <= 0 {
		return store.Meal{}, fmt.Errorf("quantity must be positive, got %v", quantity)
	}
	if !validMealTypes[mealType] {
		return store.Meal{}, fmt.Errorf("invalid meal type %q", mealType)
	}
	if source == "" {
		source = store.SourceManual
	}
	if !validSources[source] {
		return store.Meal{}, fmt.Errorf("invalid meal source %q", source)
	}

	food, ok := catalog.Lookup(foodID)
	if !ok {
		return store.Meal{}, ErrFoodNotFound
	}

	return s.logs.AddMeal(date, store.Meal{
		FoodID:   food.ID,
		FoodName: food.Name,
		Calories: food.Calories,
		Protein:  food.Protein,
		Carbs:    food.Carbs,
		Fat:      food.Fat,
		Serving:  food.Serving,
		Quantity: quantity,
		Type:     mealType,
		Source:   source,
	})
}

// LogRecipe appends one serving of an analyzed recipe: whole-recipe totals
// divided by the serving count, rounded to the nearest whole value.
func (s *TrackerService) LogRecipe(date string, summary RecipeSummary, mealType string) (store.Meal, error) {
	if !validMealTypes[mealType] {
		return store.Meal{}, fmt.Errorf("invalid meal type %q", mealType)
	}
	servings := summary.Servings
	if servings < 1 {
		servings = 1
	}
	perServing := func(total float64) float64 {
		return math.Round(total / float64(servings))
	}

	return s.logs.AddMeal(date, store.Meal{
		FoodID:   fmt.Sprintf("recipe-%d", time.Now().UnixMilli()),
		FoodName: summary.Name,
		Calories: perServing(summary.TotalCalories),
		Protein:  perServing(summary.TotalProtein),
		Carbs:    perServing(summary.TotalCarbs),
		Fat:      perServing(summary.TotalFat),
		Serving:  "1 porção",
		Quantity: 1,
		Type:     mealType,
		Source:   store.SourceRecipe,
	})
}

func (s *TrackerService) DeleteMeal(date, mealID string) error {
	return s.logs.DeleteMeal(date, mealID)
}

func (s *TrackerService) DailyLog(date string) store.DailyLog {
	return s.logs.Log(date)
}

func (s *TrackerService) Goal() int {
	return s.logs.Goal()
}

func (s *TrackerService) SetGoal(goal int) error {
	return s.logs.SetGoal(goal)
}

// DailySummary is the derived display math for one date.
type DailySummary struct {
	Date              string  `json:"date"`
	TotalCalories     float64 `json:"totalCalories"`
	TotalProtein      float64 `json:"totalProtein"`
	TotalCarbs        float64 `json:"totalCarbs"`
	TotalFat          float64 `json:"totalFat"`
	CalorieGoal       int     `json:"calorieGoal"`
	RemainingCalories float64 `json:"remainingCalories"`
	GoalPercent       float64 `json:"goalPercent"`
}

// Summary derives remaining calories (may be negative) and progress toward
// the goal, clamped at 100.
func (s *TrackerService) Summary(date string) DailySummary {
	dayLog := s.logs.Log(date)

	percent := 0.0
	if dayLog.CalorieGoal > 0 {
		percent = math.Min(100, 100*dayLog.TotalCalories/float64(dayLog.CalorieGoal))
	}

	return DailySummary{
		Date:              dayLog.Date,
		TotalCalories:     dayLog.TotalCalories,
		TotalProtein:      dayLog.TotalProtein,
		TotalCarbs:        dayLog.TotalCarbs,
		TotalFat:          dayLog.TotalFat,
		CalorieGoal:       dayLog.CalorieGoal,
		RemainingCalories: float64(dayLog.CalorieGoal) - dayLog.TotalCalories,
		GoalPercent:       percent,
	}
}

// ScanPhoto runs the analyzer on an image reference and returns the best
// guess food for the caller to confirm and log.
func (s *TrackerService) ScanPhoto(ctx context.Context, imageName string) (catalog.FoodItem, error) {
	return s.analyzer.ClassifyImage(ctx, imageName)
}

// ImportRecipe analyzes a recipe URL. The caller decides whether to log a
// serving of the result (see LogRecipe).
func (s *TrackerService) ImportRecipe(ctx context.Context, url string) (RecipeSummary, error) {
	return s.analyzer.ParseRecipeURL(ctx, url)
}
