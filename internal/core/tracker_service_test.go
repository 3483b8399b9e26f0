package core

import (
	"context"
	"math"
	"testing"

	"nutrilog.app/food-tracker/internal/store"
)

const testDate = "2025-06-15"

func newTestService(t *testing.T) *TrackerService {
	t.Helper()
	logs, err := store.NewLogStore(store.NewMemoryBlobStore())
	if err != nil {
		t.Fatalf("NewLogStore: %v", err)
	}
	return NewTrackerService(logs, NewStubAnalyzer(0))
}

func TestSearchFoodsBlankQuery(t *testing.T) {
	s := newTestService(t)

	if results := s.SearchFoods(""); len(results) != 0 {
		t.Errorf("blank query returned %d results, want 0", len(results))
	}
	if results := s.SearchFoods("   "); len(results) != 0 {
		t.Errorf("whitespace query returned %d results, want 0", len(results))
	}
	if results := s.SearchFoods("ovo"); len(results) == 0 {
		t.Error("expected results for 'ovo'")
	}
}

func TestLogFoodDenormalizesCatalogEntry(t *testing.T) {
	s := newTestService(t)

	meal, err := s.LogFood(testDate, "2", 2, store.MealBreakfast, store.SourceManual)
	if err != nil {
		t.Fatalf("LogFood: %v", err)
	}
	if meal.FoodName != "Ovo" || meal.Calories != 155 || meal.Serving != "1 unidade" {
		t.Errorf("meal not denormalized from catalog: %+v", meal)
	}

	dayLog := s.DailyLog(testDate)
	if math.Abs(dayLog.TotalCalories-310) > 1e-9 {
		t.Errorf("totalCalories = %v, want 310", dayLog.TotalCalories)
	}
}

func TestLogFoodValidation(t *testing.T) {
	s := newTestService(t)

	if _, err := s.LogFood(testDate, "999", 1, store.MealLunch, store.SourceManual); err != ErrFoodNotFound {
		t.Errorf("unknown food: err = %v, want ErrFoodNotFound", err)
	}
	if _, err := s.LogFood(testDate, "1", 0, store.MealLunch, store.SourceManual); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := s.LogFood(testDate, "1", 1, "brunch", store.SourceManual); err == nil {
		t.Error("expected error for invalid meal type")
	}
	if _, err := s.LogFood(testDate, "1", 1, store.MealLunch, "telepathy"); err == nil {
		t.Error("expected error for invalid source")
	}
}

func TestLogRecipeDividesPerServing(t *testing.T) {
	s := newTestService(t)

	summary, err := s.ImportRecipe(context.Background(), "https://example.com/r")
	if err != nil {
		t.Fatalf("ImportRecipe: %v", err)
	}

	meal, err := s.LogRecipe(testDate, summary, store.MealDinner)
	if err != nil {
		t.Fatalf("LogRecipe: %v", err)
	}
	if meal.Calories != 225 {
		t.Errorf("per-serving calories = %v, want 225", meal.Calories)
	}
	if meal.Protein != 13 { // round(25/2)
		t.Errorf("per-serving protein = %v, want 13", meal.Protein)
	}
	if meal.Carbs != 20 || meal.Fat != 8 {
		t.Errorf("per-serving carbs/fat = %v/%v, want 20/8", meal.Carbs, meal.Fat)
	}
	if meal.Quantity != 1 || meal.Source != store.SourceRecipe || meal.Serving != "1 porção" {
		t.Errorf("unexpected recipe meal shape: %+v", meal)
	}
}

func TestSummaryMath(t *testing.T) {
	s := newTestService(t)

	if err := s.SetGoal(2000); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	if _, err := s.LogFood(testDate, "2", 2, store.MealBreakfast, store.SourceManual); err != nil {
		t.Fatalf("LogFood: %v", err)
	}

	summary := s.Summary(testDate)
	if summary.RemainingCalories != 1690 {
		t.Errorf("remaining = %v, want 1690", summary.RemainingCalories)
	}
	if math.Abs(summary.GoalPercent-15.5) > 1e-9 {
		t.Errorf("percent = %v, want 15.5", summary.GoalPercent)
	}
}

func TestSummaryPercentClampsAt100(t *testing.T) {
	s := newTestService(t)

	if err := s.SetGoal(100); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	if _, err := s.LogFood(testDate, "21", 1, store.MealLunch, store.SourceManual); err != nil {
		t.Fatalf("LogFood: %v", err)
	}

	summary := s.Summary(testDate)
	if summary.GoalPercent != 100 {
		t.Errorf("percent = %v, want clamp at 100", summary.GoalPercent)
	}
	if summary.RemainingCalories >= 0 {
		t.Errorf("remaining = %v, want negative when over goal", summary.RemainingCalories)
	}
}

func TestScanPhotoLogsAsPhotoSource(t *testing.T) {
	s := newTestService(t)

	food, err := s.ScanPhoto(context.Background(), "dinner.jpg")
	if err != nil {
		t.Fatalf("ScanPhoto: %v", err)
	}

	meal, err := s.LogFood(testDate, food.ID, 1, store.MealDinner, store.SourcePhoto)
	if err != nil {
		t.Fatalf("LogFood: %v", err)
	}
	if meal.Source != store.SourcePhoto {
		t.Errorf("source = %q, want photo", meal.Source)
	}
	if meal.FoodName != food.Name {
		t.Errorf("meal name %q does not match detected food %q", meal.FoodName, food.Name)
	}
}
