package core

import (
	"context"
	"testing"
	"time"

	"nutrilog.app/food-tracker/internal/catalog"
)

func TestStubClassifyImageReturnsCatalogEntry(t *testing.T) {
	a := NewStubAnalyzer(0)

	food, err := a.ClassifyImage(context.Background(), "lunch.jpg")
	if err != nil {
		t.Fatalf("ClassifyImage: %v", err)
	}
	if _, ok := catalog.Lookup(food.ID); !ok {
		t.Errorf("returned food %q is not in the catalog", food.Name)
	}
}

func TestStubParseRecipeURLIsFixed(t *testing.T) {
	a := NewStubAnalyzer(0)

	summary, err := a.ParseRecipeURL(context.Background(), "https://example.com/receita")
	if err != nil {
		t.Fatalf("ParseRecipeURL: %v", err)
	}
	if summary.Servings != 2 {
		t.Errorf("servings = %d, want 2", summary.Servings)
	}
	if summary.TotalCalories != 450 {
		t.Errorf("totalCalories = %v, want 450", summary.TotalCalories)
	}
	if len(summary.Ingredients) != 3 {
		t.Errorf("ingredients = %d, want 3", len(summary.Ingredients))
	}

	// Caller divides by servings.
	if perServing := summary.TotalCalories / float64(summary.Servings); perServing != 225 {
		t.Errorf("per-serving calories = %v, want 225", perServing)
	}
}

func TestStubHonorsContextCancellation(t *testing.T) {
	a := NewStubAnalyzer(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.ClassifyImage(ctx, "x.jpg"); err == nil {
		t.Error("expected error from canceled context")
	}
}
