package core

import (
	"context"
	"math/rand"
	"time"

	"nutrilog.app/food-tracker/internal/catalog"
)

// DefaultScanDelay matches the simulated latency of the original mock
// analyzers.
const DefaultScanDelay = 2 * time.Second

// StubAnalyzer simulates the AI services: it ignores its input and answers
// after a fixed delay. Aside from context cancellation it never fails.
type StubAnalyzer struct {
	delay time.Duration
	rng   *rand.Rand
}

func NewStubAnalyzer(delay time.Duration) *StubAnalyzer {
	return &StubAnalyzer{
		delay: delay,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (a *StubAnalyzer) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ClassifyImage returns a uniformly random catalog entry.
func (a *StubAnalyzer) ClassifyImage(ctx context.Context, imageName string) (catalog.FoodItem, error) {
	if err := a.wait(ctx); err != nil {
		return catalog.FoodItem{}, err
	}
	foods := catalog.All()
	return foods[a.rng.Intn(len(foods))], nil
}

// ParseRecipeURL returns a fixed synthetic recipe summary.
func (a *StubAnalyzer) ParseRecipeURL(ctx context.Context, url string) (RecipeSummary, error) {
	if err := a.wait(ctx); err != nil {
		return RecipeSummary{}, err
	}
	return RecipeSummary{
		Name:          "Receita Importada",
		Ingredients:   []string{"Ingrediente 1", "Ingrediente 2", "Ingrediente 3"},
		TotalCalories: 450,
		TotalProtein:  25,
		TotalCarbs:    40,
		TotalFat:      15,
		Servings:      2,
	}, nil
}
