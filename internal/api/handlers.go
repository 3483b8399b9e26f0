package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"nutrilog.app/food-tracker/internal/catalog"
	"nutrilog.app/food-tracker/internal/core"
	"nutrilog.app/food-tracker/internal/store"
)

type APIHandler struct {
	trackerService *core.TrackerService
	scanInFlight   atomic.Bool
}

func NewAPIHandler(ts *core.TrackerService) *APIHandler {
	return &APIHandler{trackerService: ts}
}

func (h *APIHandler) SearchFoodsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	foods := h.trackerService.SearchFoods(query)
	if foods == nil {
		foods = []catalog.FoodItem{}
	}
	json.NewEncoder(w).Encode(foods)
}

func (h *APIHandler) GetFoodHandler(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "foodID")

	food, ok := h.trackerService.LookupFood(foodID)
	if !ok {
		http.Error(w, "Food not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(food)
}

// parseDate accepts a log date path segment, with "today" resolving to the
// current local date. Resolution happens once here, so every store call made
// for this request targets the same date even across midnight.
func parseDate(raw string) (string, error) {
	if raw == "today" {
		return store.Today(), nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", err
	}
	return raw, nil
}

func (h *APIHandler) GetLogHandler(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(h.trackerService.DailyLog(date))
}

func (h *APIHandler) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(h.trackerService.Summary(date))
}

type AddMealRequest struct {
	FoodID   string  `json:"food_id"`
	Quantity float64 `json:"quantity"`
	Type     string  `json:"type"`
	Source   string  `json:"source,omitempty"`
}

func (h *APIHandler) AddMealHandler(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var req AddMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	meal, err := h.trackerService.LogFood(date, req.FoodID, req.Quantity, req.Type, req.Source)
	if err != nil {
		if errors.Is(err, core.ErrFoodNotFound) {
			http.Error(w, "Food not found", http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(meal)
}

type AddRecipeMealRequest struct {
	Recipe core.RecipeSummary `json:"recipe"`
	Type   string             `json:"type"`
}

func (h *APIHandler) AddRecipeMealHandler(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var req AddRecipeMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Recipe.Name == "" {
		http.Error(w, "Recipe name is required", http.StatusBadRequest)
		return
	}

	meal, err := h.trackerService.LogRecipe(date, req.Recipe, req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(meal)
}

func (h *APIHandler) DeleteMealHandler(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	mealID := chi.URLParam(r, "mealID")

	// Deleting an unknown meal is a no-op by contract, so this always
	// succeeds unless persistence itself fails.
	if err := h.trackerService.DeleteMeal(date, mealID); err != nil {
		log.Printf("Error deleting meal %s on %s: %v", mealID, date, err)
		http.Error(w, "Failed to delete meal", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type GoalResponse struct {
	Goal int `json:"goal"`
}

func (h *APIHandler) GetGoalHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(GoalResponse{Goal: h.trackerService.Goal()})
}

type UpdateGoalRequest struct {
	Goal int `json:"goal"`
}

func (h *APIHandler) UpdateGoalHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.trackerService.SetGoal(req.Goal); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(GoalResponse{Goal: req.Goal})
}

type ScanRequest struct {
	Image string `json:"image"`
}

func (h *APIHandler) ScanHandler(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Image == "" {
		http.Error(w, "Image reference is required", http.StatusBadRequest)
		return
	}

	// One scan at a time, mirroring the UI disabling its input while a
	// scan is in flight.
	if !h.scanInFlight.CompareAndSwap(false, true) {
		http.Error(w, "A scan is already in progress", http.StatusConflict)
		return
	}
	defer h.scanInFlight.Store(false)

	food, err := h.trackerService.ScanPhoto(r.Context(), req.Image)
	if err != nil {
		h.writeAnalyzerError(w, "scan", err)
		return
	}
	json.NewEncoder(w).Encode(food)
}

type ImportRecipeRequest struct {
	URL string `json:"url"`
}

func (h *APIHandler) ImportRecipeHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "Recipe URL is required", http.StatusBadRequest)
		return
	}

	summary, err := h.trackerService.ImportRecipe(r.Context(), req.URL)
	if err != nil {
		h.writeAnalyzerError(w, "recipe import", err)
		return
	}
	json.NewEncoder(w).Encode(summary)
}

// writeAnalyzerError maps analyzer failure kinds onto statuses with the
// displayable message; anything else is an internal error.
func (h *APIHandler) writeAnalyzerError(w http.ResponseWriter, op string, err error) {
	var analyzerErr *core.AnalyzerError
	if errors.As(err, &analyzerErr) {
		status := http.StatusInternalServerError
		switch analyzerErr.Kind {
		case core.ErrNetwork:
			status = http.StatusBadGateway
		case core.ErrParse:
			status = http.StatusUnprocessableEntity
		case core.ErrNotFound:
			status = http.StatusNotFound
		}
		http.Error(w, analyzerErr.Message, status)
		return
	}
	log.Printf("Error during %s: %v", op, err)
	http.Error(w, "Analysis failed", http.StatusInternalServerError)
}
