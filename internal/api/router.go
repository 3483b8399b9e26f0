package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Catalog routes
		r.Get("/foods", apiHandler.SearchFoodsHandler)
		r.Get("/foods/{foodID}", apiHandler.GetFoodHandler)

		// Daily log routes; {date} is YYYY-MM-DD or the literal "today"
		r.Get("/log/{date}", apiHandler.GetLogHandler)
		r.Get("/log/{date}/summary", apiHandler.GetSummaryHandler)
		r.Post("/log/{date}/meals", apiHandler.AddMealHandler)
		r.Post("/log/{date}/recipes", apiHandler.AddRecipeMealHandler)
		r.Delete("/log/{date}/meals/{mealID}", apiHandler.DeleteMealHandler)

		// Goal routes
		r.Get("/goal", apiHandler.GetGoalHandler)
		r.Put("/goal", apiHandler.UpdateGoalHandler)

		// Analyzer routes
		r.Post("/scan", apiHandler.ScanHandler)
		r.Post("/import-recipe", apiHandler.ImportRecipeHandler)
	})

	return r
}
