package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"nutrilog.app/food-tracker/internal/catalog"
)

const (
	defaultVisionModelName = "gemini-1.5-flash-latest"
	defaultRecipeModelName = "gemini-1.5-flash-latest"

	// Recipe pages can be huge; the nutrition facts are in the first part.
	maxRecipePageBytes = 256 * 1024

	classifySystemInstruction = "You are a food recognition assistant. You are given a photo of food. " +
		"Identify the single food item that best matches the photo, choosing ONLY from the provided list of known foods. " +
		"Answer with exactly one name from the list, nothing else. If no food is recognizable, answer NONE."

	recipeSystemInstruction = "You are a recipe analysis assistant. You are given the raw HTML of a recipe page. " +
		"Extract the recipe name, its main ingredients, the nutrition totals for the WHOLE recipe " +
		"(calories in kcal, protein, carbs and fat in grams) and the number of servings. " +
		"Respond with ONLY a JSON object of this exact shape: " +
		`{"name":"...","ingredients":["..."],"totalCalories":0,"totalProtein":0,"totalCarbs":0,"totalFat":0,"servings":1}. ` +
		"If the page does not contain a recipe, respond with exactly NONE."
)

// GeminiAnalyzer is the production Analyzer: Gemini vision for photo
// classification and fetch-plus-Gemini for recipe pages. Unlike the stub it
// has real failure modes, reported as *AnalyzerError.
type GeminiAnalyzer struct {
	client     *genai.Client
	httpClient *http.Client
}

func NewGeminiAnalyzer(ctx context.Context, apiKey string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiAnalyzer{
		client:     client,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (a *GeminiAnalyzer) Close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			log.Printf("Error closing GenAI client: %v", err)
		}
	}
}

// ClassifyImage reads the referenced image file, asks the vision model which
// known food it shows and resolves the answer against the catalog.
func (a *GeminiAnalyzer) ClassifyImage(ctx context.Context, imageName string) (catalog.FoodItem, error) {
	imageBytes, err := os.ReadFile(imageName)
	if err != nil {
		return catalog.FoodItem{}, networkError("could not read the image", err)
	}

	var names []string
	for _, food := range catalog.All() {
		names = append(names, food.Name)
	}

	model := a.client.GenerativeModel(defaultVisionModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(classifySystemInstruction)},
	}

	resp, err := model.GenerateContent(ctx,
		genai.Text("Known foods: "+strings.Join(names, ", ")),
		genai.ImageData(imageFormat(imageName), imageBytes),
	)
	if err != nil {
		return catalog.FoodItem{}, networkError("the image analysis service is unavailable", err)
	}

	answer := strings.TrimSpace(responseText(resp))
	if answer == "" {
		return catalog.FoodItem{}, parseError("the image analysis service returned an empty response", nil)
	}
	if strings.EqualFold(answer, "NONE") {
		return catalog.FoodItem{}, notFoundError("no recognizable food in the image")
	}

	matches := catalog.Search(answer)
	if len(matches) == 0 {
		return catalog.FoodItem{}, notFoundError(fmt.Sprintf("%q is not a known food", answer))
	}
	return matches[0], nil
}

// ParseRecipeURL fetches the page and has the model extract aggregate
// nutrition for the whole recipe.
func (a *GeminiAnalyzer) ParseRecipeURL(ctx context.Context, url string) (RecipeSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return RecipeSummary{}, networkError("invalid recipe URL", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return RecipeSummary{}, networkError("could not reach the recipe page", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return RecipeSummary{}, networkError(fmt.Sprintf("recipe page returned status %d", resp.StatusCode), nil)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxRecipePageBytes))
	if err != nil {
		return RecipeSummary{}, networkError("could not read the recipe page", err)
	}

	model := a.client.GenerativeModel(defaultRecipeModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(recipeSystemInstruction)},
	}

	genResp, err := model.GenerateContent(ctx, genai.Text(string(page)))
	if err != nil {
		return RecipeSummary{}, networkError("the recipe analysis service is unavailable", err)
	}

	answer := cleanModelJSON(responseText(genResp))
	if answer == "" {
		return RecipeSummary{}, parseError("the recipe analysis service returned an empty response", nil)
	}
	if strings.EqualFold(answer, "NONE") {
		return RecipeSummary{}, notFoundError("no recipe found on that page")
	}

	var summary RecipeSummary
	if err := json.Unmarshal([]byte(answer), &summary); err != nil {
		return RecipeSummary{}, parseError("could not parse the recipe analysis", err)
	}
	if summary.Name == "" {
		return RecipeSummary{}, notFoundError("no recipe found on that page")
	}
	if summary.Servings < 1 {
		summary.Servings = 1
	}
	return summary, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			builder.WriteString(string(txt))
		}
	}
	return builder.String()
}

// cleanModelJSON strips the markdown code fences models like to wrap JSON in.
func cleanModelJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func imageFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "png"
	case ".webp":
		return "webp"
	default:
		return "jpeg"
	}
}
