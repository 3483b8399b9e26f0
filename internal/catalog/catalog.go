package catalog

import "strings"

// FoodItem is one row of the built-in food table. Macro values are per the
// listed serving. The table is fixed at load time; entries are never mutated.
type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber,omitempty"`
	Serving  string  `json:"serving"`
}

var foods = []FoodItem{
	// Proteínas
	{ID: "1", Name: "Peito de Frango", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Serving: "100g"},
	{ID: "2", Name: "Ovo", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Serving: "1 unidade"},
	{ID: "3", Name: "Salmão", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Serving: "100g"},
	{ID: "4", Name: "Atum", Calories: 132, Protein: 28, Carbs: 0, Fat: 1.3, Serving: "100g"},
	{ID: "5", Name: "Carne Bovina", Calories: 250, Protein: 26, Carbs: 0, Fat: 15, Serving: "100g"},

	// Carboidratos
	{ID: "6", Name: "Arroz Branco", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Serving: "100g"},
	{ID: "7", Name: "Batata Doce", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Fiber: 3, Serving: "100g"},
	{ID: "8", Name: "Pão Integral", Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, Fiber: 7, Serving: "100g"},
	{ID: "9", Name: "Macarrão", Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, Serving: "100g"},
	{ID: "10", Name: "Aveia", Calories: 389, Protein: 17, Carbs: 66, Fat: 7, Fiber: 11, Serving: "100g"},

	// Frutas
	{ID: "11", Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Serving: "1 unidade"},
	{ID: "12", Name: "Maçã", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Serving: "1 unidade"},
	{ID: "13", Name: "Morango", Calories: 32, Protein: 0.7, Carbs: 7.7, Fat: 0.3, Fiber: 2, Serving: "100g"},
	{ID: "14", Name: "Abacate", Calories: 160, Protein: 2, Carbs: 9, Fat: 15, Fiber: 7, Serving: "100g"},

	// Vegetais
	{ID: "15", Name: "Brócolis", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6, Serving: "100g"},
	{ID: "16", Name: "Alface", Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2, Fiber: 1.3, Serving: "100g"},
	{ID: "17", Name: "Tomate", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2, Serving: "100g"},

	// Laticínios
	{ID: "18", Name: "Leite Integral", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Serving: "100ml"},
	{ID: "19", Name: "Iogurte Natural", Calories: 61, Protein: 3.5, Carbs: 4.7, Fat: 3.3, Serving: "100g"},
	{ID: "20", Name: "Queijo Minas", Calories: 264, Protein: 17.4, Carbs: 3.1, Fat: 20.8, Serving: "100g"},

	// Gorduras Saudáveis
	{ID: "21", Name: "Azeite de Oliva", Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Serving: "100ml"},
	{ID: "22", Name: "Amendoim", Calories: 567, Protein: 26, Carbs: 16, Fat: 49, Fiber: 8.5, Serving: "100g"},
	{ID: "23", Name: "Castanha do Pará", Calories: 656, Protein: 14, Carbs: 12, Fat: 66, Fiber: 7.5, Serving: "100g"},

	// Bebidas
	{ID: "24", Name: "Suco de Laranja", Calories: 45, Protein: 0.7, Carbs: 10.4, Fat: 0.2, Serving: "100ml"},
	{ID: "25", Name: "Café", Calories: 2, Protein: 0.3, Carbs: 0, Fat: 0, Serving: "100ml"},
}

// All returns the full table in its fixed order.
func All() []FoodItem {
	return foods
}

// Search does a case-insensitive substring match against food names,
// preserving table order. An empty query matches everything; callers that
// want "no results" for blank input must filter before calling.
func Search(query string) []FoodItem {
	lower := strings.ToLower(query)
	var matches []FoodItem
	for _, food := range foods {
		if strings.Contains(strings.ToLower(food.Name), lower) {
			matches = append(matches, food)
		}
	}
	return matches
}

// Lookup returns the food with the given id. A missing id is a normal
// outcome, not an error.
func Lookup(id string) (FoodItem, bool) {
	for _, food := range foods {
		if food.ID == id {
			return food, true
		}
	}
	return FoodItem{}, false
}
