package store

// Meal source tags. SourceVoice is part of the persisted format but is never
// produced: voice input feeds the search box, which logs as manual.
const (
	SourceManual = "manual"
	SourceVoice  = "voice"
	SourcePhoto  = "photo"
	SourceRecipe = "recipe"
)

// Meal types.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Meal is one logged entry. Name and macro values are denormalized copies of
// the source food so historical entries stay stable if the catalog changes.
// Macro values are per serving; Quantity is the multiplier.
type Meal struct {
	ID        string  `json:"id"`
	FoodID    string  `json:"foodId"`
	FoodName  string  `json:"foodName"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Serving   string  `json:"serving"`
	Quantity  float64 `json:"quantity"`
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Type      string  `json:"type"`
	Source    string  `json:"source"`
}

// DailyLog aggregates all meals for one calendar date. Totals are always the
// reduction over Meals and are recomputed on every mutation.
type DailyLog struct {
	Date          string  `json:"date"`
	Meals         []Meal  `json:"meals"`
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
	CalorieGoal   int     `json:"calorieGoal"`
}

func (l *DailyLog) recomputeTotals() {
	l.TotalCalories, l.TotalProtein, l.TotalCarbs, l.TotalFat = 0, 0, 0, 0
	for _, m := range l.Meals {
		l.TotalCalories += m.Calories * m.Quantity
		l.TotalProtein += m.Protein * m.Quantity
		l.TotalCarbs += m.Carbs * m.Quantity
		l.TotalFat += m.Fat * m.Quantity
	}
}
