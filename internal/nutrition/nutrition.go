// Package nutrition holds the plan shapes shared by the generator, the food
// matcher, the exporter and the API: foods, meals, days and weeks.
package nutrition

import "math"

// NutritionInfo is a calorie and macro amount. Calories are whole kcal and
// macros are grams to one decimal.
type NutritionInfo struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Add returns the sum of n and o with macros rounded to one decimal.
func (n NutritionInfo) Add(o NutritionInfo) NutritionInfo {
	return NutritionInfo{
		Calories: n.Calories + o.Calories,
		ProteinG: Round1(n.ProteinG + o.ProteinG),
		CarbsG:   Round1(n.CarbsG + o.CarbsG),
		FatG:     Round1(n.FatG + o.FatG),
	}
}

// FoodItem is one line of a meal.
type FoodItem struct {
	Name         string   `json:"name"`
	Quantity     string   `json:"quantity"`
	Calories     int      `json:"calories"`
	ProteinG     float64  `json:"protein_g"`
	CarbsG       float64  `json:"carbs_g"`
	FatG         float64  `json:"fat_g"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Info returns the item's nutrient values.
func (f FoodItem) Info() NutritionInfo {
	return NutritionInfo{Calories: f.Calories, ProteinG: f.ProteinG, CarbsG: f.CarbsG, FatG: f.FatG}
}

// Meal is an ordered list of foods. Totals is always SumFoods(Foods).
type Meal struct {
	Name   string        `json:"name"`
	Time   string        `json:"time,omitempty"`
	Foods  []FoodItem    `json:"foods"`
	Totals NutritionInfo `json:"totals"`
}

// DailyDiet is one named day. Totals is always SumMeals(Meals).
type DailyDiet struct {
	Day    string        `json:"day"`
	Meals  []Meal        `json:"meals"`
	Totals NutritionInfo `json:"totals"`
	Tips   []string      `json:"tips"`
}

// WeeklyDiet is seven DailyDiet entries, Monday first.
type WeeklyDiet struct {
	Style  string      `json:"style"`
	Source string      `json:"source"`
	Days   []DailyDiet `json:"days"`
}

// Plan sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Weekdays are the day names used in a WeeklyDiet, index 0 is Monday.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// SumFoods totals a list of foods.
func SumFoods(foods []FoodItem) NutritionInfo {
	var total NutritionInfo
	for _, f := range foods {
		total = total.Add(f.Info())
	}
	return total
}

// SumMeals totals a list of meals from their Totals fields.
func SumMeals(meals []Meal) NutritionInfo {
	var total NutritionInfo
	for _, m := range meals {
		total = total.Add(m.Totals)
	}
	return total
}

// Recompute rewrites every meal and day total in w from the food items.
// Totals supplied by a caller are never trusted.
func (w *WeeklyDiet) Recompute() {
	for d := range w.Days {
		day := &w.Days[d]
		for m := range day.Meals {
			day.Meals[m].Totals = SumFoods(day.Meals[m].Foods)
		}
		day.Totals = SumMeals(day.Meals)
	}
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
