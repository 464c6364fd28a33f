package dietgen

import (
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/targets"
)

type foodTemplate struct {
	name     string
	quantity string
	calories int
	protein  float64
	carbs    float64
	fat      float64
}

type mealTemplate struct {
	name  string
	time  string
	foods []foodTemplate
}

// Template meal positions.
const (
	breakfast = iota
	lunch
	snack
	dinner
)

// mealIndexes picks template meals for a requested meal count. Five pads the
// day by repeating lunch.
var mealIndexes = map[int][]int{
	1: {lunch},
	2: {lunch, dinner},
	3: {breakfast, lunch, dinner},
	4: {breakfast, lunch, snack, dinner},
	5: {breakfast, lunch, lunch, snack, dinner},
}

var templates = map[targets.DietStyle][]mealTemplate{
	targets.StyleTraditional: {
		{name: "Breakfast", time: "07:00", foods: []foodTemplate{
			{"Whole wheat bread", "2 slices (60g)", 148, 7.8, 24.6, 2},
			{"Scrambled eggs", "2 units (100g)", 155, 13, 1.1, 11},
			{"Banana", "1 unit (100g)", 89, 1.1, 22.8, 0.3},
		}},
		{name: "Lunch", time: "12:30", foods: []foodTemplate{
			{"Grilled chicken breast", "150g", 248, 46.5, 0, 5.4},
			{"White rice", "150g", 195, 4.1, 42, 0.5},
			{"Beans", "100g", 76, 4.8, 13.6, 0.5},
			{"Green salad", "1 bowl (100g)", 15, 1.4, 2.9, 0.2},
		}},
		{name: "Afternoon snack", time: "16:00", foods: []foodTemplate{
			{"Greek yogurt", "170g", 100, 17, 6.1, 0.7},
			{"Oats", "30g", 117, 5.1, 19.9, 2.1},
		}},
		{name: "Dinner", time: "19:30", foods: []foodTemplate{
			{"Baked fish", "150g", 192, 39, 0, 4.1},
			{"Sweet potato", "150g", 129, 2.4, 30, 0.2},
			{"Broccoli", "100g", 34, 2.8, 7, 0.4},
		}},
	},
	targets.StyleLowCarb: {
		{name: "Breakfast", time: "07:00", foods: []foodTemplate{
			{"Scrambled eggs", "3 units (150g)", 233, 19.5, 1.7, 16.5},
			{"Avocado", "50g", 80, 1, 4.3, 7.4},
			{"Cheese", "30g", 121, 7.5, 0.4, 9.9},
		}},
		{name: "Lunch", time: "12:30", foods: []foodTemplate{
			{"Grilled chicken breast", "180g", 297, 55.8, 0, 6.5},
			{"Broccoli", "150g", 51, 4.2, 10.5, 0.6},
			{"Green salad", "1 bowl (100g)", 15, 1.4, 2.9, 0.2},
			{"Olive oil", "1 tbsp (10g)", 88, 0, 0, 10},
		}},
		{name: "Afternoon snack", time: "16:00", foods: []foodTemplate{
			{"Greek yogurt", "170g", 100, 17, 6.1, 0.7},
			{"Mixed nuts", "30g", 182, 6, 6.3, 16.2},
		}},
		{name: "Dinner", time: "19:30", foods: []foodTemplate{
			{"Salmon", "150g", 312, 30, 0, 19.5},
			{"Zucchini", "150g", 26, 1.8, 4.7, 0.5},
			{"Sweet potato", "80g", 69, 1.3, 16, 0.1},
		}},
	},
	targets.StyleKetogenic: {
		{name: "Breakfast", time: "08:00", foods: []foodTemplate{
			{"Scrambled eggs", "3 units (150g)", 233, 19.5, 1.7, 16.5},
			{"Bacon", "30g", 162, 11.1, 0.4, 12.6},
			{"Avocado", "100g", 160, 2, 8.5, 14.7},
		}},
		{name: "Lunch", time: "13:00", foods: []foodTemplate{
			{"Lean beef", "150g", 375, 39, 0, 22.5},
			{"Spinach", "100g", 23, 2.9, 3.6, 0.4},
			{"Olive oil", "1 tbsp (10g)", 88, 0, 0, 10},
		}},
		{name: "Afternoon snack", time: "16:30", foods: []foodTemplate{
			{"Cheese", "40g", 161, 10, 0.5, 13.2},
			{"Mixed nuts", "30g", 182, 6, 6.3, 16.2},
		}},
		{name: "Dinner", time: "19:30", foods: []foodTemplate{
			{"Salmon", "180g", 374, 36, 0, 23.4},
			{"Broccoli", "100g", 34, 2.8, 7, 0.4},
			{"Olive oil", "1 tbsp (10g)", 88, 0, 0, 10},
		}},
	},
}

// synonyms rotate a food's display name by day index. The first entry is
// the template name.
var synonyms = map[string][]string{
	"Grilled chicken breast": {"Grilled chicken breast", "Lemon herb chicken breast", "Paprika chicken breast", "Garlic chicken breast"},
	"Baked fish":             {"Baked fish", "Grilled tilapia", "Lemon baked fish", "Steamed fish"},
	"Salmon":                 {"Salmon", "Grilled salmon", "Baked salmon", "Salmon with herbs"},
	"Scrambled eggs":         {"Scrambled eggs", "Boiled eggs", "Poached eggs"},
	"Green salad":            {"Green salad", "Lettuce and tomato salad", "Arugula salad", "Mixed leaf salad"},
	"White rice":             {"White rice", "Rice with herbs", "Garlic rice"},
	"Broccoli":               {"Broccoli", "Steamed broccoli", "Roasted broccoli"},
	"Lean beef":              {"Lean beef", "Grilled sirloin", "Beef strips"},
}

// tips holds one pair per weekday, Monday first.
var tips = map[targets.DietStyle][][2]string{
	targets.StyleTraditional: {
		{"Drink a glass of water before each meal.", "Plan tomorrow's lunch tonight."},
		{"Fill half the plate with vegetables.", "Prefer whole grains over refined ones."},
		{"Keep fruit within reach for snacks.", "Chew slowly and put the fork down between bites."},
		{"Swap sugary drinks for sparkling water.", "Include a protein source at every meal."},
		{"Cook a double portion and save one for later.", "Walk for 20 minutes after dinner."},
		{"Eating out? Start with a salad.", "Watch portion sizes of sauces and dressings."},
		{"Prep vegetables for the week ahead.", "Review the week and note what worked."},
	},
	targets.StyleLowCarb: {
		{"Base each meal on protein and vegetables.", "Keep starchy sides small."},
		{"Read labels for hidden sugars.", "Use olive oil for cooking and dressing."},
		{"Nuts make an easy snack but measure them.", "Drink plenty of water through the day."},
		{"Swap rice for cauliflower rice once this week.", "Add leafy greens to lunch."},
		{"Choose berries when you want fruit.", "Plan a low-carb option for the weekend."},
		{"Eating out? Ask for extra vegetables instead of fries.", "Skip the bread basket."},
		{"Batch-cook chicken for the week.", "Check in on energy levels and adjust carbs."},
	},
	targets.StyleKetogenic: {
		{"Keep net carbs under 25 g today.", "Add salt to meals to replace electrolytes."},
		{"Eat fat to satiety, not to excess.", "Drink at least two litres of water."},
		{"Leafy greens are your main carb source.", "Magnesium-rich foods help with cramps."},
		{"Watch for hidden carbs in sauces.", "Avocado makes an easy high-fat side."},
		{"If you feel tired, check your electrolytes.", "Plan a keto-friendly weekend meal."},
		{"Eating out? Choose grilled meat and salad.", "Skip sugary drinks and cocktails."},
		{"Prepare egg muffins for quick breakfasts.", "Review the week and note cravings."},
	},
}

func (f foodTemplate) item() nutrition.FoodItem {
	return nutrition.FoodItem{
		Name:     f.name,
		Quantity: f.quantity,
		Calories: f.calories,
		ProteinG: f.protein,
		CarbsG:   f.carbs,
		FatG:     f.fat,
	}
}
