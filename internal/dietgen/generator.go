// Package dietgen builds a representative week of meals from fixed
// style templates. It is the deterministic path used whenever generated
// plans are unavailable or unusable.
package dietgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lg/diet-plan-go-api/internal/food"
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/targets"
)

// DefaultMealsPerDay is used when a request asks for fewer than one meal.
const DefaultMealsPerDay = 4

// Request describes the week to generate.
type Request struct {
	Style       targets.DietStyle `json:"style"`
	MealsPerDay int               `json:"meals_per_day"`
}

// TemplateStyle returns the template set used for style. Only low_carb and
// ketogenic have their own templates.
func TemplateStyle(style targets.DietStyle) targets.DietStyle {
	switch s := targets.ParseDietStyle(string(style)); s {
	case targets.StyleLowCarb, targets.StyleKetogenic:
		return s
	default:
		return targets.StyleTraditional
	}
}

// Generate returns seven days, Monday first. It never fails.
func Generate(req Request) nutrition.WeeklyDiet {
	style := TemplateStyle(req.Style)
	week := nutrition.WeeklyDiet{
		Style:  string(style),
		Source: nutrition.SourceFallback,
		Days:   make([]nutrition.DailyDiet, len(nutrition.Weekdays)),
	}
	for i := range nutrition.Weekdays {
		week.Days[i] = GenerateDay(style, req.MealsPerDay, i)
	}
	return week
}

// GenerateDay builds one day. dayIndex 0 is Monday. An out of range index
// uses Monday's name and tips.
func GenerateDay(style targets.DietStyle, mealsPerDay, dayIndex int) nutrition.DailyDiet {
	style = TemplateStyle(style)
	tmpl := templates[style]

	day := dayIndex
	if day < 0 || day >= len(nutrition.Weekdays) {
		day = 0
	}

	var meals []nutrition.Meal
	for _, idx := range selectMeals(mealsPerDay, len(tmpl)) {
		meals = append(meals, buildMeal(tmpl[idx], day))
	}

	tipTable := tips[style]
	pair := tipTable[0]
	if day < len(tipTable) {
		pair = tipTable[day]
	}

	return nutrition.DailyDiet{
		Day:    nutrition.Weekdays[day],
		Meals:  meals,
		Totals: nutrition.SumMeals(meals),
		Tips:   []string{pair[0], pair[1]},
	}
}

// selectMeals maps a requested count to template indexes. Counts beyond the
// map use the whole template and counts under one use the default.
func selectMeals(count, templateLen int) []int {
	if count < 1 {
		count = DefaultMealsPerDay
	}
	if idx, ok := mealIndexes[count]; ok {
		return idx
	}
	out := make([]int, templateLen)
	for i := range out {
		out[i] = i
	}
	return out
}

func buildMeal(m mealTemplate, day int) nutrition.Meal {
	foods := make([]nutrition.FoodItem, len(m.foods))
	for i, f := range m.foods {
		item := f.item()
		item.Name = rotateName(f.name, day)
		item.Alternatives = alternatives(f.name)
		foods[i] = item
	}
	return nutrition.Meal{
		Name:   m.name,
		Time:   m.time,
		Foods:  foods,
		Totals: nutrition.SumFoods(foods),
	}
}

func rotateName(name string, day int) string {
	variants, ok := synonyms[name]
	if !ok || len(variants) == 0 {
		return name
	}
	return variants[day%len(variants)]
}

// alternatives returns same-category substitutes, or nil when the matcher
// has nothing to offer.
func alternatives(name string) []string {
	alts := food.ItemAlternatives(name)
	if alts == nil {
		return nil
	}
	out := alts[:0]
	for _, a := range alts {
		if !strings.EqualFold(a, name) {
			out = append(out, a)
		}
	}
	return out
}

/* ─── Free-text foods ────────────────────────────────────────────────── */

var gramsRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(kg|g|gr|grams?|gramas?)\b`)

// ParseGrams reads a gram amount out of a quantity such as "150g",
// "2 slices (60g)" or "0,5 kg".
func ParseGrams(quantity string) (float64, bool) {
	m := gramsRe.FindStringSubmatch(quantity)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	if strings.EqualFold(m[2], "kg") {
		v *= 1000
	}
	return v, true
}

// FoodFromText turns a free-text food and gram amount into a FoodItem using
// the food table. Unknown foods get the generic estimate and a non-positive
// amount means 100 g.
func FoodFromText(name string, grams float64) nutrition.FoodItem {
	rec, _ := food.Lookup(name)
	if grams <= 0 {
		grams = 100
	}
	info := food.ScaleToGrams(rec.Per100g, grams)

	display := strings.TrimSpace(name)
	if display == "" {
		display = rec.Name
	}
	return nutrition.FoodItem{
		Name:         display,
		Quantity:     strconv.FormatFloat(grams, 'f', -1, 64) + "g",
		Calories:     info.Calories,
		ProteinG:     info.ProteinG,
		CarbsG:       info.CarbsG,
		FatG:         info.FatG,
		Alternatives: alternatives(display),
	}
}

// Format renders a day as plain text, one food per line.
func Format(d nutrition.DailyDiet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d kcal)\n", d.Day, d.Totals.Calories)
	for _, m := range d.Meals {
		fmt.Fprintf(&b, "  %s %s\n", m.Time, m.Name)
		for _, f := range m.Foods {
			fmt.Fprintf(&b, "    - %s, %s: %d kcal\n", f.Name, f.Quantity, f.Calories)
		}
	}
	return b.String()
}
