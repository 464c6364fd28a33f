// Package food matches free-text food names against a small per-100 g
// nutrient table and suggests calorie-matched substitutes.
package food

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"lg/diet-plan-go-api/internal/nutrition"
)

// Protein or carb grams per 100 g above which a food counts as dominant in
// that macro.
const dominantGrams = 15.0

// Normalize lowercases s, strips diacritics and drops everything that is not
// a letter or digit, spaces included.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type entry struct {
	names  []string
	record Record
}

// index holds the normalized key and aliases of each record, in table order.
var index = func() []entry {
	out := make([]entry, len(records))
	for i, r := range records {
		names := []string{Normalize(r.Key)}
		for _, a := range r.Aliases {
			names = append(names, Normalize(a))
		}
		out[i] = entry{names: names, record: r}
	}
	return out
}()

// Lookup resolves name against the table. An exact key or alias match wins,
// then the first record whose key or alias contains the input or is contained
// by it. When nothing matches Lookup returns Generic and false.
func Lookup(name string) (Record, bool) {
	n := Normalize(name)
	if n == "" {
		return Generic, false
	}
	for _, e := range index {
		if slices.Contains(e.names, n) {
			return e.record, true
		}
	}
	for _, e := range index {
		for _, k := range e.names {
			if strings.Contains(n, k) || strings.Contains(k, n) {
				return e.record, true
			}
		}
	}
	return Generic, false
}

// ScaleToGrams scales a per-100 g amount linearly. Calories are rounded to
// whole kcal and macros to one decimal.
func ScaleToGrams(per100g nutrition.NutritionInfo, grams float64) nutrition.NutritionInfo {
	f := grams / 100
	return nutrition.NutritionInfo{
		Calories: int(math.Round(float64(per100g.Calories) * f)),
		ProteinG: nutrition.Round1(per100g.ProteinG * f),
		CarbsG:   nutrition.Round1(per100g.CarbsG * f),
		FatG:     nutrition.Round1(per100g.FatG * f),
	}
}

// SuggestSubstitution proposes a replacement for foodName worth
// targetCalories. A keyword in request picks the substitute directly and it
// is sized to the calorie target. Otherwise the original food's dominant
// macro picks grilled chicken (60 % protein, 40 % fat) or sweet potato (90 %
// carbs, 10 % protein), and anything else gets a 30/40/30 generic portion.
// A non-positive target means the calories of 100 g of the original food.
func SuggestSubstitution(foodName, request string, targetCalories int) nutrition.FoodItem {
	orig, _ := Lookup(foodName)
	if targetCalories <= 0 {
		targetCalories = orig.Per100g.Calories
	}
	alternatives := ItemAlternatives(foodName)

	req := Normalize(request)
	for _, s := range substitutions {
		if !containsAny(req, s.keywords) {
			continue
		}
		rec := mustRecord(s.key)
		grams := float64(targetCalories) * 100 / float64(rec.Per100g.Calories)
		info := ScaleToGrams(rec.Per100g, grams)
		return nutrition.FoodItem{
			Name:         rec.Name,
			Quantity:     fmt.Sprintf("%.0fg", grams),
			Calories:     targetCalories,
			ProteinG:     info.ProteinG,
			CarbsG:       info.CarbsG,
			FatG:         info.FatG,
			Alternatives: alternatives,
		}
	}

	cal := float64(targetCalories)
	switch {
	case orig.Per100g.ProteinG > dominantGrams:
		chicken := mustRecord("frango")
		return nutrition.FoodItem{
			Name:         chicken.Name,
			Quantity:     fmt.Sprintf("%.0fg", cal*100/float64(chicken.Per100g.Calories)),
			Calories:     targetCalories,
			ProteinG:     nutrition.Round1(cal * 0.60 / 4),
			FatG:         nutrition.Round1(cal * 0.40 / 9),
			Alternatives: alternatives,
		}
	case orig.Per100g.CarbsG > dominantGrams:
		potato := mustRecord("batata doce")
		return nutrition.FoodItem{
			Name:         potato.Name,
			Quantity:     fmt.Sprintf("%.0fg", cal*100/float64(potato.Per100g.Calories)),
			Calories:     targetCalories,
			ProteinG:     nutrition.Round1(cal * 0.10 / 4),
			CarbsG:       nutrition.Round1(cal * 0.90 / 4),
			Alternatives: alternatives,
		}
	}
	return nutrition.FoodItem{
		Name:         "Balanced substitute",
		Quantity:     "1 portion",
		Calories:     targetCalories,
		ProteinG:     nutrition.Round1(cal * 0.30 / 4),
		CarbsG:       nutrition.Round1(cal * 0.40 / 4),
		FatG:         nutrition.Round1(cal * 0.30 / 9),
		Alternatives: alternatives,
	}
}

// FindCategorySubstitutes lists same-category alternatives for foodName.
// Categories are checked in order, then the grilled and greens buckets. When
// nothing applies the result is the single NoSuggestion entry.
func FindCategorySubstitutes(foodName string) []string {
	n := Normalize(foodName)
	if n != "" {
		for _, c := range categoryTable {
			if containsAny(n, c.keywords) {
				return slices.Clone(c.substitutes)
			}
		}
		if containsAny(n, grilledKeywords) {
			return slices.Clone(grilledBucket)
		}
		if containsAny(n, greensKeywords) {
			return slices.Clone(greensBucket)
		}
	}
	return []string{NoSuggestion}
}

// ItemAlternatives is FindCategorySubstitutes for attaching to a FoodItem:
// it returns nil instead of the NoSuggestion entry.
func ItemAlternatives(foodName string) []string {
	alts := FindCategorySubstitutes(foodName)
	if len(alts) == 1 && alts[0] == NoSuggestion {
		return nil
	}
	return alts
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func mustRecord(key string) Record {
	for _, r := range records {
		if r.Key == key {
			return r
		}
	}
	panic("food: missing record " + key)
}
