package dietgen_test

import (
	"reflect"
	"testing"

	"lg/diet-plan-go-api/internal/dietgen"
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/targets"
)

// TestGenerate_MealCountAndTotals checks every style and meal count yields the
// requested number of meals and totals that add up exactly.
func TestGenerate_MealCountAndTotals(t *testing.T) {
	counts := map[int]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 4, 10: 4, 0: 4, -2: 4}
	for _, style := range targets.DietStyles {
		for req, want := range counts {
			week := dietgen.Generate(dietgen.Request{Style: style, MealsPerDay: req})
			if len(week.Days) != 7 {
				t.Fatalf("%s: %d days, want 7", style, len(week.Days))
			}
			for _, day := range week.Days {
				if len(day.Meals) != want {
					t.Errorf("%s, %d meals requested: got %d, want %d", style, req, len(day.Meals), want)
				}
				for _, m := range day.Meals {
					if m.Totals != nutrition.SumFoods(m.Foods) {
						t.Errorf("%s %s: meal totals %+v do not match foods", style, m.Name, m.Totals)
					}
				}
				if day.Totals != nutrition.SumMeals(day.Meals) {
					t.Errorf("%s %s: day totals %+v do not match meals", style, day.Day, day.Totals)
				}
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	req := dietgen.Request{Style: targets.StyleLowCarb, MealsPerDay: 3}
	if !reflect.DeepEqual(dietgen.Generate(req), dietgen.Generate(req)) {
		t.Error("two identical requests produced different weeks")
	}
}

func TestGenerate_DaysAndSource(t *testing.T) {
	week := dietgen.Generate(dietgen.Request{Style: targets.StyleKetogenic, MealsPerDay: 4})
	if week.Source != nutrition.SourceFallback || week.Style != string(targets.StyleKetogenic) {
		t.Errorf("source/style = %s/%s", week.Source, week.Style)
	}
	for i, day := range week.Days {
		if day.Day != nutrition.Weekdays[i] {
			t.Errorf("day %d = %s, want %s", i, day.Day, nutrition.Weekdays[i])
		}
		if len(day.Tips) != 2 {
			t.Errorf("%s: %d tips, want 2", day.Day, len(day.Tips))
		}
	}
}

func TestTemplateStyle_UnknownIsTraditional(t *testing.T) {
	for _, s := range []targets.DietStyle{"paleo", "", targets.StyleVegan, targets.StyleMediterranean} {
		if got := dietgen.TemplateStyle(s); got != targets.StyleTraditional {
			t.Errorf("TemplateStyle(%q) = %s, want traditional", s, got)
		}
	}
	if got := dietgen.TemplateStyle("keto"); got != targets.StyleKetogenic {
		t.Errorf("TemplateStyle(keto) = %s", got)
	}
}

// TestGenerateDay_NameRotation verifies names vary by day while values stay put.
func TestGenerateDay_NameRotation(t *testing.T) {
	names := map[int]string{
		0: "Grilled chicken breast",
		1: "Lemon herb chicken breast",
		3: "Garlic chicken breast",
		4: "Grilled chicken breast",
	}
	monday := dietgen.GenerateDay(targets.StyleTraditional, 1, 0)
	for day, want := range names {
		d := dietgen.GenerateDay(targets.StyleTraditional, 1, day)
		got := d.Meals[0].Foods[0]
		if got.Name != want {
			t.Errorf("day %d: name = %q, want %q", day, got.Name, want)
		}
		if d.Totals != monday.Totals {
			t.Errorf("day %d: totals %+v differ from Monday %+v", day, d.Totals, monday.Totals)
		}
	}
}

func TestGenerateDay_FiveMealsRepeatsLunch(t *testing.T) {
	d := dietgen.GenerateDay(targets.StyleTraditional, 5, 2)
	var got []string
	for _, m := range d.Meals {
		got = append(got, m.Name)
	}
	want := []string{"Breakfast", "Lunch", "Lunch", "Afternoon snack", "Dinner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("meals = %v, want %v", got, want)
	}
	// The repeated meal must not share backing storage.
	d.Meals[1].Foods[0].Name = "changed"
	if d.Meals[2].Foods[0].Name == "changed" {
		t.Error("duplicated meal shares its food slice")
	}
}

func TestGenerateDay_OutOfRangeDayUsesFirstTips(t *testing.T) {
	first := dietgen.GenerateDay(targets.StyleKetogenic, 4, 0)
	for _, idx := range []int{7, 12, -1} {
		d := dietgen.GenerateDay(targets.StyleKetogenic, 4, idx)
		if d.Day != "Monday" || !reflect.DeepEqual(d.Tips, first.Tips) {
			t.Errorf("day %d: got %s %v, want Monday %v", idx, d.Day, d.Tips, first.Tips)
		}
	}
}

func TestGenerateDay_Alternatives(t *testing.T) {
	d := dietgen.GenerateDay(targets.StyleLowCarb, 4, 0)
	lunch := d.Meals[1]
	chicken := lunch.Foods[0]
	if len(chicken.Alternatives) == 0 || chicken.Alternatives[0] != "Lean beef" {
		t.Errorf("chicken alternatives = %v", chicken.Alternatives)
	}
	for _, a := range chicken.Alternatives {
		if a == chicken.Name {
			t.Errorf("alternatives include the food itself: %v", chicken.Alternatives)
		}
	}
	oil := lunch.Foods[3]
	if oil.Name != "Olive oil" || oil.Alternatives != nil {
		t.Errorf("olive oil = %+v, want no alternatives", oil)
	}
}

func TestParseGrams(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"150g", 150, true},
		{"2 slices (60g)", 60, true},
		{"0,5 kg", 500, true},
		{"200 grams", 200, true},
		{"120 gramas", 120, true},
		{"1 bowl", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := dietgen.ParseGrams(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseGrams(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFoodFromText(t *testing.T) {
	got := dietgen.FoodFromText("peito de frango", 200)
	if got.Calories != 330 || got.ProteinG != 62 || got.FatG != 7.2 || got.Quantity != "200g" {
		t.Errorf("FoodFromText = %+v", got)
	}
	if got.Name != "peito de frango" {
		t.Errorf("name = %q, want input kept", got.Name)
	}

	generic := dietgen.FoodFromText("mystery stew", 0)
	if generic.Calories != 150 || generic.Quantity != "100g" {
		t.Errorf("generic = %+v, want 150 kcal at 100g", generic)
	}
}
