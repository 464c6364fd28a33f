// Package targets turns TDEE and a diet goal into daily calorie, macro,
// fiber and water targets.
package targets

import (
	"fmt"
	"math"
	"strings"

	"lg/diet-plan-go-api/internal/anthro"
)

// GoalType is the direction of the diet goal. Unknown values resolve to
// GoalWeightLoss.
type GoalType string

const (
	GoalWeightLoss    GoalType = "weight_loss"
	GoalMuscleGain    GoalType = "muscle_gain"
	GoalMaintenance   GoalType = "maintenance"
	GoalRecomposition GoalType = "recomposition"
)

// ParseGoalType accepts snake_case or hyphenated names.
func ParseGoalType(s string) GoalType {
	switch GoalType(normalizeEnum(s)) {
	case GoalMuscleGain:
		return GoalMuscleGain
	case GoalMaintenance:
		return GoalMaintenance
	case GoalRecomposition:
		return GoalRecomposition
	default:
		return GoalWeightLoss
	}
}

// Intensity sets the size of the deficit or surplus. Unknown values resolve
// to IntensityModerate. Ignored for maintenance and recomposition.
type Intensity string

const (
	IntensityMild       Intensity = "mild"
	IntensityModerate   Intensity = "moderate"
	IntensityAggressive Intensity = "aggressive"
)

// ParseIntensity normalises an intensity name.
func ParseIntensity(s string) Intensity {
	switch Intensity(normalizeEnum(s)) {
	case IntensityMild:
		return IntensityMild
	case IntensityAggressive:
		return IntensityAggressive
	default:
		return IntensityModerate
	}
}

var intensityOffsets = map[Intensity]int{
	IntensityMild:       300,
	IntensityModerate:   500,
	IntensityAggressive: 750,
}

// maintenanceBand is the accepted spread around TDEE for goals that do not
// move body weight.
const (
	maintenanceBandLow  = 0.95
	maintenanceBandHigh = 1.05
)

// Goal is the user's stated diet goal. When UseCustomCalories is set the
// calorie target is CustomCalories verbatim.
type Goal struct {
	Type              GoalType  `json:"type"`
	Intensity         Intensity `json:"intensity"`
	CurrentWeightKg   float64   `json:"current_weight_kg"`
	TargetWeightKg    float64   `json:"target_weight_kg"`
	UseCustomCalories bool      `json:"use_custom_calories"`
	CustomCalories    int       `json:"custom_calories,omitempty"`
}

// CalorieRange is the accepted daily intake window. For weight-changing goals
// Min and Max both equal the target.
type CalorieRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// NutritionTargets is an immutable snapshot produced by Calculate. Percents
// are the effective shares after gram rounding, so grams and percents agree.
type NutritionTargets struct {
	Calories     int          `json:"calories"`
	CalorieRange CalorieRange `json:"calorie_range"`
	Style        DietStyle    `json:"style"`

	ProteinG       int `json:"protein_g"`
	CarbsG         int `json:"carbs_g"`
	FatG           int `json:"fat_g"`
	ProteinPercent int `json:"protein_percent"`
	CarbsPercent   int `json:"carbs_percent"`
	FatPercent     int `json:"fat_percent"`

	FiberG int     `json:"fiber_g"`
	WaterL float64 `json:"water_l"`

	Warnings []Warning `json:"warnings"`
}

// CalorieTarget applies the goal to tdee.
func CalorieTarget(tdee int, goal Goal) (int, CalorieRange) {
	if goal.UseCustomCalories {
		return goal.CustomCalories, CalorieRange{Min: goal.CustomCalories, Max: goal.CustomCalories}
	}

	offset, ok := intensityOffsets[goal.Intensity]
	if !ok {
		offset = intensityOffsets[IntensityModerate]
	}

	var cal int
	switch goal.Type {
	case GoalMuscleGain:
		cal = tdee + offset
	case GoalMaintenance, GoalRecomposition:
		return tdee, CalorieRange{
			Min: int(math.Round(float64(tdee) * maintenanceBandLow)),
			Max: int(math.Round(float64(tdee) * maintenanceBandHigh)),
		}
	default:
		cal = tdee - offset
	}
	return cal, CalorieRange{Min: cal, Max: cal}
}

const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0

	fiberGramsPer1000Kcal = 14.0
	waterMLPerKg          = 35.0
)

// Macros is the gram and effective-percent breakdown of a calorie amount.
type Macros struct {
	ProteinG, CarbsG, FatG                   int
	ProteinPercent, CarbsPercent, FatPercent int
}

// MacrosFor converts the style's nominal split into integer grams and then
// reports the percents those grams actually represent.
func MacrosFor(calories int, style DietStyle) Macros {
	split := SplitFor(style)
	cal := float64(calories)
	m := Macros{
		ProteinG: int(math.Round(cal * split.Protein / 100 / kcalPerGramProtein)),
		CarbsG:   int(math.Round(cal * split.Carbs / 100 / kcalPerGramCarbs)),
		FatG:     int(math.Round(cal * split.Fat / 100 / kcalPerGramFat)),
	}
	if calories <= 0 {
		return m
	}
	m.ProteinPercent = effectivePercent(m.ProteinG, kcalPerGramProtein, cal)
	m.CarbsPercent = effectivePercent(m.CarbsG, kcalPerGramCarbs, cal)
	m.FatPercent = effectivePercent(m.FatG, kcalPerGramFat, cal)
	return m
}

func effectivePercent(grams int, kcalPerGram, calories float64) int {
	return int(math.Round(float64(grams) * kcalPerGram / calories * 100))
}

// Calculate produces the full target snapshot. Warnings are advisory and never
// change the numbers.
func Calculate(tdee int, weightKg float64, gender anthro.Gender, goal Goal, style DietStyle) NutritionTargets {
	cal, rng := CalorieTarget(tdee, goal)
	m := MacrosFor(cal, style)

	return NutritionTargets{
		Calories:       cal,
		CalorieRange:   rng,
		Style:          ParseDietStyle(string(style)),
		ProteinG:       m.ProteinG,
		CarbsG:         m.CarbsG,
		FatG:           m.FatG,
		ProteinPercent: m.ProteinPercent,
		CarbsPercent:   m.CarbsPercent,
		FatPercent:     m.FatPercent,
		FiberG:         int(math.Round(float64(cal) * fiberGramsPer1000Kcal / 1000)),
		WaterL:         math.Round(weightKg*waterMLPerKg/100) / 10,
		Warnings:       CheckCalorieSafety(cal, gender),
	}
}

/* ─── Safety thresholds ──────────────────────────────────────────────── */

// WarningSeverity categorises how serious a flag is.
type WarningSeverity string

const (
	SeverityCaution WarningSeverity = "caution"
	SeverityHigh    WarningSeverity = "high"
)

// Warning is an advisory finding surfaced next to a computed target.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
	Value    int             `json:"value"`
	Limit    int             `json:"limit"`
}

// Warning codes.
const (
	WarningTooLow    = "calories_too_low"
	WarningDangerous = "calories_dangerous"
)

type calorieFloor struct {
	minimum int
	danger  int
}

var calorieFloors = map[anthro.Gender]calorieFloor{
	anthro.GenderMale:   {minimum: 1500, danger: 1200},
	anthro.GenderFemale: {minimum: 1200, danger: 1000},
	anthro.GenderOther:  {minimum: 1350, danger: 1100},
}

// CheckCalorieSafety flags a calorie target under the gender-specific
// minimum, or under the lower danger threshold. At most one warning is
// returned: the most severe that applies.
func CheckCalorieSafety(calories int, gender anthro.Gender) []Warning {
	floor, ok := calorieFloors[gender]
	if !ok {
		floor = calorieFloors[anthro.GenderOther]
	}
	switch {
	case calories < floor.danger:
		return []Warning{{
			Code:     WarningDangerous,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("A daily target of %d kcal is below the %d kcal danger threshold. Do not follow it without medical supervision.", calories, floor.danger),
			Value:    calories,
			Limit:    floor.danger,
		}}
	case calories < floor.minimum:
		return []Warning{{
			Code:     WarningTooLow,
			Severity: SeverityCaution,
			Message:  fmt.Sprintf("A daily target of %d kcal is below the recommended minimum of %d kcal.", calories, floor.minimum),
			Value:    calories,
			Limit:    floor.minimum,
		}}
	}
	return []Warning{}
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}
