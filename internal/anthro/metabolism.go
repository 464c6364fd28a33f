package anthro

import (
	"math"
	"strings"
)

// Gender selects the sex-specific constants. Any unrecognised value is
// treated as GenderOther, which uses the numeric midpoint of the male and
// female constants.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender normalises a free-form gender value; unknown values map to
// GenderOther.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	default:
		return GenderOther
	}
}

// ActivityLevel is one of five ordered activity tiers.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityMultipliers maps activity level to its TDEE multiplier. It is the
// single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// ActivityLevels lists the tiers in ascending order.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// ValidActivityLevel reports whether s names one of the five tiers.
func ValidActivityLevel(s string) bool {
	_, ok := activityMultipliers[ActivityLevel(s)]
	return ok
}

// ActivityMultiplier returns the TDEE multiplier for level, defaulting to
// sedentary for unknown values.
func ActivityMultiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[ActivitySedentary]
}

// Mifflin-St Jeor sex constants.
const (
	bmrMaleOffset   = 5.0
	bmrFemaleOffset = -161.0
	bmrOtherOffset  = -78.0
)

// CalculateBasalMetabolism returns BMR via Mifflin-St Jeor:
// 10·kg + 6.25·cm − 5·age + s, with s = +5 male, −161 female, −78 other.
// The result is truncated to whole kcal (80 kg, 175 cm, 30 y, male → 1748).
func CalculateBasalMetabolism(weightKg, heightCm float64, age int, gender Gender) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		bmr += bmrMaleOffset
	case GenderFemale:
		bmr += bmrFemaleOffset
	default:
		bmr += bmrOtherOffset
	}
	// Absorb float noise so 1700 computed as 1699.999… stays 1700.
	return int(math.Floor(bmr + 1e-9))
}

// CalculateDailyMetabolism returns TDEE = BMR × activity multiplier, rounded
// to the nearest integer.
func CalculateDailyMetabolism(bmr int, level ActivityLevel) int {
	return int(math.Round(float64(bmr) * ActivityMultiplier(level)))
}
