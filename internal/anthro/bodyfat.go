package anthro

import "math"

// EstimateBodyFatFromBMI uses the Deurenberg adult formula
// 1.2·BMI + 0.23·age − 10.8·g − 5.4 (g = 1 for male, else 0),
// clamped at zero and rounded to one decimal.
func EstimateBodyFatFromBMI(bmi float64, age int, gender Gender) float64 {
	g := 0.0
	if gender == GenderMale {
		g = 1
	}
	bf := 1.2*bmi + 0.23*float64(age) - 10.8*g - 5.4
	return round1(math.Max(0, bf))
}

// EstimateBodyFatNavy applies the U.S. Navy circumference method. ok is false
// when a required measurement is missing (non-positive): waist and neck
// always, hip for anyone not male. Differences that make the logarithm
// undefined propagate as NaN.
func EstimateBodyFatNavy(gender Gender, heightCm, waistCm, neckCm, hipCm float64) (float64, bool) {
	if heightCm <= 0 || waistCm <= 0 || neckCm <= 0 {
		return 0, false
	}

	var bf float64
	if gender == GenderMale {
		bf = 495/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450
	} else {
		if hipCm <= 0 {
			return 0, false
		}
		bf = 495/(1.29579-0.35004*math.Log10(waistCm+hipCm-neckCm)+0.22100*math.Log10(heightCm)) - 450
	}
	if math.IsNaN(bf) {
		return bf, true
	}
	return round1(math.Max(0, bf)), true
}

// CalculateFatMass returns weight × body-fat fraction, one decimal.
func CalculateFatMass(weightKg, bodyFatPercent float64) float64 {
	return round1(weightKg * bodyFatPercent / 100)
}

// CalculateLeanMass returns the non-fat share of weight, one decimal.
func CalculateLeanMass(weightKg, bodyFatPercent float64) float64 {
	return round1(weightKg - weightKg*bodyFatPercent/100)
}

// CalculateWaistHipRatio returns waist/hip to two decimals.
func CalculateWaistHipRatio(waistCm, hipCm float64) float64 {
	return round2(waistCm / hipCm)
}
