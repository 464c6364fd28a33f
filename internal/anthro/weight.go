package anthro

// WeightRange is an inclusive weight interval in kilograms.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

const (
	healthyBMIMin = 18.5
	healthyBMIMax = 24.9
)

// CalculateHealthyWeightRange back-solves BMI 18.5 and 24.9 for heightCm.
// 170 cm gives {53.5, 72.0}.
func CalculateHealthyWeightRange(heightCm float64) WeightRange {
	h := heightCm / 100
	return WeightRange{
		Min: round1(healthyBMIMin * h * h),
		Max: round1(healthyBMIMax * h * h),
	}
}

const cmPerInch = 2.54

// CalculateIdealWeightDevine returns base + 2.3 kg per inch over 60 in.
// Base is 50 kg for male, 45.5 kg for female and the 47.75 midpoint otherwise.
func CalculateIdealWeightDevine(heightCm float64, gender Gender) float64 {
	base := 47.75
	switch gender {
	case GenderMale:
		base = 50
	case GenderFemale:
		base = 45.5
	}
	inchesOver := heightCm/cmPerInch - 60
	return round1(base + 2.3*inchesOver)
}
