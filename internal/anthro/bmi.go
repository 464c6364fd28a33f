// Package anthro derives body-composition metrics from raw measurements.
// Every function is pure; invalid input propagates as NaN or a degenerate
// value instead of an error so callers validate before calling.
package anthro

import "math"

// BMIClass is one of the eight ordered adult BMI bands.
type BMIClass string

const (
	BMIUnderweight       BMIClass = "underweight"
	BMINormal            BMIClass = "normal_weight"
	BMIOverweight        BMIClass = "overweight"
	BMIObesityI          BMIClass = "obesity_class_1"
	BMIObesityII         BMIClass = "obesity_class_2"
	BMIObesityIII        BMIClass = "obesity_class_3"
	BMISuperObesity      BMIClass = "super_obesity"
	BMISuperSuperObesity BMIClass = "super_super_obesity"
)

// ElderlyBMIClass is the three-band classification used from age 60.
type ElderlyBMIClass string

const (
	ElderlyUnderweight ElderlyBMIClass = "underweight"
	ElderlyNormal      ElderlyBMIClass = "normal_weight"
	ElderlyOverweight  ElderlyBMIClass = "overweight"
)

// ElderlyAge is the age from which the elderly classification applies.
const ElderlyAge = 60

// RiskLevel is the health-risk tier attached to a BMI band.
type RiskLevel string

const (
	RiskModerate  RiskLevel = "moderate"
	RiskLow       RiskLevel = "low"
	RiskIncreased RiskLevel = "increased"
	RiskHigh      RiskLevel = "high"
	RiskVeryHigh  RiskLevel = "very_high"
	RiskExtreme   RiskLevel = "extremely_high"
	RiskSevere    RiskLevel = "severe"
	RiskCritical  RiskLevel = "critical"
)

// BMIInfo is the display record for a BMI value. It is always derivable from
// weight, height and age and is never the source of truth.
type BMIInfo struct {
	Value                 float64          `json:"value"`
	Classification        BMIClass         `json:"classification"`
	ElderlyClassification *ElderlyBMIClass `json:"elderly_classification,omitempty"`
	Risk                  RiskLevel        `json:"risk"`
	Description           string           `json:"description"`
	Color                 string           `json:"color"`
}

type bandInfo struct {
	risk        RiskLevel
	description string
	color       string
}

// bmiThresholds are the closed-open upper bounds of the first seven bands.
var bmiThresholds = []struct {
	upper float64
	class BMIClass
}{
	{18.5, BMIUnderweight},
	{25, BMINormal},
	{30, BMIOverweight},
	{35, BMIObesityI},
	{40, BMIObesityII},
	{50, BMIObesityIII},
	{60, BMISuperObesity},
}

var adultBands = map[BMIClass]bandInfo{
	BMIUnderweight:       {RiskModerate, "Below the healthy range. Consider increasing energy intake with nutrient-dense foods.", "#3B82F6"},
	BMINormal:            {RiskLow, "Within the healthy range for adults.", "#22C55E"},
	BMIOverweight:        {RiskIncreased, "Above the healthy range. A modest calorie deficit and regular activity help.", "#EAB308"},
	BMIObesityI:          {RiskHigh, "Obesity class I. Elevated risk of metabolic disease.", "#F97316"},
	BMIObesityII:         {RiskVeryHigh, "Obesity class II. Medical follow-up is recommended.", "#EF4444"},
	BMIObesityIII:        {RiskExtreme, "Obesity class III. Seek medical supervision for weight management.", "#DC2626"},
	BMISuperObesity:      {RiskSevere, "Super obesity. Specialised medical care is strongly recommended.", "#B91C1C"},
	BMISuperSuperObesity: {RiskCritical, "Super-super obesity. Specialised medical care is required.", "#7F1D1D"},
}

var elderlyBands = map[ElderlyBMIClass]bandInfo{
	ElderlyUnderweight: {RiskModerate, "Below the healthy range for older adults, where reserves matter more.", "#3B82F6"},
	ElderlyNormal:      {RiskLow, "Within the healthy range for older adults.", "#22C55E"},
	ElderlyOverweight:  {RiskIncreased, "Above the healthy range for older adults.", "#EAB308"},
}

// CalculateBMI returns weight / (height in metres)², rounded to one decimal.
func CalculateBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return round1(weightKg / (h * h))
}

// ClassifyBMI maps a BMI onto the eight adult bands. Bounds are closed-open:
// 25.0 is overweight, 24.9 is normal weight.
func ClassifyBMI(bmi float64) BMIClass {
	for _, t := range bmiThresholds {
		if bmi < t.upper {
			return t.class
		}
	}
	return BMISuperSuperObesity
}

// ClassifyElderlyBMI maps a BMI onto the three bands used from age 60.
func ClassifyElderlyBMI(bmi float64) ElderlyBMIClass {
	switch {
	case bmi < 22:
		return ElderlyUnderweight
	case bmi < 27:
		return ElderlyNormal
	default:
		return ElderlyOverweight
	}
}

// GetBMIInfo builds the display record for bmi. The primary classification
// is the adult one regardless of age; from ElderlyAge the elderly band is
// reported as well and drives risk, description and color.
func GetBMIInfo(bmi float64, age int) BMIInfo {
	value := round1(bmi)
	class := ClassifyBMI(value)
	band := adultBands[class]
	info := BMIInfo{Value: value, Classification: class}

	if age >= ElderlyAge {
		elderly := ClassifyElderlyBMI(value)
		info.ElderlyClassification = &elderly
		band = elderlyBands[elderly]
	}

	info.Risk = band.risk
	info.Description = band.description
	info.Color = band.color
	return info
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
