package anthro

// BodyComposition holds the four required measurements plus optional
// circumferences. Derived fields are only ever written by Derive.
type BodyComposition struct {
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Age      int     `json:"age"`
	Gender   Gender  `json:"gender"`

	WaistCm float64 `json:"waist_cm,omitempty"`
	HipCm   float64 `json:"hip_cm,omitempty"`
	NeckCm  float64 `json:"neck_cm,omitempty"`

	BMI            float64 `json:"bmi"`
	BMR            int     `json:"bmr"`
	TDEE           int     `json:"tdee"`
	BodyFatPercent float64 `json:"body_fat_percent"`
	BodyFatMethod  string  `json:"body_fat_method"`
	FatMassKg      float64 `json:"fat_mass_kg"`
	LeanMassKg     float64 `json:"lean_mass_kg"`
	WaistHipRatio  float64 `json:"waist_hip_ratio,omitempty"`
}

// Body-fat estimation methods reported in BodyFatMethod.
const (
	BodyFatMethodNavy = "navy"
	BodyFatMethodBMI  = "bmi"
)

// Derive returns a copy of b with every derived field recomputed from its
// inputs. The Navy method is preferred when the needed circumferences are
// present; otherwise body fat is estimated from BMI.
func Derive(b BodyComposition, level ActivityLevel) BodyComposition {
	out := BodyComposition{
		WeightKg: b.WeightKg,
		HeightCm: b.HeightCm,
		Age:      b.Age,
		Gender:   b.Gender,
		WaistCm:  b.WaistCm,
		HipCm:    b.HipCm,
		NeckCm:   b.NeckCm,
	}

	out.BMI = CalculateBMI(b.WeightKg, b.HeightCm)
	out.BMR = CalculateBasalMetabolism(b.WeightKg, b.HeightCm, b.Age, b.Gender)
	out.TDEE = CalculateDailyMetabolism(out.BMR, level)

	if bf, ok := EstimateBodyFatNavy(b.Gender, b.HeightCm, b.WaistCm, b.NeckCm, b.HipCm); ok {
		out.BodyFatPercent = bf
		out.BodyFatMethod = BodyFatMethodNavy
	} else {
		out.BodyFatPercent = EstimateBodyFatFromBMI(out.BMI, b.Age, b.Gender)
		out.BodyFatMethod = BodyFatMethodBMI
	}
	out.FatMassKg = CalculateFatMass(b.WeightKg, out.BodyFatPercent)
	out.LeanMassKg = CalculateLeanMass(b.WeightKg, out.BodyFatPercent)

	if b.WaistCm > 0 && b.HipCm > 0 {
		out.WaistHipRatio = CalculateWaistHipRatio(b.WaistCm, b.HipCm)
	}
	return out
}
