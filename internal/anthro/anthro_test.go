package anthro_test

import (
	"math"
	"testing"

	"lg/diet-plan-go-api/internal/anthro"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

/* ─── BMI ────────────────────────────────────────────────────────────── */

func TestCalculateBMI(t *testing.T) {
	if got := anthro.CalculateBMI(80, 175); got != 26.1 {
		t.Errorf("CalculateBMI(80, 175) = %v, want 26.1", got)
	}
	if got := anthro.CalculateBMI(70, 175); got != 22.9 {
		t.Errorf("CalculateBMI(70, 175) = %v, want 22.9", got)
	}
}

// TestCalculateBMI_ScaleConsistency checks that doubling weight doubles BMI
// and halving height quadruples it, within one-decimal rounding.
func TestCalculateBMI_ScaleConsistency(t *testing.T) {
	base := anthro.CalculateBMI(80, 175)
	if got := anthro.CalculateBMI(160, 175); !almostEqual(got, 2*base, 0.15) {
		t.Errorf("doubling weight: got %v, want ~%v", got, 2*base)
	}
	if got := anthro.CalculateBMI(80, 87.5); !almostEqual(got, 4*base, 0.25) {
		t.Errorf("halving height: got %v, want ~%v", got, 4*base)
	}
}

func TestClassifyBMI_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want anthro.BMIClass
	}{
		{15, anthro.BMIUnderweight},
		{18.4, anthro.BMIUnderweight},
		{18.5, anthro.BMINormal},
		{24.9, anthro.BMINormal},
		{25.0, anthro.BMIOverweight},
		{29.9, anthro.BMIOverweight},
		{30, anthro.BMIObesityI},
		{35, anthro.BMIObesityII},
		{40, anthro.BMIObesityIII},
		{49.9, anthro.BMIObesityIII},
		{50, anthro.BMISuperObesity},
		{59.9, anthro.BMISuperObesity},
		{60, anthro.BMISuperSuperObesity},
		{75, anthro.BMISuperSuperObesity},
	}
	for _, tc := range tests {
		if got := anthro.ClassifyBMI(tc.bmi); got != tc.want {
			t.Errorf("ClassifyBMI(%v) = %s, want %s", tc.bmi, got, tc.want)
		}
	}
}

func TestClassifyElderlyBMI_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want anthro.ElderlyBMIClass
	}{
		{21.9, anthro.ElderlyUnderweight},
		{22, anthro.ElderlyNormal},
		{26.9, anthro.ElderlyNormal},
		{27, anthro.ElderlyOverweight},
	}
	for _, tc := range tests {
		if got := anthro.ClassifyElderlyBMI(tc.bmi); got != tc.want {
			t.Errorf("ClassifyElderlyBMI(%v) = %s, want %s", tc.bmi, got, tc.want)
		}
	}
}

func TestGetBMIInfo_Adult(t *testing.T) {
	info := anthro.GetBMIInfo(26.1, 30)
	if info.Classification != anthro.BMIOverweight {
		t.Errorf("classification = %s, want overweight", info.Classification)
	}
	if info.ElderlyClassification != nil {
		t.Errorf("expected no elderly classification under 60, got %s", *info.ElderlyClassification)
	}
	if info.Risk != anthro.RiskIncreased || info.Color == "" || info.Description == "" {
		t.Errorf("unexpected band info: %+v", info)
	}
}

// TestGetBMIInfo_Elderly verifies both classifications are reported from 60
// and the elderly band drives the risk tier.
func TestGetBMIInfo_Elderly(t *testing.T) {
	info := anthro.GetBMIInfo(26.1, 65)
	if info.Classification != anthro.BMIOverweight {
		t.Errorf("primary classification must not depend on age, got %s", info.Classification)
	}
	if info.ElderlyClassification == nil || *info.ElderlyClassification != anthro.ElderlyNormal {
		t.Fatalf("expected elderly normal_weight, got %v", info.ElderlyClassification)
	}
	if info.Risk != anthro.RiskLow {
		t.Errorf("risk = %s, want low", info.Risk)
	}
	if info.Value != 26.1 {
		t.Errorf("value = %v, want 26.1", info.Value)
	}
}

/* ─── Metabolism ─────────────────────────────────────────────────────── */

func TestCalculateBasalMetabolism(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		age    int
		gender anthro.Gender
		want   int
	}{
		{"male reference", 80, 175, 30, anthro.GenderMale, 1748},
		{"male 70kg", 70, 175, 30, anthro.GenderMale, 1648},
		{"female 70kg", 70, 175, 30, anthro.GenderFemale, 1482},
		{"other uses midpoint", 70, 175, 30, anthro.GenderOther, 1565},
		{"unknown gender value", 70, 175, 30, anthro.Gender("x"), 1565},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := anthro.CalculateBasalMetabolism(tc.weight, tc.height, tc.age, tc.gender)
			if got != tc.want {
				t.Errorf("BMR = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCalculateDailyMetabolism(t *testing.T) {
	tests := []struct {
		bmr   int
		level anthro.ActivityLevel
		want  int
	}{
		{1748, anthro.ActivitySedentary, 2098},
		{1500, anthro.ActivityLight, 2063},
		{1500, anthro.ActivityModerate, 2325},
		{1500, anthro.ActivityActive, 2588},
		{1500, anthro.ActivityVeryActive, 2850},
		{1748, anthro.ActivityLevel("couch"), 2098},
	}
	for _, tc := range tests {
		if got := anthro.CalculateDailyMetabolism(tc.bmr, tc.level); got != tc.want {
			t.Errorf("TDEE(%d, %s) = %d, want %d", tc.bmr, tc.level, got, tc.want)
		}
	}
}

func TestParseGender(t *testing.T) {
	if anthro.ParseGender(" Male ") != anthro.GenderMale {
		t.Error("expected male")
	}
	if anthro.ParseGender("F") != anthro.GenderFemale {
		t.Error("expected female")
	}
	if anthro.ParseGender("nonbinary") != anthro.GenderOther {
		t.Error("expected other")
	}
}

/* ─── Body fat ───────────────────────────────────────────────────────── */

func TestEstimateBodyFatFromBMI(t *testing.T) {
	if got := anthro.EstimateBodyFatFromBMI(26.1, 30, anthro.GenderMale); got != 22.0 {
		t.Errorf("male = %v, want 22.0", got)
	}
	if got := anthro.EstimateBodyFatFromBMI(26.1, 30, anthro.GenderFemale); got != 32.8 {
		t.Errorf("female = %v, want 32.8", got)
	}
	if got := anthro.EstimateBodyFatFromBMI(5, 1, anthro.GenderMale); got != 0 {
		t.Errorf("expected clamp at 0, got %v", got)
	}
}

func TestEstimateBodyFatNavy(t *testing.T) {
	if got, ok := anthro.EstimateBodyFatNavy(anthro.GenderMale, 178, 90, 38, 0); !ok || got != 20.1 {
		t.Errorf("male navy = %v (ok=%v), want 20.1", got, ok)
	}
	if got, ok := anthro.EstimateBodyFatNavy(anthro.GenderFemale, 165, 75, 33, 100); !ok || got != 29.4 {
		t.Errorf("female navy = %v (ok=%v), want 29.4", got, ok)
	}
}

func TestEstimateBodyFatNavy_MissingMeasurements(t *testing.T) {
	cases := []struct {
		name                     string
		gender                   anthro.Gender
		height, waist, neck, hip float64
	}{
		{"male without neck", anthro.GenderMale, 178, 90, 0, 0},
		{"male without waist", anthro.GenderMale, 178, 0, 38, 0},
		{"female without hip", anthro.GenderFemale, 165, 75, 33, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := anthro.EstimateBodyFatNavy(tc.gender, tc.height, tc.waist, tc.neck, tc.hip); ok {
				t.Error("expected ok=false")
			}
		})
	}
}

func TestFatAndLeanMass(t *testing.T) {
	if got := anthro.CalculateFatMass(80, 22); got != 17.6 {
		t.Errorf("fat mass = %v, want 17.6", got)
	}
	if got := anthro.CalculateLeanMass(80, 22); got != 62.4 {
		t.Errorf("lean mass = %v, want 62.4", got)
	}
}

/* ─── Weight ranges ──────────────────────────────────────────────────── */

func TestCalculateHealthyWeightRange(t *testing.T) {
	r := anthro.CalculateHealthyWeightRange(170)
	if r.Min != 53.5 || r.Max != 72.0 {
		t.Errorf("range = %+v, want {53.5 72.0}", r)
	}
}

func TestCalculateIdealWeightDevine(t *testing.T) {
	if got := anthro.CalculateIdealWeightDevine(180, anthro.GenderMale); got != 75.0 {
		t.Errorf("male = %v, want 75.0", got)
	}
	if got := anthro.CalculateIdealWeightDevine(165, anthro.GenderFemale); got != 56.9 {
		t.Errorf("female = %v, want 56.9", got)
	}
	if got := anthro.CalculateIdealWeightDevine(170, anthro.GenderOther); got != 63.7 {
		t.Errorf("other = %v, want 63.7", got)
	}
}

/* ─── Derive ─────────────────────────────────────────────────────────── */

func TestDerive_BMIFallback(t *testing.T) {
	b := anthro.Derive(anthro.BodyComposition{WeightKg: 80, HeightCm: 175, Age: 30, Gender: anthro.GenderMale, BMI: 99}, anthro.ActivitySedentary)
	if b.BMI != 26.1 || b.BMR != 1748 || b.TDEE != 2098 {
		t.Errorf("unexpected derived values: %+v", b)
	}
	if b.BodyFatMethod != anthro.BodyFatMethodBMI || b.BodyFatPercent != 22.0 {
		t.Errorf("expected BMI body fat 22.0, got %s %v", b.BodyFatMethod, b.BodyFatPercent)
	}
	if b.FatMassKg != 17.6 || b.LeanMassKg != 62.4 {
		t.Errorf("fat/lean = %v/%v, want 17.6/62.4", b.FatMassKg, b.LeanMassKg)
	}
	if b.WaistHipRatio != 0 {
		t.Errorf("expected no waist-hip ratio without circumferences, got %v", b.WaistHipRatio)
	}
}

func TestDerive_Navy(t *testing.T) {
	b := anthro.Derive(anthro.BodyComposition{
		WeightKg: 60, HeightCm: 165, Age: 35, Gender: anthro.GenderFemale,
		WaistCm: 75, HipCm: 100, NeckCm: 33,
	}, anthro.ActivityModerate)
	if b.BodyFatMethod != anthro.BodyFatMethodNavy || b.BodyFatPercent != 29.4 {
		t.Errorf("expected navy 29.4, got %s %v", b.BodyFatMethod, b.BodyFatPercent)
	}
	if b.WaistHipRatio != 0.75 {
		t.Errorf("waist-hip ratio = %v, want 0.75", b.WaistHipRatio)
	}
}
