package main

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// makeProfile constructs a fully-populated profile for planInputsFrom tests.
// Individual tests nil out specific fields to exercise missing-field guards.
func makeProfile(sex string, dob time.Time, heightCM, weightKG, targetKG float64, activity string) *profile {
	d := DateOnly{dob}
	return &profile{
		UserID:         1,
		Sex:            &sex,
		DateOfBirth:    &d,
		HeightCM:       &heightCM,
		WeightKG:       &weightKG,
		ActivityLevel:  &activity,
		TargetWeightKG: &targetKG,
		GoalType:       "weight_loss",
		GoalIntensity:  "moderate",
		DietStyle:      "traditional",
		MealsPerDay:    4,
	}
}

/* ─── Missing-field guard tests ──────────────────────────────────────── */

// TestPlanInputsFrom_MissingFields verifies ok=false when any required
// profile field is nil.
func TestPlanInputsFrom_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(p *profile)
	}{
		{"nil Sex", func(p *profile) { p.Sex = nil }},
		{"nil DateOfBirth", func(p *profile) { p.DateOfBirth = nil }},
		{"nil HeightCM", func(p *profile) { p.HeightCM = nil }},
		{"nil WeightKG", func(p *profile) { p.WeightKG = nil }},
		{"nil ActivityLevel", func(p *profile) { p.ActivityLevel = nil }},
		{"zero height", func(p *profile) { h := 0.0; p.HeightCM = &h }},
		{"future DOB", func(p *profile) { p.DateOfBirth = &DateOnly{testNow.AddDate(1, 0, 0)} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := makeProfile("male", time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC), 175, 80, 70, "sedentary")
			tc.mutFn(p)
			if _, ok := planInputsFrom(p, testNow); ok {
				t.Errorf("expected ok=false when %s, got ok=true", tc.name)
			}
		})
	}
}

/* ─── Age ────────────────────────────────────────────────────────────── */

func TestAgeOn(t *testing.T) {
	dob := time.Date(1996, 3, 11, 0, 0, 0, 0, time.UTC)
	if got := ageOn(dob, testNow); got != 29 {
		t.Errorf("day before birthday: age = %d, want 29", got)
	}
	if got := ageOn(dob, testNow.AddDate(0, 0, 1)); got != 30 {
		t.Errorf("on birthday: age = %d, want 30", got)
	}
}

/* ─── End-to-end ─────────────────────────────────────────────────────── */

// TestComputeProfile_EndToEnd covers 80 kg, 175 cm, 30 y male, sedentary,
// losing moderately to 70 kg.
func TestComputeProfile_EndToEnd(t *testing.T) {
	p := makeProfile("male", time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC), 175, 80, 70, "sedentary")
	in, ok := planInputsFrom(p, testNow)
	if !ok {
		t.Fatal("expected complete profile")
	}
	if in.Body.Age != 30 {
		t.Fatalf("age = %d, want 30", in.Body.Age)
	}

	cp := computeProfile(in)
	if cp.Body.BMR != 1748 || cp.Body.TDEE != 2098 {
		t.Errorf("BMR/TDEE = %d/%d, want 1748/2098", cp.Body.BMR, cp.Body.TDEE)
	}
	if cp.Targets.Calories != 1598 {
		t.Errorf("calories = %d, want 1598", cp.Targets.Calories)
	}
	if cp.BMI.Value != 26.1 {
		t.Errorf("BMI = %v, want 26.1", cp.BMI.Value)
	}
}

func TestPlanInputsFrom_CustomCaloriesNeedsValue(t *testing.T) {
	p := makeProfile("female", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 165, 60, 60, "light")
	p.UseCustomCalories = true
	in, _ := planInputsFrom(p, testNow)
	if in.Goal.UseCustomCalories {
		t.Error("override without a value should be ignored")
	}

	cal := 1700
	p.CustomCalories = &cal
	in, _ = planInputsFrom(p, testNow)
	if !in.Goal.UseCustomCalories || in.Goal.CustomCalories != 1700 {
		t.Errorf("goal = %+v, want custom 1700", in.Goal)
	}
}

func TestPlanInputsFrom_MissingTargetMeansCurrent(t *testing.T) {
	p := makeProfile("male", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 180, 85, 0, "active")
	p.TargetWeightKG = nil
	in, ok := planInputsFrom(p, testNow)
	if !ok || in.Goal.TargetWeightKg != 85 {
		t.Errorf("target = %v (ok=%v), want 85", in.Goal.TargetWeightKg, ok)
	}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), "2026-03-09"}, // Tuesday
		{time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), "2026-03-09"},  // Sunday
		{time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), "2026-02-23"},   // Sunday across a month
		{time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "2026-03-09"},   // Monday
	}
	for _, tc := range cases {
		if got := mondayOf(tc.in).Format("2006-01-02"); got != tc.want {
			t.Errorf("mondayOf(%s) = %s, want %s", tc.in.Format("2006-01-02"), got, tc.want)
		}
	}
}
