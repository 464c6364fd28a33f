package main

import (
	"time"

	"lg/diet-plan-go-api/internal/anthro"
	"lg/diet-plan-go-api/internal/targets"
)

// planInputs is a profile translated into engine inputs.
type planInputs struct {
	Body        anthro.BodyComposition
	Activity    anthro.ActivityLevel
	Goal        targets.Goal
	Style       targets.DietStyle
	MealsPerDay int
}

// planInputsFrom validates a profile and converts it for the engine.
// Returns ok=false when a required body field is nil or the age derived from
// date of birth is implausible. A missing target weight means "stay put".
func planInputsFrom(p *profile, now time.Time) (planInputs, bool) {
	if p.Sex == nil || p.DateOfBirth == nil || p.HeightCM == nil ||
		p.WeightKG == nil || p.ActivityLevel == nil {
		return planInputs{}, false
	}
	if *p.HeightCM <= 0 || *p.WeightKG <= 0 {
		return planInputs{}, false
	}

	age := ageOn(p.DateOfBirth.Time, now)
	// Guard against implausible ages (DOB in the future, or over 130 years ago)
	if age <= 0 || age > 130 {
		return planInputs{}, false
	}

	body := anthro.BodyComposition{
		WeightKg: *p.WeightKG,
		HeightCm: *p.HeightCM,
		Age:      age,
		Gender:   anthro.ParseGender(*p.Sex),
	}
	if p.WaistCM != nil {
		body.WaistCm = *p.WaistCM
	}
	if p.HipCM != nil {
		body.HipCm = *p.HipCM
	}
	if p.NeckCM != nil {
		body.NeckCm = *p.NeckCM
	}

	target := *p.WeightKG
	if p.TargetWeightKG != nil {
		target = *p.TargetWeightKG
	}
	goal := targets.Goal{
		Type:              targets.ParseGoalType(p.GoalType),
		Intensity:         targets.ParseIntensity(p.GoalIntensity),
		CurrentWeightKg:   *p.WeightKG,
		TargetWeightKg:    target,
		UseCustomCalories: p.UseCustomCalories && p.CustomCalories != nil,
	}
	if goal.UseCustomCalories {
		goal.CustomCalories = *p.CustomCalories
	}

	return planInputs{
		Body:        body,
		Activity:    anthro.ActivityLevel(*p.ActivityLevel),
		Goal:        goal,
		Style:       targets.ParseDietStyle(p.DietStyle),
		MealsPerDay: p.MealsPerDay,
	}, true
}

// ageOn returns completed years between dob and now.
func ageOn(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

// computeProfile runs the engine over a set of inputs.
func computeProfile(in planInputs) computedProfile {
	body := anthro.Derive(in.Body, in.Activity)
	return computedProfile{
		Body:          body,
		BMI:           anthro.GetBMIInfo(body.BMI, body.Age),
		HealthyWeight: anthro.CalculateHealthyWeightRange(body.HeightCm),
		IdealWeightKG: anthro.CalculateIdealWeightDevine(body.HeightCm, body.Gender),
		Targets:       targets.Calculate(body.TDEE, body.WeightKg, body.Gender, in.Goal, in.Style),
	}
}

// populateComputed fills p.Computed when the profile is complete.
// No-ops if any required field is missing.
func populateComputed(p *profile) {
	if in, ok := planInputsFrom(p, time.Now()); ok {
		cp := computeProfile(in)
		p.Computed = &cp
	}
}

// currentMonday returns the Monday of the current week at midnight UTC.
// Uses AddDate to safely handle month/year boundaries.
func currentMonday() time.Time {
	return mondayOf(time.Now().UTC())
}

func mondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday()) // 0=Sun
	if weekday == 0 {
		weekday = 7 // treat Sunday as day 7 so Mon=1..Sun=7
	}
	d := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
