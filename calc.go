package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lg/diet-plan-go-api/internal/anthro"
	"lg/diet-plan-go-api/internal/dietgen"
	"lg/diet-plan-go-api/internal/projection"
	"lg/diet-plan-go-api/internal/targets"
)

// The engine resolves unknown enum values to defaults. The API rejects them
// instead so a typo doesn't silently change the plan.
var (
	validGenders     = map[string]bool{"male": true, "female": true, "other": true}
	validGoalTypes   = map[string]bool{"weight_loss": true, "muscle_gain": true, "maintenance": true, "recomposition": true}
	validIntensities = map[string]bool{"mild": true, "moderate": true, "aggressive": true}
)

const maxMealsPerDay = 10

// validateBody returns an error message for the first invalid field, or "".
func validateBody(b bodyRequest) string {
	switch {
	case b.WeightKG <= 0 || b.WeightKG > 500:
		return "weight_kg must be between 0 and 500"
	case b.HeightCM <= 0 || b.HeightCM > 300:
		return "height_cm must be between 0 and 300"
	case b.Age <= 0 || b.Age > 130:
		return "age must be between 1 and 130"
	case !validGenders[b.Gender]:
		return "gender must be one of: male, female, other"
	case b.ActivityLevel != "" && !anthro.ValidActivityLevel(b.ActivityLevel):
		return "activity_level must be one of: sedentary, light, moderate, active, very_active"
	}
	return ""
}

// validateGoal checks enum fields and the custom-calorie override.
func validateGoal(g goalRequest, style string) string {
	switch {
	case g.Type != "" && !validGoalTypes[g.Type]:
		return "goal.type must be one of: weight_loss, muscle_gain, maintenance, recomposition"
	case g.Intensity != "" && !validIntensities[g.Intensity]:
		return "goal.intensity must be one of: mild, moderate, aggressive"
	case g.UseCustomCalories && g.CustomCalories <= 0:
		return "goal.custom_calories must be positive when use_custom_calories is set"
	case style != "" && !targets.ValidDietStyle(style):
		return "diet_style is not supported"
	}
	return ""
}

func toBody(b bodyRequest) anthro.BodyComposition {
	body := anthro.BodyComposition{
		WeightKg: b.WeightKG,
		HeightCm: b.HeightCM,
		Age:      b.Age,
		Gender:   anthro.ParseGender(b.Gender),
	}
	if b.WaistCM != nil {
		body.WaistCm = *b.WaistCM
	}
	if b.HipCM != nil {
		body.HipCm = *b.HipCM
	}
	if b.NeckCM != nil {
		body.NeckCm = *b.NeckCM
	}
	return body
}

func toGoal(g goalRequest, weightKG float64) targets.Goal {
	current := g.CurrentWeightKG
	if current <= 0 {
		current = weightKG
	}
	return targets.Goal{
		Type:              targets.ParseGoalType(g.Type),
		Intensity:         targets.ParseIntensity(g.Intensity),
		CurrentWeightKg:   current,
		TargetWeightKg:    g.TargetWeightKG,
		UseCustomCalories: g.UseCustomCalories,
		CustomCalories:    g.CustomCalories,
	}
}

// calcBody computes BMI, metabolism and body composition for the given body.
// POST /api/calc/body. Stateless; nothing is stored.
func (h *Handler) calcBody(c *gin.Context) {
	var req bodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateBody(req); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	body := anthro.Derive(toBody(req), anthro.ActivityLevel(req.ActivityLevel))
	resp := bodyResponse{
		Body:          body,
		BMI:           anthro.GetBMIInfo(body.BMI, body.Age),
		HealthyWeight: anthro.CalculateHealthyWeightRange(body.HeightCm),
		IdealWeightKG: anthro.CalculateIdealWeightDevine(body.HeightCm, body.Gender),
	}
	if bf, ok := anthro.EstimateBodyFatNavy(body.Gender, body.HeightCm, body.WaistCm, body.NeckCm, body.HipCm); ok {
		resp.NavyBodyFatPercent = &bf
	}

	c.JSON(http.StatusOK, resp)
}

// calcTargets computes daily calorie and macro targets.
// POST /api/calc/targets. Body: { body: {...}, goal: {...}, diet_style }.
func (h *Handler) calcTargets(c *gin.Context) {
	var req targetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateBody(req.Body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if msg := validateGoal(req.Goal, req.DietStyle); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	body := anthro.Derive(toBody(req.Body), anthro.ActivityLevel(req.Body.ActivityLevel))
	nt := targets.Calculate(body.TDEE, body.WeightKg, body.Gender,
		toGoal(req.Goal, body.WeightKg), targets.ParseDietStyle(req.DietStyle))

	c.JSON(http.StatusOK, targetsResponse{BMR: body.BMR, TDEE: body.TDEE, Targets: nt})
}

// calcProjection projects weight change over time for a body and goal.
// POST /api/calc/projection. goal.target_weight_kg is required; start_date
// defaults to today. A goal that does not change intake returns
// reachable=false with no milestones.
func (h *Handler) calcProjection(c *gin.Context) {
	var req targetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateBody(req.Body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if msg := validateGoal(req.Goal, req.DietStyle); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if req.Goal.TargetWeightKG <= 0 {
		apiError(c, http.StatusBadRequest, "goal.target_weight_kg is required")
		return
	}

	start := today()
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
			return
		}
		start = t
	}

	body := anthro.Derive(toBody(req.Body), anthro.ActivityLevel(req.Body.ActivityLevel))
	goal := toGoal(req.Goal, body.WeightKg)
	cal, _ := targets.CalorieTarget(body.TDEE, goal)

	c.JSON(http.StatusOK, projectionResponse{
		CurrentWeightKG: goal.CurrentWeightKg,
		TargetWeightKG:  goal.TargetWeightKg,
		TDEE:            body.TDEE,
		TargetCalories:  cal,
		Projection:      projection.Project(body.TDEE, cal, goal.CurrentWeightKg, goal.TargetWeightKg, start),
	})
}

// calcWeeklyDiet returns the template-based week for a style and meal count.
// POST /api/calc/weekly-diet. Never calls the AI.
func (h *Handler) calcWeeklyDiet(c *gin.Context) {
	var req weeklyDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateWeeklyRequest(req); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	c.JSON(http.StatusOK, dietgen.Generate(dietgen.Request{
		Style:       targets.ParseDietStyle(req.DietStyle),
		MealsPerDay: req.MealsPerDay,
	}))
}

func validateWeeklyRequest(req weeklyDietRequest) string {
	if req.DietStyle != "" && !targets.ValidDietStyle(req.DietStyle) {
		return "diet_style is not supported"
	}
	if req.MealsPerDay < 0 || req.MealsPerDay > maxMealsPerDay {
		return "meals_per_day must be between 1 and 10"
	}
	return ""
}

// today returns the current date at midnight UTC.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
