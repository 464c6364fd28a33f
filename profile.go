package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/diet-plan-go-api/internal/anthro"
	"lg/diet-plan-go-api/internal/targets"
)

// loadProfile fetches the profile row for userID.
func (h *Handler) loadProfile(ctx context.Context, userID int) (profile, error) {
	return queryOne[profile](h.db, ctx,
		"SELECT * FROM profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}

// getProfile returns the stored profile for the authenticated user, with
// body metrics and targets computed when the profile is complete.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, err := h.loadProfile(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return
	}

	populateComputed(&p)
	c.JSON(http.StatusOK, p)
}

// validatePatch rejects values the engine would otherwise coerce to defaults.
func validatePatch(body patchProfileRequest) string {
	if body.Sex != nil && !validGenders[*body.Sex] {
		return "sex must be one of: male, female, other"
	}
	if body.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *body.DateOfBirth); err != nil {
			return "invalid date_of_birth, expected YYYY-MM-DD"
		}
	}
	if body.ActivityLevel != nil && !anthro.ValidActivityLevel(*body.ActivityLevel) {
		return "activity_level must be one of: sedentary, light, moderate, active, very_active"
	}
	if body.GoalType != nil && !validGoalTypes[*body.GoalType] {
		return "goal_type must be one of: weight_loss, muscle_gain, maintenance, recomposition"
	}
	if body.GoalIntensity != nil && !validIntensities[*body.GoalIntensity] {
		return "goal_intensity must be one of: mild, moderate, aggressive"
	}
	if body.DietStyle != nil && !targets.ValidDietStyle(*body.DietStyle) {
		return "diet_style is not supported"
	}
	if body.MealsPerDay != nil && (*body.MealsPerDay < 1 || *body.MealsPerDay > maxMealsPerDay) {
		return "meals_per_day must be between 1 and 10"
	}
	if body.CustomCalories != nil && *body.CustomCalories <= 0 {
		return "custom_calories must be positive"
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"height_cm", body.HeightCM}, {"weight_kg", body.WeightKG}, {"target_weight_kg", body.TargetWeightKG},
		{"waist_cm", body.WaistCM}, {"hip_cm", body.HipCM}, {"neck_cm", body.NeckCM},
	} {
		if f.v != nil && (*f.v <= 0 || *f.v > 999.9) {
			return f.name + " must be between 0 and 999.9"
		}
	}
	return ""
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Pointer fields in the request body distinguish "not
// provided" from zero. Diet style is stored in its canonical form.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validatePatch(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if body.DietStyle != nil {
		canonical := string(targets.ParseDietStyle(*body.DietStyle))
		body.DietStyle = &canonical
	}

	// Build SET clause from the fields the client sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}
	set := func(column, arg string, v any) {
		setClauses = append(setClauses, column+" = @"+arg)
		args[arg] = v
	}

	if body.Sex != nil {
		set("sex", "sex", *body.Sex)
	}
	if body.DateOfBirth != nil {
		set("date_of_birth", "dateOfBirth", *body.DateOfBirth)
	}
	if body.HeightCM != nil {
		set("height_cm", "heightCM", *body.HeightCM)
	}
	if body.WeightKG != nil {
		set("weight_kg", "weightKG", *body.WeightKG)
	}
	if body.ActivityLevel != nil {
		set("activity_level", "activityLevel", *body.ActivityLevel)
	}
	if body.WaistCM != nil {
		set("waist_cm", "waistCM", *body.WaistCM)
	}
	if body.HipCM != nil {
		set("hip_cm", "hipCM", *body.HipCM)
	}
	if body.NeckCM != nil {
		set("neck_cm", "neckCM", *body.NeckCM)
	}
	if body.GoalType != nil {
		set("goal_type", "goalType", *body.GoalType)
	}
	if body.GoalIntensity != nil {
		set("goal_intensity", "goalIntensity", *body.GoalIntensity)
	}
	if body.TargetWeightKG != nil {
		set("target_weight_kg", "targetWeightKG", *body.TargetWeightKG)
	}
	if body.UseCustomCalories != nil {
		set("use_custom_calories", "useCustomCalories", *body.UseCustomCalories)
	}
	if body.CustomCalories != nil {
		set("custom_calories", "customCalories", *body.CustomCalories)
	}
	if body.DietStyle != nil {
		set("diet_style", "dietStyle", *body.DietStyle)
	}
	if body.MealsPerDay != nil {
		set("meals_per_day", "mealsPerDay", *body.MealsPerDay)
	}
	if body.PlanAutoRegenerate != nil {
		set("plan_auto_regenerate", "planAutoRegenerate", *body.PlanAutoRegenerate)
	}
	if body.SetupComplete != nil {
		set("setup_complete", "setupComplete", *body.SetupComplete)
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	query := "UPDATE profiles SET " +
		strings.Join(setClauses, ", ") +
		", updated_at = NOW() WHERE user_id = @userID RETURNING *"

	p, err := queryOne[profile](h.db, c, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	populateComputed(&p)
	c.JSON(http.StatusOK, p)
}
