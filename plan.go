package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lg/diet-plan-go-api/internal/export"
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/projection"
	"lg/diet-plan-go-api/internal/targets"
)

var errIncompleteProfile = errors.New("profile is incomplete")

// profileInputs loads the profile and converts it for the engine.
// Returns errIncompleteProfile when a required field is missing.
func (h *Handler) profileInputs(ctx context.Context, userID int) (planInputs, error) {
	p, err := h.loadProfile(ctx, userID)
	if err != nil {
		return planInputs{}, err
	}
	in, ok := planInputsFrom(&p, today())
	if !ok {
		return planInputs{}, errIncompleteProfile
	}
	return in, nil
}

// profileError maps profileInputs errors to responses.
func profileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusNotFound, "profile not found")
	case errors.Is(err, errIncompleteProfile):
		apiError(c, http.StatusUnprocessableEntity, "complete sex, date_of_birth, height_cm, weight_kg and activity_level first")
	default:
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
	}
}

// getPlanProjection projects the authenticated user's weight from today.
// GET /api/plan/projection. The newest weight log entry, when present, is
// the starting weight.
func (h *Handler) getPlanProjection(c *gin.Context) {
	userID := c.GetInt("user_id")

	in, err := h.profileInputs(c, userID)
	if err != nil {
		profileError(c, err)
		return
	}

	latest, err := h.latestWeight(c, userID)
	switch {
	case err == nil:
		in.Body.WeightKg = latest.WeightKG
		in.Goal.CurrentWeightKg = latest.WeightKG
	case !errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusInternalServerError, "failed to fetch weight log")
		return
	}

	cp := computeProfile(in)
	c.JSON(http.StatusOK, projectionResponse{
		CurrentWeightKG: in.Goal.CurrentWeightKg,
		TargetWeightKG:  in.Goal.TargetWeightKg,
		TDEE:            cp.Body.TDEE,
		TargetCalories:  cp.Targets.Calories,
		Projection: projection.Project(cp.Body.TDEE, cp.Targets.Calories,
			in.Goal.CurrentWeightKg, in.Goal.TargetWeightKg, today()),
	})
}

// buildWeeklyPlan generates a week for the inputs, through the AI when
// available and the templates otherwise.
func (h *Handler) buildWeeklyPlan(ctx context.Context, in planInputs) (nutrition.WeeklyDiet, targets.NutritionTargets) {
	cp := computeProfile(in)
	return h.ai.weeklyDiet(ctx, cp.Targets, in.Style, in.MealsPerDay), cp.Targets
}

// savePlan stores week as the plan for the current week.
func (h *Handler) savePlan(ctx context.Context, userID, mealsPerDay, calories int, week nutrition.WeeklyDiet) (dietPlan, error) {
	planJSON, err := json.Marshal(week)
	if err != nil {
		return dietPlan{}, fmt.Errorf("marshal plan: %w", err)
	}
	return queryOne[dietPlan](h.db, ctx,
		`INSERT INTO diet_plans (id, user_id, week_start, style, source, meals_per_day, calories, plan)
		 VALUES (@id, @userID, @weekStart, @style, @source, @mealsPerDay, @calories, @plan::jsonb)
		 RETURNING *`,
		pgx.NamedArgs{
			"id":          uuid.New().String(),
			"userID":      userID,
			"weekStart":   currentMonday().Format("2006-01-02"),
			"style":       week.Style,
			"source":      week.Source,
			"mealsPerDay": mealsPerDay,
			"calories":    calories,
			"plan":        string(planJSON),
		})
}

// createWeeklyPlan generates and stores a new plan for the current week.
// POST /api/plan/weekly. Body fields override the profile's diet_style and
// meals_per_day for this plan only.
func (h *Handler) createWeeklyPlan(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req weeklyDietRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apiError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if msg := validateWeeklyRequest(req); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	in, err := h.profileInputs(c, userID)
	if err != nil {
		profileError(c, err)
		return
	}
	if req.DietStyle != "" {
		in.Style = targets.ParseDietStyle(req.DietStyle)
	}
	if req.MealsPerDay > 0 {
		in.MealsPerDay = req.MealsPerDay
	}

	week, nt := h.buildWeeklyPlan(c.Request.Context(), in)
	plan, err := h.savePlan(c, userID, in.MealsPerDay, nt.Calories, week)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// latestPlan returns the newest stored plan for userID.
func (h *Handler) latestPlan(ctx context.Context, userID int) (dietPlan, error) {
	return queryOne[dietPlan](h.db, ctx,
		`SELECT * FROM diet_plans WHERE user_id = @userID
		 ORDER BY week_start DESC, created_at DESC LIMIT 1`,
		pgx.NamedArgs{"userID": userID})
}

// getWeeklyPlan returns the newest stored plan.
// GET /api/plan/weekly. 404 if none has been generated yet.
func (h *Handler) getWeeklyPlan(c *gin.Context) {
	plan, err := h.latestPlan(c, c.GetInt("user_id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "no plan generated yet")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch plan")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// exportWeeklyPlan streams the newest plan as an XLSX workbook.
// GET /api/plan/weekly/export.
func (h *Handler) exportWeeklyPlan(c *gin.Context) {
	plan, err := h.latestPlan(c, c.GetInt("user_id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "no plan generated yet")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch plan")
		}
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="diet-plan-%s.xlsx"`, plan.WeekStart.Format("2006-01-02")))
	if err := export.Write(c.Writer, plan.Plan); err != nil {
		log.Printf("[plan] export failed for plan %s: %v", plan.ID, err)
		c.Status(http.StatusInternalServerError)
	}
}
