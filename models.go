package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"lg/diet-plan-go-api/internal/anthro"
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/projection"
	"lg/diet-plan-go-api/internal/targets"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan date columns into
// DateOnly. NULL zeroes the time so *DateOnly fields end up nil.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// profile maps to the profiles table, one row per user. Body and goal
// fields are nullable so a fresh row is valid before setup.
type profile struct {
	UserID int `json:"user_id" db:"user_id"`

	Sex           *string   `json:"sex"            db:"sex"`
	DateOfBirth   *DateOnly `json:"date_of_birth"  db:"date_of_birth"`
	HeightCM      *float64  `json:"height_cm"      db:"height_cm"`
	WeightKG      *float64  `json:"weight_kg"      db:"weight_kg"`
	ActivityLevel *string   `json:"activity_level" db:"activity_level"`
	WaistCM       *float64  `json:"waist_cm"       db:"waist_cm"`
	HipCM         *float64  `json:"hip_cm"         db:"hip_cm"`
	NeckCM        *float64  `json:"neck_cm"        db:"neck_cm"`

	GoalType          string   `json:"goal_type"           db:"goal_type"`
	GoalIntensity     string   `json:"goal_intensity"      db:"goal_intensity"`
	TargetWeightKG    *float64 `json:"target_weight_kg"    db:"target_weight_kg"`
	UseCustomCalories bool     `json:"use_custom_calories" db:"use_custom_calories"`
	CustomCalories    *int     `json:"custom_calories"     db:"custom_calories"`

	DietStyle          string `json:"diet_style"           db:"diet_style"`
	MealsPerDay        int    `json:"meals_per_day"        db:"meals_per_day"`
	PlanAutoRegenerate bool   `json:"plan_auto_regenerate" db:"plan_auto_regenerate"`
	SetupComplete      bool   `json:"setup_complete"       db:"setup_complete"`

	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`

	// Computed server-side from the fields above; never stored.
	Computed *computedProfile `json:"computed,omitempty" db:"-"`
}

// computedProfile is everything derivable from a complete profile.
type computedProfile struct {
	Body          anthro.BodyComposition   `json:"body"`
	BMI           anthro.BMIInfo           `json:"bmi"`
	HealthyWeight anthro.WeightRange       `json:"healthy_weight"`
	IdealWeightKG float64                  `json:"ideal_weight_kg"`
	Targets       targets.NutritionTargets `json:"targets"`
}

// weightEntry maps to weight_log. One entry per user per date.
type weightEntry struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	WeightKG  float64    `json:"weight_kg"  db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// dietPlan maps to diet_plans. Plan is stored as JSONB.
type dietPlan struct {
	ID          uuid.UUID            `json:"id"            db:"id"`
	UserID      int                  `json:"user_id"       db:"user_id"`
	WeekStart   DateOnly             `json:"week_start"    db:"week_start"`
	Style       string               `json:"style"         db:"style"`
	Source      string               `json:"source"        db:"source"`
	MealsPerDay int                  `json:"meals_per_day" db:"meals_per_day"`
	Calories    int                  `json:"calories"      db:"calories"`
	Plan        nutrition.WeeklyDiet `json:"plan"          db:"plan"`
	CreatedAt   *time.Time           `json:"created_at"    db:"created_at"`
}

/* ─── Request / Response types ───────────────────────────────────────── */

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers; only non-nil fields get written to the database.
type patchProfileRequest struct {
	Sex                *string  `json:"sex"`
	DateOfBirth        *string  `json:"date_of_birth"` // YYYY-MM-DD string, stored as date
	HeightCM           *float64 `json:"height_cm"`
	WeightKG           *float64 `json:"weight_kg"`
	ActivityLevel      *string  `json:"activity_level"`
	WaistCM            *float64 `json:"waist_cm"`
	HipCM              *float64 `json:"hip_cm"`
	NeckCM             *float64 `json:"neck_cm"`
	GoalType           *string  `json:"goal_type"`
	GoalIntensity      *string  `json:"goal_intensity"`
	TargetWeightKG     *float64 `json:"target_weight_kg"`
	UseCustomCalories  *bool    `json:"use_custom_calories"`
	CustomCalories     *int     `json:"custom_calories"`
	DietStyle          *string  `json:"diet_style"`
	MealsPerDay        *int     `json:"meals_per_day"`
	PlanAutoRegenerate *bool    `json:"plan_auto_regenerate"`
	SetupComplete      *bool    `json:"setup_complete"`
}

// bodyRequest carries the body measurements shared by the calculator endpoints.
type bodyRequest struct {
	WeightKG      float64  `json:"weight_kg"`
	HeightCM      float64  `json:"height_cm"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
	WaistCM       *float64 `json:"waist_cm"`
	HipCM         *float64 `json:"hip_cm"`
	NeckCM        *float64 `json:"neck_cm"`
}

// goalRequest is the goal part of POST /api/calc/targets and /api/calc/projection.
type goalRequest struct {
	Type              string  `json:"type"`
	Intensity         string  `json:"intensity"`
	CurrentWeightKG   float64 `json:"current_weight_kg"`
	TargetWeightKG    float64 `json:"target_weight_kg"`
	UseCustomCalories bool    `json:"use_custom_calories"`
	CustomCalories    int     `json:"custom_calories"`
}

// targetsRequest is the request body for POST /api/calc/targets and /api/calc/projection.
type targetsRequest struct {
	Body      bodyRequest `json:"body"`
	Goal      goalRequest `json:"goal"`
	DietStyle string      `json:"diet_style"`
	StartDate string      `json:"start_date"` // projection only, YYYY-MM-DD
}

// bodyResponse is returned by POST /api/calc/body.
type bodyResponse struct {
	Body               anthro.BodyComposition `json:"body"`
	BMI                anthro.BMIInfo         `json:"bmi"`
	HealthyWeight      anthro.WeightRange     `json:"healthy_weight"`
	IdealWeightKG      float64                `json:"ideal_weight_kg"`
	NavyBodyFatPercent *float64               `json:"navy_body_fat_percent"`
}

// targetsResponse is returned by POST /api/calc/targets.
type targetsResponse struct {
	BMR     int                      `json:"bmr"`
	TDEE    int                      `json:"tdee"`
	Targets targets.NutritionTargets `json:"targets"`
}

// weeklyDietRequest is the request body for the weekly diet endpoints.
// Zero values fall back to the stored profile (authenticated) or defaults.
type weeklyDietRequest struct {
	DietStyle   string `json:"diet_style"`
	MealsPerDay int    `json:"meals_per_day"`
}

// projectionResponse wraps a projection with the inputs used to build it.
type projectionResponse struct {
	CurrentWeightKG float64                     `json:"current_weight_kg"`
	TargetWeightKG  float64                     `json:"target_weight_kg"`
	TDEE            int                         `json:"tdee"`
	TargetCalories  int                         `json:"target_calories"`
	Projection      projection.WeightProjection `json:"projection"`
}
