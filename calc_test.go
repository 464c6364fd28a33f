package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"lg/diet-plan-go-api/internal/nutrition"
)

// setupPublicTest mounts the public routes on a handler without a DB pool.
func setupPublicTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	router := gin.New()
	h.registerPublicRoutes(router)
	return router
}

const maleBodyJSON = `{"weight_kg":80,"height_cm":175,"age":30,"gender":"male","activity_level":"sedentary"}`

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to parse response: %v\n%s", err, w.Body.String())
	}
	return v
}

func TestHealth(t *testing.T) {
	router := setupPublicTest()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestCalcBody(t *testing.T) {
	router := setupPublicTest()
	w := doPost(router, "/api/calc/body", maleBodyJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[bodyResponse](t, w)
	if resp.Body.BMR != 1748 || resp.Body.TDEE != 2098 {
		t.Errorf("bmr/tdee = %d/%d, want 1748/2098", resp.Body.BMR, resp.Body.TDEE)
	}
	if resp.BMI.Value != 26.1 {
		t.Errorf("bmi = %v, want 26.1", resp.BMI.Value)
	}
	if resp.NavyBodyFatPercent != nil {
		t.Errorf("expected no navy estimate without circumferences, got %v", *resp.NavyBodyFatPercent)
	}
}

func TestCalcBody_NavyWithMeasurements(t *testing.T) {
	router := setupPublicTest()
	w := doPost(router, "/api/calc/body",
		`{"weight_kg":80,"height_cm":175,"age":30,"gender":"male","waist_cm":90,"neck_cm":38}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[bodyResponse](t, w)
	if resp.NavyBodyFatPercent == nil {
		t.Fatal("expected a navy estimate")
	}
	if resp.Body.BodyFatMethod != "navy" {
		t.Errorf("body fat method = %q, want navy", resp.Body.BodyFatMethod)
	}
}

func TestCalcBody_Validation(t *testing.T) {
	router := setupPublicTest()
	tests := map[string]string{
		"zero weight":    `{"weight_kg":0,"height_cm":175,"age":30,"gender":"male"}`,
		"huge height":    `{"weight_kg":80,"height_cm":400,"age":30,"gender":"male"}`,
		"no age":         `{"weight_kg":80,"height_cm":175,"gender":"male"}`,
		"unknown gender": `{"weight_kg":80,"height_cm":175,"age":30,"gender":"robot"}`,
		"bad activity":   `{"weight_kg":80,"height_cm":175,"age":30,"gender":"male","activity_level":"couch"}`,
		"not json":       `{`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if w := doPost(router, "/api/calc/body", body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCalcTargets(t *testing.T) {
	router := setupPublicTest()
	w := doPost(router, "/api/calc/targets",
		`{"body":`+maleBodyJSON+`,"goal":{"type":"weight_loss","intensity":"moderate","target_weight_kg":70},"diet_style":"traditional"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[targetsResponse](t, w)
	if resp.TDEE != 2098 || resp.Targets.Calories != 1598 {
		t.Errorf("tdee/calories = %d/%d, want 2098/1598", resp.TDEE, resp.Targets.Calories)
	}
	if resp.Targets.ProteinG != 80 || resp.Targets.CarbsG != 200 || resp.Targets.FatG != 53 {
		t.Errorf("macros = %d/%d/%d", resp.Targets.ProteinG, resp.Targets.CarbsG, resp.Targets.FatG)
	}
}

func TestCalcTargets_Validation(t *testing.T) {
	router := setupPublicTest()
	tests := map[string]string{
		"goal type":       `{"body":` + maleBodyJSON + `,"goal":{"type":"bulk"}}`,
		"intensity":       `{"body":` + maleBodyJSON + `,"goal":{"intensity":"extreme"}}`,
		"style":           `{"body":` + maleBodyJSON + `,"diet_style":"paleo"}`,
		"custom calories": `{"body":` + maleBodyJSON + `,"goal":{"use_custom_calories":true}}`,
		"body":            `{"body":{"weight_kg":80}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if w := doPost(router, "/api/calc/targets", body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCalcProjection(t *testing.T) {
	router := setupPublicTest()
	w := doPost(router, "/api/calc/projection",
		`{"body":`+maleBodyJSON+`,"goal":{"type":"weight_loss","target_weight_kg":70},"start_date":"2026-01-05"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[projectionResponse](t, w)
	if resp.TargetCalories != 1598 || resp.CurrentWeightKG != 80 {
		t.Errorf("unexpected inputs: %+v", resp)
	}
	p := resp.Projection
	if !p.Reachable || p.WeeksToGoal != 22 || len(p.Milestones) != 22 {
		t.Errorf("unexpected projection: weeks %v, %d milestones", p.WeeksToGoal, len(p.Milestones))
	}
	if got := p.CompletionDate.Format("2006-01-02"); got != "2026-06-08" {
		t.Errorf("completion = %s, want 2026-06-08", got)
	}
}

func TestCalcProjection_Maintenance(t *testing.T) {
	router := setupPublicTest()
	w := doPost(router, "/api/calc/projection",
		`{"body":`+maleBodyJSON+`,"goal":{"type":"maintenance","target_weight_kg":70}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[projectionResponse](t, w)
	if resp.Projection.Reachable || len(resp.Projection.Milestones) != 0 {
		t.Errorf("expected unreachable projection, got %+v", resp.Projection)
	}
}

func TestCalcProjection_TargetAboveCurrentOnDeficit(t *testing.T) {
	router := setupPublicTest()
	w := doPost(router, "/api/calc/projection",
		`{"body":`+maleBodyJSON+`,"goal":{"type":"weight_loss","target_weight_kg":90}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	p := decode[projectionResponse](t, w).Projection
	if p.Reachable || len(p.Milestones) != 0 || p.CompletionDate != nil {
		t.Errorf("expected unreachable projection, got %+v", p)
	}
}

func TestCalcProjection_Validation(t *testing.T) {
	router := setupPublicTest()
	tests := map[string]string{
		"no target":  `{"body":` + maleBodyJSON + `,"goal":{"type":"weight_loss"}}`,
		"bad start":  `{"body":` + maleBodyJSON + `,"goal":{"target_weight_kg":70},"start_date":"05/01/2026"}`,
		"bad gender": `{"body":{"weight_kg":80,"height_cm":175,"age":30,"gender":"x"},"goal":{"target_weight_kg":70}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if w := doPost(router, "/api/calc/projection", body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCalcWeeklyDiet(t *testing.T) {
	router := setupPublicTest()
	w := doPost(router, "/api/calc/weekly-diet", `{"diet_style":"keto","meals_per_day":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	week := decode[nutrition.WeeklyDiet](t, w)
	if week.Source != nutrition.SourceFallback || week.Style != "ketogenic" {
		t.Errorf("source/style = %q/%q", week.Source, week.Style)
	}
	if len(week.Days) != 7 || len(week.Days[0].Meals) != 3 {
		t.Fatalf("unexpected shape: %d days", len(week.Days))
	}
	for _, d := range week.Days {
		if d.Totals != nutrition.SumMeals(d.Meals) {
			t.Errorf("%s totals %+v do not match meals", d.Day, d.Totals)
		}
	}
}

func TestCalcWeeklyDiet_Validation(t *testing.T) {
	router := setupPublicTest()
	for _, body := range []string{`{"meals_per_day":11}`, `{"meals_per_day":-1}`, `{"diet_style":"paleo"}`} {
		if w := doPost(router, "/api/calc/weekly-diet", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, w.Code)
		}
	}
}
