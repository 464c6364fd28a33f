package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/diet-plan-go-api/internal/dietgen"
	"lg/diet-plan-go-api/internal/food"
	"lg/diet-plan-go-api/internal/nutrition"
)

// foodEstimateRequest is the request body for POST /api/food/estimate.
// Grams defaults to an amount parsed from the description, then 100.
type foodEstimateRequest struct {
	Description string  `json:"description"`
	Grams       float64 `json:"grams"`
}

// foodEstimateResponse is the nutrition of one food at a given weight.
// Matched is false when the fallback had to use the generic estimate.
type foodEstimateResponse struct {
	ItemName string  `json:"item_name"`
	Grams    float64 `json:"grams"`
	nutrition.NutritionInfo
	Source  string `json:"source"`
	Matched bool   `json:"matched"`
}

// foodSubstituteRequest is the request body for POST /api/food/substitute.
type foodSubstituteRequest struct {
	FoodName       string `json:"food_name"`
	Request        string `json:"request"`
	TargetCalories int    `json:"target_calories"`
}

type foodSubstituteResponse struct {
	Substitute   nutrition.FoodItem `json:"substitute"`
	Alternatives []string           `json:"alternatives"`
	Source       string             `json:"source"`
}

// estimateFood handles POST /api/food/estimate. The AI estimate is used
// when it parses; otherwise the food table answers.
func (h *Handler) estimateFood(c *gin.Context) {
	var req foodEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		apiError(c, http.StatusBadRequest, "description is required")
		return
	}
	if req.Grams < 0 {
		apiError(c, http.StatusBadRequest, "grams must not be negative")
		return
	}
	if req.Grams == 0 {
		req.Grams = 100
		if g, ok := dietgen.ParseGrams(req.Description); ok {
			req.Grams = g
		}
	}

	est, err := h.ai.estimateFood(c.Request.Context(), req.Description, req.Grams)
	if err == nil {
		c.JSON(http.StatusOK, foodEstimateResponse{
			ItemName: est.ItemName,
			Grams:    req.Grams,
			NutritionInfo: nutrition.NutritionInfo{
				Calories: est.Calories,
				ProteinG: nutrition.Round1(est.ProteinG),
				CarbsG:   nutrition.Round1(est.CarbsG),
				FatG:     nutrition.Round1(est.FatG),
			},
			Source:  nutrition.SourceAI,
			Matched: true,
		})
		return
	}
	log.Printf("[food] AI estimate unavailable, using food table: %v", err)

	rec, matched := food.Lookup(req.Description)
	name := rec.Name
	if !matched {
		name = req.Description
	}
	c.JSON(http.StatusOK, foodEstimateResponse{
		ItemName:      name,
		Grams:         req.Grams,
		NutritionInfo: food.ScaleToGrams(rec.Per100g, req.Grams),
		Source:        nutrition.SourceFallback,
		Matched:       matched,
	})
}

// substituteFood handles POST /api/food/substitute. Category alternatives
// are always included alongside the suggested swap.
func (h *Handler) substituteFood(c *gin.Context) {
	var req foodSubstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.FoodName) == "" {
		apiError(c, http.StatusBadRequest, "food_name is required")
		return
	}
	if req.TargetCalories < 0 {
		apiError(c, http.StatusBadRequest, "target_calories must not be negative")
		return
	}

	resp := foodSubstituteResponse{Alternatives: food.FindCategorySubstitutes(req.FoodName)}

	item, err := h.ai.substituteFood(c.Request.Context(), req.FoodName, req.Request, req.TargetCalories)
	if err == nil {
		resp.Substitute = item
		resp.Source = nutrition.SourceAI
		c.JSON(http.StatusOK, resp)
		return
	}
	log.Printf("[food] AI substitute unavailable, using food table: %v", err)

	resp.Substitute = food.SuggestSubstitution(req.FoodName, req.Request, req.TargetCalories)
	resp.Source = nutrition.SourceFallback
	c.JSON(http.StatusOK, resp)
}
