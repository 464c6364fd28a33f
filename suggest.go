package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"lg/diet-plan-go-api/internal/config"
	"lg/diet-plan-go-api/internal/dietgen"
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/targets"
)

/* ─── OpenAI prompt constants ────────────────────────────────────────── */

const weeklyDietSystemPrompt = `You are a dietitian. Build a seven-day meal plan and return a JSON object with:
- "days": array of exactly 7 objects, Monday first, each with
  - "day" (string, English weekday name)
  - "meals": array of objects with "name" (string), "time" (HH:MM) and "foods"
    - "foods": array of objects with "name" (string), "quantity" (string, include grams e.g. "150g"), "calories" (integer), "protein_g", "carbs_g", "fat_g" (numbers)
  - "tips": array of 2 short strings
Values are totals for the stated quantity. Return only valid JSON, no explanation.`

const weeklyDietUserTemplate = `Diet style: %s
Meals per day: %d
Daily calories: %d kcal
Protein: %d g, carbs: %d g, fat: %d g
Fiber: at least %d g`

const foodEstimateSystemPrompt = `You are a nutrition assistant. Estimate the nutrition of the food for the given quantity and return a JSON object with:
- "item_name" (string, cleaned up title case)
- "calories" (integer, total for the full quantity)
- "protein_g" (number, total for the full quantity)
- "carbs_g" (number, total for the full quantity)
- "fat_g" (number, total for the full quantity)

Only return {"error": "unrecognized"} if the input is not food at all.
Return only valid JSON, no explanation.`

const foodSwapSystemPrompt = `You are a nutrition assistant. Suggest one replacement for the food that honours the user's request and has about the target calories. Return a JSON object with:
- "name" (string)
- "quantity" (string, include grams e.g. "120g")
- "calories" (integer, close to the target)
- "protein_g", "carbs_g", "fat_g" (numbers, totals for the quantity)
Return only valid JSON, no explanation.`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat map[string]any  `json:"response_format"`
}

// aiClient calls an OpenAI-compatible chat completions endpoint.
type aiClient struct {
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
}

func newAIClient(cfg *config.Config) aiClient {
	return aiClient{
		baseURL: strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		apiKey:  cfg.OpenAIAPIKey,
		model:   cfg.OpenAIModel,
		timeout: cfg.AITimeout,
	}
}

var errNoAPIKey = errors.New("OPENAI_API_KEY not set")

// chat sends a chat completions request and returns the raw content string
// from the first choice. Uses raw net/http to avoid pulling in the OpenAI SDK.
func (a aiClient) chat(ctx context.Context, messages []openAIMessage) (string, error) {
	if a.apiKey == "" {
		return "", errNoAPIKey
	}
	model := a.model
	if model == "" {
		model = config.DefaultOpenAIModel
	}
	timeout := a.timeout
	if timeout <= 0 {
		timeout = config.DefaultAITimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqBody := openAIRequest{
		Model:          model,
		Messages:       messages,
		Temperature:    0,
		ResponseFormat: map[string]any{"type": "json_object"},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Parse the response to extract choices[0].message.content
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return result.Choices[0].Message.Content, nil
}

/* ─── Weekly diet ────────────────────────────────────────────────────── */

// weeklyDiet asks the AI for a plan matching nt and falls back to the
// template generator on any failure. It never returns an error.
func (a aiClient) weeklyDiet(ctx context.Context, nt targets.NutritionTargets, style targets.DietStyle, mealsPerDay int) nutrition.WeeklyDiet {
	if mealsPerDay < 1 {
		mealsPerDay = dietgen.DefaultMealsPerDay
	}
	messages := []openAIMessage{
		{Role: "system", Content: weeklyDietSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(weeklyDietUserTemplate,
			style, mealsPerDay, nt.Calories, nt.ProteinG, nt.CarbsG, nt.FatG, nt.FiberG)},
	}

	content, err := a.chat(ctx, messages)
	if err == nil {
		var week nutrition.WeeklyDiet
		week, err = parseWeeklyDiet(content)
		if err == nil {
			week.Style = string(style)
			return week
		}
	}
	log.Printf("[plan] AI weekly diet unavailable, using templates: %v", err)
	return dietgen.Generate(dietgen.Request{Style: style, MealsPerDay: mealsPerDay})
}

// parseWeeklyDiet validates an AI plan. It needs exactly seven days and
// named foods in every meal. Foods without calories are re-estimated from
// the food table and every total is recomputed.
func parseWeeklyDiet(content string) (nutrition.WeeklyDiet, error) {
	var week nutrition.WeeklyDiet
	if err := json.Unmarshal([]byte(content), &week); err != nil {
		return week, fmt.Errorf("parse plan: %w", err)
	}
	if len(week.Days) != len(nutrition.Weekdays) {
		return week, fmt.Errorf("plan has %d days, want %d", len(week.Days), len(nutrition.Weekdays))
	}

	for d := range week.Days {
		day := &week.Days[d]
		day.Day = nutrition.Weekdays[d]
		if len(day.Meals) == 0 {
			return week, fmt.Errorf("%s has no meals", day.Day)
		}
		for m := range day.Meals {
			meal := &day.Meals[m]
			if len(meal.Foods) == 0 {
				return week, fmt.Errorf("%s meal %d has no foods", day.Day, m+1)
			}
			for f := range meal.Foods {
				item := &meal.Foods[f]
				if strings.TrimSpace(item.Name) == "" {
					return week, fmt.Errorf("%s meal %d has an unnamed food", day.Day, m+1)
				}
				if item.Calories <= 0 {
					*item = repairFood(*item)
				}
			}
		}
	}
	week.Source = nutrition.SourceAI
	week.Recompute()
	return week, nil
}

// repairFood replaces missing numbers with a table estimate, keeping the
// name and quantity the AI gave.
func repairFood(item nutrition.FoodItem) nutrition.FoodItem {
	grams, _ := dietgen.ParseGrams(item.Quantity)
	fixed := dietgen.FoodFromText(item.Name, grams)
	if item.Quantity != "" {
		fixed.Quantity = item.Quantity
	}
	return fixed
}

/* ─── Food estimate / substitute ─────────────────────────────────────── */

// aiFoodEstimate is the JSON shape returned by the food estimate prompt.
type aiFoodEstimate struct {
	ItemName string  `json:"item_name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Error    string  `json:"error"`
}

// estimateFood asks the AI for the nutrition of description at grams.
func (a aiClient) estimateFood(ctx context.Context, description string, grams float64) (aiFoodEstimate, error) {
	content, err := a.chat(ctx, []openAIMessage{
		{Role: "system", Content: foodEstimateSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("%s (%gg)", description, grams)},
	})
	if err != nil {
		return aiFoodEstimate{}, err
	}
	var est aiFoodEstimate
	if err := json.Unmarshal([]byte(content), &est); err != nil {
		return est, fmt.Errorf("parse estimate: %w", err)
	}
	if est.Error != "" {
		return est, fmt.Errorf("ai rejected input: %s", est.Error)
	}
	if est.ItemName == "" || est.Calories <= 0 {
		return est, fmt.Errorf("incomplete estimate")
	}
	return est, nil
}

// substituteFood asks the AI for a swap worth targetCalories.
func (a aiClient) substituteFood(ctx context.Context, foodName, request string, targetCalories int) (nutrition.FoodItem, error) {
	content, err := a.chat(ctx, []openAIMessage{
		{Role: "system", Content: foodSwapSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Food: %s\nRequest: %s\nTarget calories: %d", foodName, request, targetCalories)},
	})
	if err != nil {
		return nutrition.FoodItem{}, err
	}
	var item nutrition.FoodItem
	if err := json.Unmarshal([]byte(content), &item); err != nil {
		return item, fmt.Errorf("parse substitute: %w", err)
	}
	if strings.TrimSpace(item.Name) == "" || item.Calories <= 0 {
		return item, fmt.Errorf("incomplete substitute")
	}
	return item, nil
}
