// Package projection turns a daily calorie deficit or surplus into an
// expected weight trajectory with weekly milestones.
package projection

import (
	"math"
	"time"
)

// KcalPerKg is the energy density used for body-mass change.
const KcalPerKg = 7700.0

// MaxMilestones bounds the milestone list for near-zero weekly change.
const MaxMilestones = 520

// Milestone is one weekly checkpoint.
type Milestone struct {
	Week             int       `json:"week"`
	Date             time.Time `json:"date"`
	ExpectedWeightKg float64   `json:"expected_weight_kg"`
	PercentComplete  float64   `json:"percent_complete"`
	Celebration      string    `json:"celebration,omitempty"`
}

// WeightProjection is the projected path from current to target weight.
// DailyCalorieDelta is TDEE − target calories, so it is positive for a deficit.
// WeeklyChangeKg is the signed change in body weight per week. When the
// weekly change is zero, or moves weight away from the target, the goal is
// not Reachable: WeeksToGoal is 0, there are no milestones and
// CompletionDate is nil.
type WeightProjection struct {
	DailyCalorieDelta int         `json:"daily_calorie_delta"`
	WeeklyChangeKg    float64     `json:"weekly_change_kg"`
	WeeksToGoal       float64     `json:"weeks_to_goal"`
	Reachable         bool        `json:"reachable"`
	StartDate         time.Time   `json:"start_date"`
	CompletionDate    *time.Time  `json:"completion_date"`
	Milestones        []Milestone `json:"milestones"`
}

var celebrations = []struct {
	percent float64
	text    string
}{
	{25, "A quarter of the way there. Great start!"},
	{50, "Halfway to your goal. Keep it up!"},
	{75, "Three quarters done. The finish line is in sight!"},
	{100, "Goal reached. Congratulations!"},
}

// Project computes the trajectory starting at start.
func Project(tdee, targetCalories int, currentKg, targetKg float64, start time.Time) WeightProjection {
	delta := tdee - targetCalories
	p := WeightProjection{
		DailyCalorieDelta: delta,
		StartDate:         start,
		Milestones:        []Milestone{},
	}

	// weeklyLoss is positive when weight goes down.
	weeklyLoss := float64(delta) * 7 / KcalPerKg
	p.WeeklyChangeKg = math.Round(-weeklyLoss*1000) / 1000
	if delta == 0 {
		return p
	}
	// direction is +1 when the target is below the current weight.
	direction := sign(currentKg - targetKg)
	if direction != 0 && direction != sign(float64(delta)) {
		return p
	}

	p.Reachable = true
	// Multiply before dividing so 10 kg at 500 kcal/day is exactly 22 weeks.
	p.WeeksToGoal = math.Abs(currentKg-targetKg) * KcalPerKg / math.Abs(float64(delta)*7)
	weeks := int(math.Ceil(p.WeeksToGoal - 1e-9))
	completion := start.AddDate(0, 0, 7*weeks)
	p.CompletionDate = &completion

	n := weeks
	if n > MaxMilestones {
		n = MaxMilestones
	}
	prevPct := 0.0
	for week := 1; week <= n; week++ {
		expected := currentKg - weeklyLoss*float64(week)
		if direction > 0 {
			expected = math.Max(expected, targetKg)
		} else {
			expected = math.Min(expected, targetKg)
		}
		pct := math.Min(100, float64(week)/p.WeeksToGoal*100)

		m := Milestone{
			Week:             week,
			Date:             start.AddDate(0, 0, 7*week),
			ExpectedWeightKg: math.Round(expected*10) / 10,
			PercentComplete:  math.Round(pct*10) / 10,
		}
		m.Celebration = celebrationFor(prevPct, pct)
		p.Milestones = append(p.Milestones, m)
		prevPct = pct
	}
	return p
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// celebrationFor returns the text for the highest round threshold crossed
// between prev (exclusive) and cur (inclusive).
func celebrationFor(prev, cur float64) string {
	text := ""
	for _, c := range celebrations {
		if prev < c.percent && cur >= c.percent {
			text = c.text
		}
	}
	return text
}
