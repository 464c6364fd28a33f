package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lg/diet-plan-go-api/internal/anthro"
	"lg/diet-plan-go-api/internal/targets"
)

// bodyFlags are the measurements shared by body, targets and project.
type bodyFlags struct {
	weight   float64
	height   float64
	age      int
	gender   string
	activity string
	waist    float64
	hip      float64
	neck     float64
}

func (f *bodyFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "Body weight in kg")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Height in cm")
	cmd.Flags().IntVar(&f.age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&f.gender, "gender", "", "male, female or other")
	cmd.Flags().StringVar(&f.activity, "activity", string(anthro.ActivitySedentary), "sedentary, light, moderate, active or very_active")
	cmd.Flags().Float64Var(&f.waist, "waist", 0, "Waist circumference in cm")
	cmd.Flags().Float64Var(&f.hip, "hip", 0, "Hip circumference in cm")
	cmd.Flags().Float64Var(&f.neck, "neck", 0, "Neck circumference in cm")
	cmd.MarkFlagRequired("weight")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("gender")
}

// derive validates the flags and runs the body calculations.
func (f *bodyFlags) derive() (anthro.BodyComposition, error) {
	switch {
	case f.weight <= 0:
		return anthro.BodyComposition{}, fmt.Errorf("--weight must be positive")
	case f.height <= 0:
		return anthro.BodyComposition{}, fmt.Errorf("--height must be positive")
	case f.age <= 0:
		return anthro.BodyComposition{}, fmt.Errorf("--age must be positive")
	case !anthro.ValidActivityLevel(f.activity):
		return anthro.BodyComposition{}, fmt.Errorf("unknown activity level %q", f.activity)
	}
	switch strings.ToLower(f.gender) {
	case "male", "female", "other":
	default:
		return anthro.BodyComposition{}, fmt.Errorf("unknown gender %q", f.gender)
	}
	return anthro.Derive(anthro.BodyComposition{
		WeightKg: f.weight,
		HeightCm: f.height,
		Age:      f.age,
		Gender:   anthro.ParseGender(f.gender),
		WaistCm:  f.waist,
		HipCm:    f.hip,
		NeckCm:   f.neck,
	}, anthro.ActivityLevel(f.activity)), nil
}

type bodyReport struct {
	Body          anthro.BodyComposition `json:"body"`
	BMI           anthro.BMIInfo         `json:"bmi"`
	HealthyWeight anthro.WeightRange     `json:"healthy_weight"`
	IdealWeightKg float64                `json:"ideal_weight_kg"`
}

func newBodyCmd(opts *rootOptions) *cobra.Command {
	f := &bodyFlags{}
	cmd := &cobra.Command{
		Use:   "body",
		Short: "Show BMI, metabolism and body composition",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := f.derive()
			if err != nil {
				return err
			}
			r := bodyReport{
				Body:          body,
				BMI:           anthro.GetBMIInfo(body.BMI, body.Age),
				HealthyWeight: anthro.CalculateHealthyWeightRange(body.HeightCm),
				IdealWeightKg: anthro.CalculateIdealWeightDevine(body.HeightCm, body.Gender),
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), r)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMI:\t%.1f (%s, risk %s)\n", r.BMI.Value, r.BMI.Classification, r.BMI.Risk)
			fmt.Fprintf(out, "BMR:\t%d kcal\n", body.BMR)
			fmt.Fprintf(out, "TDEE:\t%d kcal\n", body.TDEE)
			fmt.Fprintf(out, "Body fat:\t%.1f%% (%s)\n", body.BodyFatPercent, body.BodyFatMethod)
			fmt.Fprintf(out, "Fat / lean mass:\t%.1f / %.1f kg\n", body.FatMassKg, body.LeanMassKg)
			if body.WaistHipRatio > 0 {
				fmt.Fprintf(out, "Waist-hip ratio:\t%.2f\n", body.WaistHipRatio)
			}
			fmt.Fprintf(out, "Healthy weight:\t%.1f-%.1f kg\n", r.HealthyWeight.Min, r.HealthyWeight.Max)
			fmt.Fprintf(out, "Ideal weight:\t%.1f kg\n", r.IdealWeightKg)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

// goalFlags describe the diet goal for targets and project.
type goalFlags struct {
	goal      string
	intensity string
	target    float64
	calories  int
	style     string
}

func (g *goalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.goal, "goal", string(targets.GoalWeightLoss), "weight_loss, muscle_gain, maintenance or recomposition")
	cmd.Flags().StringVar(&g.intensity, "intensity", string(targets.IntensityModerate), "mild, moderate or aggressive")
	cmd.Flags().Float64Var(&g.target, "target-weight", 0, "Target weight in kg")
	cmd.Flags().IntVar(&g.calories, "calories", 0, "Use this daily calorie target instead of the computed one")
	cmd.Flags().StringVar(&g.style, "style", string(targets.StyleTraditional), "Diet style, e.g. traditional, low_carb, keto, mediterranean")
}

func (g *goalFlags) toGoal(currentKg float64) (targets.Goal, error) {
	if !targets.ValidDietStyle(g.style) {
		return targets.Goal{}, fmt.Errorf("unknown diet style %q", g.style)
	}
	if g.calories < 0 {
		return targets.Goal{}, fmt.Errorf("--calories must be positive")
	}
	target := g.target
	if target <= 0 {
		target = currentKg
	}
	return targets.Goal{
		Type:              targets.ParseGoalType(g.goal),
		Intensity:         targets.ParseIntensity(g.intensity),
		CurrentWeightKg:   currentKg,
		TargetWeightKg:    target,
		UseCustomCalories: g.calories > 0,
		CustomCalories:    g.calories,
	}, nil
}

func newTargetsCmd(opts *rootOptions) *cobra.Command {
	f := &bodyFlags{}
	g := &goalFlags{}
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Show daily calorie, macro, fiber and water targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := f.derive()
			if err != nil {
				return err
			}
			goal, err := g.toGoal(body.WeightKg)
			if err != nil {
				return err
			}
			nt := targets.Calculate(body.TDEE, body.WeightKg, body.Gender, goal, targets.ParseDietStyle(g.style))
			if opts.json {
				return printJSON(cmd.OutOrStdout(), nt)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TDEE:\t%d kcal\n", body.TDEE)
			fmt.Fprintf(out, "Calories:\t%d kcal (%d-%d)\n", nt.Calories, nt.CalorieRange.Min, nt.CalorieRange.Max)
			fmt.Fprintf(out, "Style:\t%s\n", nt.Style)
			fmt.Fprintf(out, "Protein:\t%d g (%d%%)\n", nt.ProteinG, nt.ProteinPercent)
			fmt.Fprintf(out, "Carbs:\t%d g (%d%%)\n", nt.CarbsG, nt.CarbsPercent)
			fmt.Fprintf(out, "Fat:\t%d g (%d%%)\n", nt.FatG, nt.FatPercent)
			fmt.Fprintf(out, "Fiber:\t%d g\n", nt.FiberG)
			fmt.Fprintf(out, "Water:\t%.1f L\n", nt.WaterL)
			for _, w := range nt.Warnings {
				fmt.Fprintf(out, "WARNING (%s):\t%s\n", w.Severity, w.Message)
			}
			return nil
		},
	}
	f.register(cmd)
	g.register(cmd)
	return cmd
}
