package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lg/diet-plan-go-api/internal/food"
	"lg/diet-plan-go-api/internal/nutrition"
)

func newFoodCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Look up foods and find substitutes",
	}
	cmd.AddCommand(newFoodLookupCmd(opts), newFoodSwapCmd(opts), newFoodAlternativesCmd(opts))
	return cmd
}

type lookupResult struct {
	Query   string      `json:"query"`
	Matched bool        `json:"matched"`
	Grams   float64     `json:"grams"`
	Record  food.Record `json:"record"`
	nutrition.NutritionInfo
}

func newFoodLookupCmd(opts *rootOptions) *cobra.Command {
	var grams float64
	cmd := &cobra.Command{
		Use:   "lookup <food>",
		Short: "Show nutrition for a food from the built-in table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if grams <= 0 {
				return fmt.Errorf("--grams must be positive")
			}
			name := strings.Join(args, " ")
			rec, ok := food.Lookup(name)
			info := food.ScaleToGrams(rec.Per100g, grams)
			if opts.json {
				return printJSON(cmd.OutOrStdout(), lookupResult{Query: name, Matched: ok, Grams: grams, Record: rec, NutritionInfo: info})
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintf(out, "No match for %q, using generic estimate.\n", name)
			}
			fmt.Fprintf(out, "%s, %gg: %d kcal, P %.1fg, C %.1fg, F %.1fg\n",
				rec.Name, grams, info.Calories, info.ProteinG, info.CarbsG, info.FatG)
			return nil
		},
	}
	cmd.Flags().Float64Var(&grams, "grams", 100, "Amount in grams")
	return cmd
}

func newFoodSwapCmd(opts *rootOptions) *cobra.Command {
	var (
		request  string
		calories int
	)
	cmd := &cobra.Command{
		Use:   "swap <food>",
		Short: "Suggest a substitute sized to a calorie target",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := food.SuggestSubstitution(strings.Join(args, " "), request, calories)
			if opts.json {
				return printJSON(cmd.OutOrStdout(), item)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s, %s: %d kcal, P %.1fg, C %.1fg, F %.1fg\n",
				item.Name, item.Quantity, item.Calories, item.ProteinG, item.CarbsG, item.FatG)
			if len(item.Alternatives) > 0 {
				fmt.Fprintf(out, "Also consider: %s\n", strings.Join(item.Alternatives, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&request, "request", "", "What to swap to, e.g. \"fish\" or \"something vegetarian\"")
	cmd.Flags().IntVar(&calories, "calories", 0, "Calorie target (default: 100 g of the original food)")
	return cmd
}

func newFoodAlternativesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alternatives <food>",
		Short: "List same-category alternatives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alts := food.FindCategorySubstitutes(strings.Join(args, " "))
			if opts.json {
				return printJSON(cmd.OutOrStdout(), alts)
			}
			for _, a := range alts {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}
}
