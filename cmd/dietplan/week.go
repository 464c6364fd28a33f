package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lg/diet-plan-go-api/internal/dietgen"
	"lg/diet-plan-go-api/internal/export"
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/targets"
)

func newWeekCmd(opts *rootOptions) *cobra.Command {
	var (
		style string
		meals int
		day   int
		xlsx  string
	)
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Build a template week of meals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !targets.ValidDietStyle(style) {
				return fmt.Errorf("unknown diet style %q", style)
			}
			if day < 0 || day > len(nutrition.Weekdays) {
				return fmt.Errorf("--day must be between 1 and %d", len(nutrition.Weekdays))
			}
			week := dietgen.Generate(dietgen.Request{Style: targets.ParseDietStyle(style), MealsPerDay: meals})

			if xlsx != "" {
				if err := writeWorkbook(xlsx, week); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", xlsx)
			}

			days := week.Days
			if day > 0 {
				days = days[day-1 : day]
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), nutrition.WeeklyDiet{Style: week.Style, Source: week.Source, Days: days})
			}
			for _, d := range days {
				fmt.Fprint(cmd.OutOrStdout(), dietgen.Format(d))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", string(targets.StyleTraditional), "Diet style")
	cmd.Flags().IntVar(&meals, "meals", dietgen.DefaultMealsPerDay, "Meals per day")
	cmd.Flags().IntVar(&day, "day", 0, "Only print this day, 1 is Monday")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "Also write the week to this XLSX file")
	return cmd
}

func writeWorkbook(path string, week nutrition.WeeklyDiet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(f, week); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
