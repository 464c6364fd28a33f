package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lg/diet-plan-go-api/internal/projection"
	"lg/diet-plan-go-api/internal/targets"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	f := &bodyFlags{}
	g := &goalFlags{}
	var start string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project weekly weight milestones toward a target weight",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := f.derive()
			if err != nil {
				return err
			}
			if g.target <= 0 {
				return fmt.Errorf("--target-weight is required")
			}
			goal, err := g.toGoal(body.WeightKg)
			if err != nil {
				return err
			}
			startDate := time.Now().UTC().Truncate(24 * time.Hour)
			if start != "" {
				startDate, err = time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid --start %q, expected YYYY-MM-DD", start)
				}
			}

			cal, _ := targets.CalorieTarget(body.TDEE, goal)
			p := projection.Project(body.TDEE, cal, goal.CurrentWeightKg, goal.TargetWeightKg, startDate)
			if opts.json {
				return printJSON(cmd.OutOrStdout(), p)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Daily delta:\t%d kcal\n", p.DailyCalorieDelta)
			fmt.Fprintf(out, "Weekly change:\t%+.3f kg\n", p.WeeklyChangeKg)
			if !p.Reachable {
				fmt.Fprintln(out, "Target not reachable at this calorie level.")
				return nil
			}
			fmt.Fprintf(out, "Weeks to goal:\t%.1f\n", p.WeeksToGoal)
			fmt.Fprintf(out, "Completion:\t%s\n", p.CompletionDate.Format("2006-01-02"))
			fmt.Fprintln(out, "WEEK\tDATE\tWEIGHT\tDONE%\tNOTE")
			for _, m := range p.Milestones {
				fmt.Fprintf(out, "%d\t%s\t%.1f\t%.1f\t%s\n", m.Week, m.Date.Format("2006-01-02"), m.ExpectedWeightKg, m.PercentComplete, m.Celebration)
			}
			return nil
		},
	}
	f.register(cmd)
	g.register(cmd)
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (default today)")
	return cmd
}
