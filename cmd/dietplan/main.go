// Command dietplan runs the metabolic and diet-planning engine from the
// terminal. Nothing is stored; every command works from its flags.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions are persistent flags shared by every subcommand.
type rootOptions struct {
	json bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "dietplan",
		Short:         "dietplan computes body metrics, nutrition targets and weekly meal plans",
		Long:          "dietplan computes BMI, metabolism and body composition, turns a goal into calorie and macro targets, projects weight change and builds a template week of meals.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print results as JSON")

	root.AddCommand(
		newBodyCmd(opts),
		newTargetsCmd(opts),
		newProjectCmd(opts),
		newWeekCmd(opts),
		newFoodCmd(opts),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
