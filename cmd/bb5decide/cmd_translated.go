package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gmorenz/busybeaver"
)

func newTranslatedCyclersCmd() *cobra.Command {
	var dbPath, indexPath, outPath string
	var all bool
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "translated-cyclers",
		Short: "Run the translated cycler decider over a set of undecided machines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && indexPath == "" {
				log.Fatal("one of --index or --all is required")
			}
			decider := func(table busybeaver.TransitionTable) bool {
				return busybeaver.DecideTranslatedCyclerBudget(table, maxSteps)
			}
			return runDecider(dbPath, indexPath, outPath, all, decider)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the machine database file")
	cmd.Flags().StringVar(&indexPath, "index", "", "path to the input index file")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the surviving index file")
	cmd.Flags().BoolVar(&all, "all", false, "decide every machine in the database instead of reading --index")
	cmd.Flags().IntVar(&maxSteps, "max-steps", busybeaver.MaxStepsTranslatedCycler, "step budget (1000 reference, 2000 documented retry)")
	cmd.MarkFlagRequired("db")
	cmd.MarkFlagRequired("out")

	return cmd
}
