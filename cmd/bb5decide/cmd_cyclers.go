package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gmorenz/busybeaver"
)

func newCyclersCmd() *cobra.Command {
	var dbPath, indexPath, outPath string
	var all bool

	cmd := &cobra.Command{
		Use:   "cyclers",
		Short: "Run the simple cycler decider over a set of undecided machines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && indexPath == "" {
				log.Fatal("one of --index or --all is required")
			}
			return runDecider(dbPath, indexPath, outPath, all, busybeaver.DecideCycler)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the machine database file")
	cmd.Flags().StringVar(&indexPath, "index", "", "path to the input index file")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the surviving index file")
	cmd.Flags().BoolVar(&all, "all", false, "decide every machine in the database instead of reading --index")
	cmd.MarkFlagRequired("db")
	cmd.MarkFlagRequired("out")

	return cmd
}
