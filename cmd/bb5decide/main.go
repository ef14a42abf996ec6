package main

import (
	"log"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	flagWorkers int
	flagQuiet   bool
)

func main() {
	root := &cobra.Command{
		Use:   "bb5decide",
		Short: "Classify BB5 undecided machines as non-halting using geometric-loop deciders",
	}

	root.PersistentFlags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "number of machines to decide concurrently")
	root.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "suppress progress logging")

	root.AddCommand(newCyclersCmd())
	root.AddCommand(newTranslatedCyclersCmd())
	root.AddCommand(newVerifyCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
