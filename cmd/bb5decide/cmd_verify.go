package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gmorenz/busybeaver/dbfile"
)

// newVerifyCmd cross-checks a produced index file against a precomputed
// reference index file. This is the "correctness cross-check against a
// precomputed reference index" spec.md §1 names as an external
// collaborator: a thin comparison utility, not part of the decider core.
func newVerifyCmd() *cobra.Command {
	var gotPath, referencePath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare a produced index file against a precomputed reference index",
		RunE: func(cmd *cobra.Command, args []string) error {
			got, err := readIndexSet(gotPath)
			if err != nil {
				return err
			}
			reference, err := readIndexSet(referencePath)
			if err != nil {
				return err
			}

			missing := setDifference(reference, got)
			extra := setDifference(got, reference)

			for _, idx := range missing {
				fmt.Printf("missing: %d (in reference, not produced)\n", idx)
			}
			for _, idx := range extra {
				fmt.Printf("extra: %d (produced, not in reference)\n", idx)
			}
			if len(missing) == 0 && len(extra) == 0 {
				fmt.Printf("match: %d indices\n", len(got))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gotPath, "index", "", "path to the produced index file")
	cmd.Flags().StringVar(&referencePath, "reference", "", "path to the reference index file")
	cmd.MarkFlagRequired("index")
	cmd.MarkFlagRequired("reference")

	return cmd
}

func readIndexSet(path string) (map[uint32]struct{}, error) {
	r, err := dbfile.OpenIndex(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	set := make(map[uint32]struct{}, len(all))
	for _, idx := range all {
		set[idx] = struct{}{}
	}
	return set, nil
}

func setDifference(a, b map[uint32]struct{}) []uint32 {
	var out []uint32
	for idx := range a {
		if _, ok := b[idx]; !ok {
			out = append(out, idx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
