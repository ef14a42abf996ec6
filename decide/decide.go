// Package decide orchestrates running a decider from package busybeaver
// over a set of machine indices pulled from a dbfile.Database, optionally
// fanning the work out across goroutines. Each machine's decision is pure
// over its own record and shares no state with any other machine's, so
// the only synchronization needed is collecting results.
package decide

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gmorenz/busybeaver"
	"github.com/gmorenz/busybeaver/dbfile"
)

// Decider proves, or fails to prove, that a transition table never
// halts. Both busybeaver.DecideCycler and a budget-bound
// busybeaver.DecideTranslatedCyclerBudget satisfy this signature once
// partially applied.
type Decider func(busybeaver.TransitionTable) bool

// Progress is called after each machine finishes, with the number done
// so far and the total being processed. It may be nil.
type Progress func(done, total int)

// Result pairs a machine index with the decider's verdict for it, used
// internally while the parallel runner's goroutines are still settling
// and before the surviving indices are sorted for output.
type Result struct {
	Index  uint32
	Proven bool
}

// Run decides every index in indices against decider, using up to
// workers concurrent goroutines, and returns the indices decider proved
// non-halting, sorted ascending.
//
// workers <= 1 runs strictly sequentially, with no goroutines spawned;
// this is the single-threaded baseline the core deciders are specified
// against. Larger values fan the independent, stateless per-machine work
// out across a bounded pool, gated by a buffered channel the way
// enhanced_analyzer.go in the research corpus this pipeline was modeled
// on gates its own per-item fan-out.
func Run(ctx context.Context, db *dbfile.Database, indices []uint32, decider Decider, workers int, onProgress Progress) ([]uint32, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(indices))
	var done int

	if workers == 1 {
		for i, idx := range indices {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			proven, err := decideOne(db, idx, decider)
			if err != nil {
				return nil, err
			}
			results[i] = Result{Index: idx, Proven: proven}
			done++
			if onProgress != nil {
				onProgress(done, len(indices))
			}
		}
		return survivors(results), nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	gate := make(chan struct{}, workers)
	var mu sync.Mutex

	for i, idx := range indices {
		i, idx := i, idx
		gate <- struct{}{}
		g.Go(func() error {
			defer func() { <-gate }()
			if err := gCtx.Err(); err != nil {
				return err
			}
			proven, err := decideOne(db, idx, decider)
			if err != nil {
				return err
			}
			results[i] = Result{Index: idx, Proven: proven}
			if onProgress != nil {
				mu.Lock()
				done++
				onProgress(done, len(indices))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return survivors(results), nil
}

// RunAll decides every machine in the database (0..Header.UndecidedTotal)
// instead of a caller-supplied index list.
func RunAll(ctx context.Context, db *dbfile.Database, decider Decider, workers int, onProgress Progress) ([]uint32, error) {
	indices := make([]uint32, db.Header.UndecidedTotal)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return Run(ctx, db, indices, decider, workers, onProgress)
}

func decideOne(db *dbfile.Database, idx uint32, decider Decider) (bool, error) {
	table, err := db.ReadMachine(idx)
	if err != nil {
		return false, fmt.Errorf("decide: machine %d: %w", idx, err)
	}
	return decider(table), nil
}

func survivors(results []Result) []uint32 {
	out := make([]uint32, 0, len(results))
	for _, r := range results {
		if r.Proven {
			out = append(out, r.Index)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
