package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gmorenz/busybeaver/dbfile"
	"github.com/gmorenz/busybeaver/decide"
)

// loadIndices returns the machine indices to decide: every machine in db
// when all is set (indexPath is then ignored), otherwise every index in
// the file at indexPath. The subcommands have already checked that at
// least one of the two was given.
func loadIndices(db *dbfile.Database, indexPath string, all bool) ([]uint32, error) {
	if all {
		indices := make([]uint32, db.Header.UndecidedTotal)
		for i := range indices {
			indices[i] = uint32(i)
		}
		return indices, nil
	}

	r, err := dbfile.OpenIndex(indexPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadAll()
}

// runDecider opens the database and index input, runs decider over the
// requested machines, and writes the survivors to outPath.
func runDecider(dbPath, indexPath, outPath string, all bool, decider decide.Decider) error {
	db, err := dbfile.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	indices, err := loadIndices(db, indexPath, all)
	if err != nil {
		return err
	}

	var progress decide.Progress
	if !flagQuiet {
		progress = func(done, total int) {
			log.Printf("decided %d/%d machines", done, total)
		}
	}

	survivors, err := decide.Run(context.Background(), db, indices, decider, flagWorkers, progress)
	if err != nil {
		return fmt.Errorf("run decider: %w", err)
	}

	w, err := dbfile.CreateIndex(outPath)
	if err != nil {
		return err
	}
	if err := w.WriteAll(survivors); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if !flagQuiet {
		log.Printf("proved %d/%d machines non-halting, wrote %s", len(survivors), len(indices), outPath)
	}
	return nil
}
