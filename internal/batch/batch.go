// Package batch runs one operation across many container files. Files are
// independent units: one file's failure is recorded in its outcome and
// never aborts the rest of the run.
package batch

import (
	"context"
	"runtime"
	"sync"
)

// Func processes a single file and returns any per-file warnings.
type Func func(ctx context.Context, path string) ([]string, error)

// Outcome is the result of processing one file.
type Outcome struct {
	Path     string
	Warnings []string
	Err      error
}

// Result aggregates a whole run. Outcomes keep the input file order
// regardless of scheduling.
type Result struct {
	Outcomes  []Outcome
	Succeeded int
	Failed    int
}

// Runner executes per-file operations on a bounded worker pool. Workers
// default to the CPU count; 1 runs the batch sequentially. Per-file
// outcomes are identical either way.
type Runner struct {
	Workers int
}

// Run processes every file and always returns a complete per-file outcome
// slice. Cancelling the context stops dispatch between files; files already
// being processed run to completion and files never dispatched carry the
// context error as their outcome.
func (r Runner) Run(ctx context.Context, files []string, fn Func) Result {
	workers := r.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	outcomes := make([]Outcome, len(files))

	indexCh := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexCh {
				warnings, err := fn(ctx, files[idx])
				outcomes[idx] = Outcome{Path: files[idx], Warnings: warnings, Err: err}
			}
		}()
	}

	dispatched := len(files)
dispatch:
	for i := range files {
		select {
		case <-ctx.Done():
			dispatched = i
			break dispatch
		case indexCh <- i:
			// Re-check after every hand-off so a cancellation raised while a
			// worker was busy stops dispatch at the next file.
			if ctx.Err() != nil {
				dispatched = i + 1
				break dispatch
			}
		}
	}
	close(indexCh)
	wg.Wait()

	for i := dispatched; i < len(files); i++ {
		outcomes[i] = Outcome{Path: files[i], Err: ctx.Err()}
	}

	result := Result{Outcomes: outcomes}
	for i := range outcomes {
		if outcomes[i].Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}
	return result
}
