package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
)

// Result is the outcome of one worker. Err is nil on success.
type Result struct {
	Name string
	Err  error
}

type Workers struct {
	workers     []Worker
	concurrency int
	logger      *logger.Logger
}

// NewWorkers builds a pool that runs at most concurrency workers at once.
// A concurrency below one is treated as one.
func NewWorkers(concurrency int, logger *logger.Logger, workers ...Worker) *Workers {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Workers{workers: workers, concurrency: concurrency, logger: logger}
}

// Add appends workers to the pool.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run runs every worker and returns one [Result] per worker, in the order the
// workers were added. One failing worker never stops the others. Workers that
// have not started when ctx is cancelled report ctx.Err().
func (w *Workers) Run(ctx context.Context) []Result {
	results := make([]Result, len(w.workers))
	sem := make(chan struct{}, w.concurrency)

	var wg sync.WaitGroup
	for i, worker := range w.workers {
		results[i].Name = worker.Name()

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		}

		i, worker := i, worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i].Err = w.runOne(ctx, worker)
		}()
	}
	wg.Wait()

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	w.logger.Debug().
		Str("func", "*Workers.Run").
		Int("total", len(results)).
		Int("failed", failed).
		Msg("workers finished")

	return results
}

func (w *Workers) runOne(ctx context.Context, worker Worker) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanicked, rec)
		}
		if err != nil {
			w.logger.Warn().Err(err).
				Str("func", "*Workers.runOne").
				Str("worker", worker.Name()).
				Msg("worker failed")
		}
	}()

	return worker.Run(ctx)
}

// JoinErrors combines the errors of failed results, each prefixed with the
// worker name. It returns nil when every worker succeeded.
func JoinErrors(results []Result) error {
	var joined error
	for _, result := range results {
		if result.Err != nil {
			joined = errors.Join(joined, fmt.Errorf("%s: %w", result.Name, result.Err))
		}
	}
	return joined
}

// Func adapts a plain function to the [Worker] interface.
type Func struct {
	name string
	fn   func(ctx context.Context) error
}

// NewFunc returns a [Worker] named name that calls fn.
func NewFunc(name string, fn func(ctx context.Context) error) Func {
	return Func{name: name, fn: fn}
}

func (f Func) Name() string { return f.name }

func (f Func) Run(ctx context.Context) error { return f.fn(ctx) }
