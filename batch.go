package aegis

import (
	"context"
	"runtime"
	"sync"

	"github.com/go-kit/log"
)

// batchJob is a unit of work for the worker pool.
type batchJob struct {
	index      int
	identifier string
}

// BatchResult is the outcome for one identifier of a batch request.
// Exactly one of Trajectory or Err is set; a failing identifier never
// aborts its siblings.
type BatchResult struct {
	Identifier string
	Elements   OrbitalElementSet
	Trajectory *SynchronizedTrajectoryResult
	Err        error
}

// ComputeMany resolves each identifier through source and computes its
// synchronized trajectory on a bounded worker pool. Results come back in
// input order. workers <= 0 selects one worker per CPU. Cancelling ctx
// stops feeding jobs; in-flight computations finish and cancelled
// identifiers report ctx.Err().
func (eng *TrajectoryEngine) ComputeMany(ctx context.Context, source OrbitalElementSource, identifiers []string, numPoints, workers int) []BatchResult {
	results := make([]BatchResult, len(identifiers))
	if len(identifiers) == 0 {
		return results
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(identifiers) {
		workers = len(identifiers)
	}

	jobs := make(chan batchJob, workers*2)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = eng.computeOne(ctx, source, job.identifier, numPoints)
			}
		}()
	}

	// Feed jobs, backing out on cancellation. Unfed identifiers still get
	// a result so the output stays index-aligned with the input.
	fed := len(identifiers)
feed:
	for i, id := range identifiers {
		select {
		case jobs <- batchJob{index: i, identifier: id}:
		case <-ctx.Done():
			fed = i
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := fed; i < len(identifiers); i++ {
		results[i] = BatchResult{Identifier: identifiers[i], Err: ctx.Err()}
	}
	return results
}

// computeOne runs the fetch → extract → compute pipeline for a single
// identifier.
func (eng *TrajectoryEngine) computeOne(ctx context.Context, source OrbitalElementSource, identifier string, numPoints int) BatchResult {
	res := BatchResult{Identifier: identifier}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	rec, err := source.Fetch(ctx, identifier)
	if err != nil {
		eng.logger.Log("level", "warning", "subsys", "batch", "msg", "element fetch failed", "identifier", identifier, "err", err)
		res.Err = err
		return res
	}
	set, err := ExtractElements(rec, log.With(eng.logger, "identifier", identifier))
	if err != nil {
		res.Err = err
		return res
	}
	res.Elements = set
	res.Trajectory, res.Err = eng.ComputeBoth(set, numPoints)
	return res
}
