package script

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner evaluates scripts. The zero value is ready to use: it runs with
// GOMAXPROCS workers and discards log output.
type Runner struct {
	// Workers bounds concurrent step evaluation; 0 means GOMAXPROCS.
	Workers int

	// Logger receives one debug entry per step and a summary. Nil disables logging.
	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

// Run evaluates steps concurrently and returns the results in step order.
// An invalid step aborts the run; numeric exceptions (NaN, ±Inf) are
// ordinary results.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]Result, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyScript
	}

	workers := r.Workers
	if workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}

	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log := r.logger()
	start := time.Now()
	results := make([]Result, len(steps))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range steps {
		i, s := i, s
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := Eval(s)
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}

			results[i] = res

			log.Debug("step evaluated",
				zap.Int("index", i),
				zap.String("op", s.Op),
				zap.Stringer("result", res),
			)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("script aborted", zap.Error(err))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("script finished",
		zap.Int("steps", len(steps)),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results, nil
}
