package generator

import (
	"context"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/errors"
)

// Generate runs every backend over b. Results are returned in backend order
// and only when all runs succeeded; otherwise the error holds the
// diagnostics of every failed backend.
func Generate(ctx context.Context, b *board.Board, backends ...backend.Backend) ([]*backend.Result, error) {
	if len(backends) == 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindConfiguration).
			Detail("no backend selected").
			Build()
	}

	results := make([]*backend.Result, len(backends))
	errs := make([]error, len(backends))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, be := range backends {
		i, be := i, be
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := Logger().With(zap.String("backend", be.Name()))
			log.Debug("backend started")
			results[i], errs[i] = backend.Run(be, b)
			if errs[i] != nil {
				log.Debug("backend failed", zap.Error(errs[i]))
			} else {
				log.Debug("backend finished")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
