package reduce

import (
	"context"
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"algebra/monoid"
)

const defaultMinParallel = 256

type parallelConfig struct {
	ctx         context.Context
	workers     int
	minParallel int
	logger      logr.Logger
}

// ParallelOption configures ParallelReduce.
type ParallelOption func(*parallelConfig)

// WithContext sets the context that cancels the reduction. Defaults to context.Background().
func WithContext(ctx context.Context) ParallelOption {
	return func(o *parallelConfig) {
		o.ctx = ctx
	}
}

// WithWorkers caps the number of chunks folded concurrently. Defaults to GOMAXPROCS.
func WithWorkers(count int) ParallelOption {
	return func(o *parallelConfig) {
		if count < 1 {
			count = 1
		}
		o.workers = count
	}
}

// WithMinParallel sets the input length below which ParallelReduce folds serially.
func WithMinParallel(n int) ParallelOption {
	return func(o *parallelConfig) {
		if n < 0 {
			n = 0
		}
		o.minParallel = n
	}
}

// WithLogger sets the logger used to trace chunk planning and failures.
func WithLogger(logger logr.Logger) ParallelOption {
	return func(o *parallelConfig) {
		o.logger = logger
	}
}

func newParallelConfig(opts []ParallelOption) parallelConfig {
	cfg := parallelConfig{
		ctx:         context.Background(),
		workers:     runtime.GOMAXPROCS(0),
		minParallel: defaultMinParallel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}
	if cfg.logger.GetSink() == nil {
		cfg.logger = logr.Discard()
	}
	cfg.logger = cfg.logger.WithName("reduce")
	return cfg
}

// ParallelReduce splits values into contiguous chunks, folds each chunk on its own goroutine
// and combines the chunk results in chunk order. The result equals Reduce(values) for any
// lawful monoid, commutative or not.
//
// The first error cancels the remaining chunks and is returned. Cancelling the context
// returns the context's error.
func ParallelReduce[M monoid.Monoid[M]](values []M, opts ...ParallelOption) (M, error) {
	cfg := newParallelConfig(opts)
	log := cfg.logger

	// Fast path for already canceled context
	if err := cfg.ctx.Err(); err != nil {
		return identity[M](), err
	}

	if len(values) < cfg.minParallel || cfg.workers == 1 || len(values) < 2 {
		log.V(1).Info("folding serially", "values", len(values), "min-parallel", cfg.minParallel,
			"workers", cfg.workers)
		return foldChunk(cfg.ctx, values)
	}

	numChunks := min(cfg.workers, len(values))
	chunkSize := (len(values) + numChunks - 1) / numChunks
	numChunks = (len(values) + chunkSize - 1) / chunkSize
	log.V(1).Info("folding in parallel", "values", len(values), "chunks", numChunks,
		"chunk-size", chunkSize)

	partials := make([]M, numChunks)
	g, ctx := errgroup.WithContext(cfg.ctx)
	for i := range numChunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(values))
		g.Go(func() error {
			res, err := foldChunk(ctx, values[start:end])
			if err != nil {
				log.V(2).Info("chunk failed", "chunk", i, "start", start, "end", end, "error", err.Error())
				return err
			}
			log.V(2).Info("chunk folded", "chunk", i, "start", start, "end", end)
			partials[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error(err, "parallel reduce failed", "values", len(values))
		return identity[M](), err
	}

	res, err := Fold(partials[0], partials[1:]...)
	if err != nil {
		log.Error(err, "combining chunk results failed", "chunks", numChunks)
		return identity[M](), err
	}
	return res, nil
}

// foldChunk folds values in order, checking ctx between elements.
func foldChunk[M monoid.Monoid[M]](ctx context.Context, values []M) (M, error) {
	if len(values) == 0 {
		return identity[M](), nil
	}
	acc := values[0]
	for _, v := range values[1:] {
		if err := ctx.Err(); err != nil {
			return acc, err
		}
		var err error
		acc, err = acc.Combine(v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
