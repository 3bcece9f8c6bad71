package reembed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/core"
)

// Regenerator embeds every text of a corpus concurrently.
type Regenerator struct {
	embedder ai.Embedder
	poolSize int
	progress io.Writer
	logger   *slog.Logger
}

// Option configures a Regenerator.
type Option func(*Regenerator)

// WithPoolSize sets the number of concurrent embedding calls.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Regenerator) {
		if size < 1 {
			size = 1
		}
		r.poolSize = size
	}
}

// WithProgress reports progress lines to w. Default: no output.
func WithProgress(w io.Writer) Option {
	return func(r *Regenerator) {
		r.progress = w
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Regenerator) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// New creates a regenerator over embedder.
func New(embedder ai.Embedder, opts ...Option) (*Regenerator, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	r := &Regenerator{
		embedder: embedder,
		poolSize: poolSize,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "regenerator")
	return r, nil
}

// Embed adapts one embedder call into an EmbeddingResult. Errors and empty
// replies both yield an unavailable result.
func Embed(ctx context.Context, embedder ai.Embedder, text string) core.EmbeddingResult {
	vec, err := embedder.EmbedText(ctx, text)
	if err != nil {
		return core.EmbeddingResult{Err: err}
	}
	if len(vec) == 0 {
		return core.EmbeddingResult{Err: ai.ErrEmptyEmbedding}
	}
	return core.EmbeddingResult{Vector: vec}
}

// Run embeds texts and returns one vector per text in input order.
// Entries whose embedding fails are left empty. Only context cancellation
// makes Run fail.
func (r *Regenerator) Run(ctx context.Context, texts []string) ([]core.Vector, error) {
	vectors := make([]core.Vector, len(texts))
	if len(texts) == 0 {
		return vectors, nil
	}

	pool, err := ants.NewPool(r.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	r.logger.Info("generating embeddings", "entries", len(texts), "workers", r.poolSize)
	tracker := NewProgressTracker(r.progress, len(texts), defaultInterval(len(texts)))
	tracker.Start()

	var wg sync.WaitGroup
	for i, text := range texts {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			res := Embed(ctx, r.embedder, text)
			if !res.Available() {
				r.logger.Warn("failed to generate embedding", "entry", i, "err", res.Err)
			}
			// Each task owns exactly one slot
			vectors[i] = res.Vector
			tracker.Record(res.Available())
		})
		if err != nil {
			wg.Done()
			r.logger.Error("failed to submit embedding task", "entry", i, "err", err)
			tracker.Record(false)
		}
	}
	wg.Wait()
	tracker.Finish()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("regeneration interrupted: %w", err)
	}

	done, failed := tracker.Counts()
	r.logger.Info("generated embeddings",
		"entries", done,
		"failed", failed,
		"elapsed", tracker.Elapsed().Round(time.Millisecond))
	return vectors, nil
}
