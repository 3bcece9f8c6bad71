// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package faqit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/corpus"
	"github.com/poiesic/faqit/embedcache"
	"github.com/poiesic/faqit/reembed"
	"github.com/poiesic/faqit/search"
	"github.com/poiesic/faqit/storage"
	"github.com/poiesic/faqit/synth"
)

// Engine answers questions against one FAQ corpus.
// Once New returns, an Engine is immutable and safe for concurrent use.
type Engine struct {
	corpus      *corpus.Corpus
	entries     []core.FAQEntry
	record      *core.CacheRecord
	regenerated bool

	provider    ai.AIProvider
	store       storage.CacheStore
	cache       *embedcache.Cache
	regen       *reembed.Regenerator
	synthesizer *synth.Synthesizer
	thresholds  search.Thresholds
	topK        int
	messages    synth.Messages
	logger      *slog.Logger

	state atomic.Int32
}

// New loads the corpus at corpusPath and builds an engine over it.
// The engine takes ownership of provider and store; Close releases both.
// A corpus that cannot be loaded fails with an error matching core.ErrCorpus.
func New(ctx context.Context, corpusPath string, provider ai.AIProvider, store storage.CacheStore, opts ...Option) (*Engine, error) {
	e, err := newEngine(provider, store, opts...)
	if err != nil {
		return nil, err
	}

	e.setState(StateLoadingCorpus)
	corp, err := corpus.Load(corpusPath)
	if err != nil {
		e.logger.Error("failed to load corpus", "path", corpusPath, "err", err)
		return nil, err
	}
	if err := e.start(ctx, corp); err != nil {
		return nil, err
	}
	return e, nil
}

// NewWithCorpus builds an engine over an already parsed corpus.
func NewWithCorpus(ctx context.Context, corp *corpus.Corpus, provider ai.AIProvider, store storage.CacheStore, opts ...Option) (*Engine, error) {
	if corp == nil {
		return nil, ErrCorpusRequired
	}
	e, err := newEngine(provider, store, opts...)
	if err != nil {
		return nil, err
	}

	e.setState(StateLoadingCorpus)
	if err := e.start(ctx, corp); err != nil {
		return nil, err
	}
	return e, nil
}

func newEngine(provider ai.AIProvider, store storage.CacheStore, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if store == nil {
		return nil, ErrCacheStoreRequired
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if err := options.thresholds.Validate(); err != nil {
		return nil, err
	}

	regenOpts := []reembed.Option{
		reembed.WithLogger(options.logger),
		reembed.WithProgress(options.progress),
	}
	if options.poolSize > 0 {
		regenOpts = append(regenOpts, reembed.WithPoolSize(options.poolSize))
	}
	regen, err := reembed.New(provider.Embedder(), regenOpts...)
	if err != nil {
		return nil, err
	}

	synthesizer, err := synth.New(provider.Generator(),
		synth.WithMessages(options.messages),
		synth.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	return &Engine{
		provider:    provider,
		store:       store,
		cache:       embedcache.New(store, embedcache.WithLogger(options.logger)),
		regen:       regen,
		synthesizer: synthesizer,
		thresholds:  options.thresholds,
		topK:        options.topK,
		messages:    options.messages,
		logger:      options.logger.With("component", "engine"),
	}, nil
}

// start validates or regenerates the embedding cache for corp.
func (e *Engine) start(ctx context.Context, corp *corpus.Corpus) error {
	e.corpus = corp
	e.entries = corp.Entries()
	e.logger.Info("corpus loaded",
		"path", corp.Path(),
		"entries", corp.Count(),
		"fingerprint", corp.Fingerprint().String()[:12])

	regenerate := func(ctx context.Context, texts []string) ([]core.Vector, error) {
		e.setState(StateRegeneratingCache)
		return e.regen.Run(ctx, texts)
	}

	record, regenerated, err := e.cache.Ensure(ctx, corp, e.provider.ModelIdentity(), regenerate)
	if err != nil {
		return fmt.Errorf("prepare embeddings: %w", err)
	}
	e.record = record
	e.regenerated = regenerated

	e.setState(StateReady)
	e.logger.Info("engine ready",
		"entries", corp.Count(),
		"embedded", record.Available(),
		"regenerated", regenerated)
	return nil
}

func (e *Engine) setState(s State) {
	e.state.Store(int32(s))
}

// State reports the startup phase.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Regenerated reports whether startup had to embed the corpus.
func (e *Engine) Regenerated() bool {
	return e.regenerated
}

// Fingerprint returns the content hash of the loaded corpus.
func (e *Engine) Fingerprint() core.Fingerprint {
	return e.corpus.Fingerprint()
}

// Thresholds returns the confidence thresholds in use.
func (e *Engine) Thresholds() search.Thresholds {
	return e.thresholds
}

// Entries returns a copy of every FAQ entry in corpus order.
func (e *Engine) Entries() []core.FAQEntry {
	return e.corpus.Entries()
}

// EntryByID returns the first entry with the given id.
func (e *Engine) EntryByID(id int64) (core.FAQEntry, bool) {
	return e.corpus.EntryByID(id)
}

// Count returns the number of FAQ entries.
func (e *Engine) Count() int {
	return e.corpus.Count()
}

// FindSimilar ranks the corpus against question and returns up to topK
// matches without applying any threshold. topK <= 0 selects the engine's
// configured top K.
func (e *Engine) FindSimilar(ctx context.Context, question string, topK int) ([]core.RankedMatch, error) {
	return e.FindSimilarWithMonitor(ctx, question, topK, nil)
}

// FindSimilarWithMonitor is FindSimilar with a RankMonitor observing scoring.
func (e *Engine) FindSimilarWithMonitor(ctx context.Context, question string, topK int, monitor search.RankMonitor) ([]core.RankedMatch, error) {
	if topK <= 0 {
		topK = e.topK
	}
	res := reembed.Embed(ctx, e.provider.Embedder(), question)
	if !res.Available() {
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingUnavailable, res.Err)
	}
	return search.RankWithMonitor(res.Vector, e.entries, e.record.Vectors, topK, monitor)
}

// AnswerQuestion answers question from the FAQ. It never fails: embedding
// problems, weak matches and generation errors all produce a polite answer
// with the matching confidence tier.
func (e *Engine) AnswerQuestion(ctx context.Context, question string) core.AnswerResult {
	if strings.TrimSpace(question) == "" {
		return e.lowConfidence(e.messages.CouldNotProcess)
	}

	matches, err := e.FindSimilar(ctx, question, e.topK)
	if err != nil {
		if errors.Is(err, ErrEmbeddingUnavailable) {
			e.logger.Warn("could not embed question", "err", err)
		} else {
			e.logger.Error("ranking failed", "err", err)
		}
		return e.lowConfidence(e.messages.CouldNotProcess)
	}

	if len(matches) == 0 || !e.thresholds.Usable(matches[0].Similarity) {
		top := 0.0
		if len(matches) > 0 {
			top = matches[0].Similarity
		}
		e.logger.Debug("no usable match", "top_similarity", top, "threshold", e.thresholds.Low)
		return e.lowConfidence(e.messages.NotFound)
	}

	top := matches[0].Similarity
	synthesis := e.synthesizer.Synthesize(ctx, question, matches)

	return core.AnswerResult{
		Answer:        synthesis.Text,
		Matches:       matches,
		Confidence:    search.Classify(top, e.thresholds),
		TopSimilarity: top,
	}
}

func (e *Engine) lowConfidence(answer string) core.AnswerResult {
	return core.AnswerResult{
		Answer:     answer,
		Confidence: core.ConfidenceLow,
	}
}

// Close releases the AI provider and the cache store.
func (e *Engine) Close() error {
	var errs []error
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
		errs = append(errs, err)
	}
	if err := e.store.Close(); err != nil {
		e.logger.Error("error closing cache store", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
