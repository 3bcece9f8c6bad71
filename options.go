package faqit

import (
	"io"
	"log/slog"

	"github.com/poiesic/faqit/search"
	"github.com/poiesic/faqit/synth"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	thresholds search.Thresholds
	topK       int
	poolSize   int
	messages   synth.Messages
	progress   io.Writer
	logger     *slog.Logger
}

func defaultOptions() *options {
	return &options{
		thresholds: search.DefaultThresholds(),
		topK:       search.DefaultTopK,
		messages:   synth.English,
		logger:     slog.Default(),
	}
}

// WithThresholds sets the confidence thresholds.
// Default is search.DefaultThresholds().
func WithThresholds(t search.Thresholds) Option {
	return func(o *options) {
		o.thresholds = t
	}
}

// WithTopK sets how many matches ground an answer. Default is 3.
func WithTopK(k int) Option {
	return func(o *options) {
		if k < 1 {
			k = search.DefaultTopK
		}
		o.topK = k
	}
}

// WithPoolSize sets the number of concurrent embedding calls during cache
// regeneration. Zero keeps the regenerator default.
func WithPoolSize(size int) Option {
	return func(o *options) {
		o.poolSize = size
	}
}

// WithMessages sets the user-facing message catalog. Default is English.
func WithMessages(m synth.Messages) Option {
	return func(o *options) {
		o.messages = m
	}
}

// WithProgress writes regeneration progress to w.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}
