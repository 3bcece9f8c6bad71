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

package synth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/core"
)

// Synthesizer generates answers grounded in FAQ matches.
type Synthesizer struct {
	generator ai.Generator
	messages  Messages
	logger    *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithMessages sets the message catalog. Default is English.
func WithMessages(m Messages) Option {
	return func(s *Synthesizer) {
		s.messages = m
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// New creates a synthesizer over generator.
func New(generator ai.Generator, opts ...Option) (*Synthesizer, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	s := &Synthesizer{
		generator: generator,
		messages:  English,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "synthesizer")
	return s, nil
}

// Synthesize issues one completion for question grounded in matches.
// Provider failures and empty replies produce a degraded result whose Text is
// the localized apology.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, matches []core.RankedMatch) core.Synthesis {
	prompt := BuildPrompt(question, matches, s.messages)

	reply, err := s.generator.Complete(ctx, s.messages.SystemPrompt, prompt)
	if err == nil {
		reply = strings.TrimSpace(reply)
		if reply == "" {
			err = ErrEmptyCompletion
		}
	}
	if err != nil {
		s.logger.Warn("answer generation failed", "matches", len(matches), "err", err)
		return core.Synthesis{
			Text:     s.messages.Failure(err),
			Degraded: true,
			Err:      err,
		}
	}

	s.logger.Debug("answer generated", "matches", len(matches), "length", len(reply))
	return core.Synthesis{Text: reply}
}
