// Package synth turns ranked FAQ matches into a natural-language answer.
//
// A Synthesizer builds a grounding context from the matches, issues a single
// completion through an ai.Generator and degrades to a localized apology when
// the provider fails or returns nothing. Synthesis never returns an error.
//
// User-facing text lives in a Messages catalog. Two catalogs ship with the
// package: English and Polish.
package synth
