package synth

import "errors"

var (
	// ErrGeneratorRequired is returned when no generator is supplied.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrUnknownLocale is returned for a locale without a message catalog.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrEmptyCompletion indicates the provider returned no text.
	ErrEmptyCompletion = errors.New("empty completion")
)
