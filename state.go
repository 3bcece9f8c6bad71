package faqit

import "fmt"

// State is the startup phase of an Engine.
type State int32

const (
	StateUninitialized State = iota
	StateLoadingCorpus
	StateRegeneratingCache
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoadingCorpus:
		return "loading_corpus"
	case StateRegeneratingCache:
		return "regenerating_cache"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
