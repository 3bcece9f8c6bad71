package corpus

import (
	"errors"
	"fmt"

	"github.com/poiesic/faqit/core"
)

var (
	// ErrMissingFAQs indicates the document has no "faqs" key.
	ErrMissingFAQs = errors.New(`missing "faqs" key`)

	// ErrTrailingData indicates content after the JSON document.
	ErrTrailingData = errors.New("extra data after json document")
)

// Error describes why a corpus could not be loaded.
// It matches core.ErrCorpus through errors.Is.
type Error struct {
	Path string // Empty when parsing bytes directly
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corpus: %v", e.Err)
	}
	return fmt.Sprintf("corpus %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports core.ErrCorpus as a match so callers need not know this type.
func (e *Error) Is(target error) bool {
	return target == core.ErrCorpus
}
