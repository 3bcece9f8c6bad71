package synth

import (
	"fmt"
	"strings"

	"github.com/poiesic/faqit/core"
)

// BuildContext renders matches, in ranked order, as the grounding block of the
// prompt. Each match contributes its question, answer and similarity rounded
// to two decimals.
func BuildContext(matches []core.RankedMatch, messages Messages) string {
	var sb strings.Builder
	sb.WriteString(messages.ContextHeader)
	sb.WriteString("\n\n")

	for i, m := range matches {
		fmt.Fprintf(&sb, messages.EntryFormat, i+1, m.Entry.Question, m.Entry.Answer, m.Similarity)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// BuildPrompt combines the context and the question into the user prompt.
func BuildPrompt(question string, matches []core.RankedMatch, messages Messages) string {
	return fmt.Sprintf(messages.UserPromptFormat, BuildContext(matches, messages), question)
}
