package openai

import "strings"

// cleanCompletion strips surrounding whitespace and a markdown code fence
// that chat models sometimes wrap plain answers in.
func cleanCompletion(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], " \t") {
		s = s[i+1:] // language tag
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// scrubInput collapses runs of whitespace so that embeddings are not
// sensitive to formatting of the question.
func scrubInput(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
