package synth

import (
	"fmt"
	"strings"
)

// Messages is the catalog of user-facing and prompt text.
type Messages struct {
	Locale string

	// NotFound is returned when no match clears the low threshold.
	NotFound string
	// CouldNotProcess is returned when the question cannot be embedded.
	CouldNotProcess string
	// ErrorFormat wraps a generation error; it takes one %v verb.
	ErrorFormat string

	ContextHeader string
	// EntryFormat renders one match: index, question, answer, similarity.
	EntryFormat string

	SystemPrompt string
	// UserPromptFormat takes the context and the user's question.
	UserPromptFormat string
}

// English is the default catalog.
var English = Messages{
	Locale:          "en",
	NotFound:        "Sorry, I could not find an answer to this question in the FAQ. Could you rephrase it or ask something more specific?",
	CouldNotProcess: "Sorry, I could not process your question. Please try again.",
	ErrorFormat:     "Sorry, an error occurred while generating the answer: %v",
	ContextHeader:   "Related questions and answers from the FAQ:",
	EntryFormat:     "%d. QUESTION: %s\n   ANSWER: %s\n   (similarity: %.2f)",
	SystemPrompt: "You are a helpful FAQ assistant. Answer user questions in a friendly, " +
		"professional and concise way. Answer only from the FAQ context supplied with " +
		"the question and phrase answers naturally. If nothing in the context relates " +
		"to the question, say so honestly instead of guessing.",
	UserPromptFormat: `%s

USER QUESTION:
%s

TASK:
Using the FAQ information above, answer the user's question in a natural, friendly way.
If the question relates directly to one of the FAQ entries, use that information. If there
is no exact match but the context still helps, use it. Keep the answer short (2-4 sentences).

If none of the information relates to the question, say so honestly.`,
}

// Polish is the catalog of the original deployment.
var Polish = Messages{
	Locale:          "pl",
	NotFound:        "Przepraszam, nie znalazłem odpowiedzi na to pytanie w bazie FAQ. Czy możesz je sformułować inaczej lub zadać bardziej szczegółowe pytanie?",
	CouldNotProcess: "Przepraszam, nie udało się przetworzyć pytania. Spróbuj ponownie.",
	ErrorFormat:     "Przepraszam, wystąpił błąd podczas generowania odpowiedzi: %v",
	ContextHeader:   "Powiązane pytania i odpowiedzi z bazy FAQ:",
	EntryFormat:     "%d. PYTANIE: %s\n   ODPOWIEDŹ: %s\n   (podobieństwo: %.2f)",
	SystemPrompt: "Jesteś pomocnym asystentem FAQ. Odpowiadasz na pytania użytkowników " +
		"w sposób przyjazny, profesjonalny i zwięzły. Odpowiadasz wyłącznie na podstawie " +
		"kontekstu FAQ dołączonego do pytania, formułując odpowiedzi w naturalny sposób. " +
		"Jeśli nic w kontekście nie dotyczy pytania, powiedz o tym szczerze zamiast zgadywać.",
	UserPromptFormat: `%s

PYTANIE UŻYTKOWNIKA:
%s

ZADANIE:
Na podstawie powyższych informacji z FAQ, odpowiedz na pytanie użytkownika w naturalny,
przyjazny sposób. Jeśli pytanie jest bezpośrednio związane z którymś z FAQ, użyj tej
informacji. Jeśli nie ma dokładnego dopasowania, ale możesz pomóc na podstawie
dostępnego kontekstu, zrób to. Odpowiedź powinna być zwięzła (2-4 zdania) i pomocna.

Jeśli żadna z informacji nie jest związana z pytaniem, powiedz o tym szczerze.`,
}

// Catalog returns the messages for locale. An empty locale selects English.
func Catalog(locale string) (Messages, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "en":
		return English, nil
	case "pl":
		return Polish, nil
	default:
		return Messages{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
}

// Failure renders the degraded answer for a generation error.
func (m Messages) Failure(err error) string {
	return fmt.Sprintf(m.ErrorFormat, err)
}
