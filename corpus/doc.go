// Package corpus loads the FAQ knowledge base.
//
// The source is a JSON document of the form
//
//	{"faqs": [{"id": 1, "question": "...", "answer": "..."}, ...]}
//
// Loading is all-or-nothing: an unreadable file, malformed JSON, a missing
// "faqs" key or an entry without question or answer yields an *Error and no
// Corpus. The raw bytes are kept so the embedding cache can fingerprint them.
package corpus
