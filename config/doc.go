// Package config loads faqit runtime configuration.
//
// Values are layered: built-in defaults for the selected deployment profile,
// then an optional YAML file, then environment variables (optionally read
// from a .env file first). The result is validated before use.
//
// Two profiles exist. "openai" talks to the public OpenAI API; "azure" talks to
// an Azure OpenAI resource and uses a stricter low-confidence threshold.
package config
