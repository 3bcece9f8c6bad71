// Package reembed regenerates the embeddings of a whole corpus.
//
// Each text is embedded by its own task on an ants worker pool. Results are
// written into the slot matching the text's position, so the returned vectors
// are in input order regardless of completion order. A failed embedding
// leaves an empty vector and never aborts the run; only context cancellation
// does.
//
// Progress can be reported to an io.Writer with ProgressTracker.
package reembed
