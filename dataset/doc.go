// Package dataset provides the labeled point type consumed by the classifier
// together with its external collaborators: delimited-text ingestion,
// train/test splitting, and the square-root k heuristic.
package dataset
