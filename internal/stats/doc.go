// Package stats provides the agreement metrics used to score predictions
// against reference values: Pearson and Spearman correlation with two-sided
// p-values, and the harmonic mean used to combine them.
package stats
