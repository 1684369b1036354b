// Package textutil provides the string normalization and similarity
// primitives used when comparing bibliographic titles.
//
// NormalizeTitle produces the canonical comparison form of a title:
// case folded, stripped of sentence punctuation, whitespace collapsed.
// Ratio measures how similar two normalized titles are using the classic
// longest-matching-blocks sequence ratio.
//
// Both functions are pure; callers are expected to normalize before
// scoring so that formatting drift between sources does not dominate
// the similarity signal.
package textutil
