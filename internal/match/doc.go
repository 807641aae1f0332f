// Package match provides attribute key normalization, Levenshtein distance
// calculation and ranking of known keys for misspelled input.
//
// Key functions:
//   - NormalizeKey: canonical form used for every attribute key lookup
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known keys close to an unrecognized one
package match
