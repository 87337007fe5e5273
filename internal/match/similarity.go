package match

import "github.com/xrash/smetrics"

// Similarity is the normalized Levenshtein similarity of two strings in
// [0, 1]. Two empty strings compare as 1. Inputs are expected to be
// extract.NormalizeName keys, never raw display strings.
func Similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 1)
	return float64(maxLen-dist) / float64(maxLen)
}
