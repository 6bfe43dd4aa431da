package pipeline

import (
	"math"
	"time"
)

// JaccardSimilarity returns intersection-over-union of the two token
// lists treated as sets. Either list being empty yields 0.
func JaccardSimilarity(tokensA, tokensB []string) float64 {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(tokensA))
	for _, t := range tokensA {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tokensB))
	for _, t := range tokensB {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// ArticleSimilarity tokenizes title+snippet of both articles and
// returns their Jaccard similarity.
func ArticleSimilarity(a, b Article) float64 {
	return JaccardSimilarity(Tokenize(a.comparisonText()), Tokenize(b.comparisonText()))
}

// HoursDiff returns the absolute distance between two publish times in
// hours. A zero time on either side means the timestamp was missing or
// unparseable; its distance is treated as maximal so the article never
// passes a time-window gate.
func HoursDiff(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.Inf(1)
	}
	return math.Abs(a.Sub(b).Hours())
}
