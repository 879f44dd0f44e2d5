package usecase

import (
	"strings"

	"github.com/pantrylens/backend/internal/domain"
)

// Similarity constants. The flat substring score and the early-exit bound in
// findBestMatch are load-bearing: changing either changes which tag wins on
// ambiguous input.
const (
	substringScore        = 0.8
	defaultMatchThreshold = 0.7
)

// Similarity scores two pre-normalized strings in [0,1]. Exact equality wins
// outright; any substring relationship scores a flat 0.8 regardless of the
// length difference; everything else falls through to normalized Levenshtein
// similarity over runes. The substring rule is intentionally asymmetric in
// feel: a one-character substring of a long entry scores the same 0.8 as a
// near-complete overlap.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return substringScore
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	dist := levenshteinDistance(ra, rb)
	return float64(maxLen-dist) / float64(maxLen)
}

// levenshteinDistance is the classic single-character insert/delete/substitute
// edit distance at unit cost, computed with two rows instead of a full matrix.
func levenshteinDistance(r1, r2 []rune) int {
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	m := len(r1)
	n := len(r2)
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// findBestMatch resolves candidates against the vocabulary in candidate
// order. Per candidate: an exact vocabulary hit returns immediately; a
// substring hit is retained at the flat 0.8 when nothing better has been
// seen; only below 0.8 does it pay for full edit-distance scoring. Scanning
// stops entirely the moment any candidate reaches 0.8 — exact and substring
// checks run before the expensive path and candidates come in a fixed order,
// so the result stays deterministic. Returns the empty tag when no candidate
// reaches the threshold.
func findBestMatch(candidates []string, tags []domain.CanonicalTag, threshold float64) domain.CanonicalTag {
	if threshold <= 0 {
		threshold = defaultMatchThreshold
	}

	var best domain.CanonicalTag
	bestScore := 0.0

	for _, cand := range candidates {
		for _, tag := range tags {
			if string(tag) == cand {
				return tag
			}
		}

		if bestScore < substringScore {
			for _, tag := range tags {
				t := string(tag)
				if strings.Contains(t, cand) || strings.Contains(cand, t) {
					best = tag
					bestScore = substringScore
					break
				}
			}
		}

		if bestScore < substringScore {
			for _, tag := range tags {
				if score := Similarity(cand, string(tag)); score > bestScore {
					best = tag
					bestScore = score
					if bestScore >= substringScore {
						break
					}
				}
			}
		}

		if bestScore >= substringScore {
			break
		}
	}

	if bestScore >= threshold {
		return best
	}
	return ""
}
