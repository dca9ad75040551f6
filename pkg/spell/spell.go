// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"github.com/agnivade/levenshtein"
)

// MaxDistance is the largest edit distance at which a candidate is still suggested.
const MaxDistance = 2

// Suggest returns the candidate closest to word, provided it is within
// MaxDistance edits and closer than rewriting word entirely.
// Ties go to the candidate that appears first.
func Suggest(word string, candidates []string) (string, bool) {
	best := ""
	bestDist := -1

	for _, candidate := range candidates {
		if candidate == word {
			continue
		}
		dist := levenshtein.ComputeDistance(word, candidate)
		if dist > MaxDistance || dist >= len([]rune(word)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}

	return best, bestDist >= 0
}
