package util

import (
	"github.com/agext/levenshtein"
)

// DefaultSuggestionThreshold is the largest edit distance still worth suggesting
const DefaultSuggestionThreshold = 2

// Suggest returns the candidate closest to input when its Levenshtein distance
// is within threshold. Ties go to the earlier candidate; exact matches are
// never suggested.
func Suggest(input string, candidates []string, threshold int) (string, bool) {
	best, bestDistance := "", threshold+1
	for _, candidate := range candidates {
		distance := levenshtein.Distance(input, candidate, nil)
		if distance > 0 && distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	return best, best != ""
}
