package match

// Closest returns the candidate with the smallest edit distance from name,
// provided that distance is at most maxDist. Ties keep the earliest candidate.
func Closest(name string, candidates []string, maxDist int) (string, bool) {
	best, bestDist := "", maxDist+1

	for _, c := range candidates {
		if d := Levenshtein(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= maxDist
}
