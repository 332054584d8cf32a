package match

// Levenshtein returns the minimum number of single-rune insertions,
// deletions and substitutions that turn a into b. Comparison is
// case-sensitive and works on runes, so multi-byte characters count as
// one edit.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// One dynamic-programming row over the shorter string. After the
	// outer pass for rb[j], row[i] holds the distance between ra[:i]
	// and rb[:j+1]; diag carries the value row[i] had one pass earlier.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, rj := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ri := range ra {
			sub := diag
			if ri != rj {
				sub++
			}

			diag = row[i+1]
			row[i+1] = min(sub, row[i]+1, diag+1)
		}
	}

	return row[len(ra)]
}
