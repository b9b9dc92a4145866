package typo

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions, or
// substitutions required to transform one into the other. The comparison
// is rune-aware and case-sensitive; callers wanting case-insensitive
// distances fold both inputs first.
//
// Distance(a, a) == 0, Distance(a, b) == Distance(b, a), and the triangle
// inequality Distance(a, c) <= Distance(a, b) + Distance(b, c) all hold.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Standard DP with a single rolling row to keep allocations minimal.
	// row[j] holds distance(ra[:i], rb[:j]) for the previous i.
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= la; i++ {
		prev := i
		for j := 1; j <= lb; j++ {
			cost := row[j-1]
			if ra[i-1] != rb[j-1] {
				cost++ // substitute
				if row[j]+1 < cost {
					cost = row[j] + 1 // delete
				}
				if prev+1 < cost {
					cost = prev + 1 // insert
				}
			}
			row[j-1] = prev
			prev = cost
		}
		row[lb] = prev
	}

	return row[lb]
}
