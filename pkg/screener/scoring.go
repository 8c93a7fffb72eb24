package screener

// band maps a closed score range to a severity label and the canonical
// clinical-significance text attached to results in that range.
type band struct {
	lo, hi       int
	severity     string
	significance string
}

// bandFor returns the band containing score. Bands are contiguous and
// exhaustive for every instrument, so the fallback is never reached for a
// validated vector.
func bandFor(bands []band, score int) band {
	for _, b := range bands {
		if score >= b.lo && score <= b.hi {
			return b
		}
	}
	return bands[len(bands)-1]
}

// sum totals a response vector.
func sum(items []int) int {
	t := 0
	for _, v := range items {
		t += v
	}
	return t
}

// reverseItems returns a copy of items with the listed 1-based positions
// reversed against the given maximum: v' = max - v. Applying it twice with
// the same arguments is the identity.
func reverseItems(items []int, positions []int, max int) []int {
	out := append([]int(nil), items...)
	for _, p := range positions {
		out[p-1] = max - out[p-1]
	}
	return out
}

// subscaleSum totals the 1-based positions of items.
func subscaleSum(items []int, positions []int) int {
	t := 0
	for _, p := range positions {
		t += items[p-1]
	}
	return t
}

// countEqual counts items equal to v among the 1-based positions.
func countEqual(items []int, positions []int, v int) int {
	n := 0
	for _, p := range positions {
		if items[p-1] == v {
			n++
		}
	}
	return n
}
