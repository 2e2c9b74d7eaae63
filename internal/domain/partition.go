package domain

// span is a half-open index range.
type span struct {
	lo int
	hi int
}

// splitRanges cuts [0, n) into at most parts contiguous, disjoint ranges
// whose sizes differ by at most one.
func splitRanges(n, parts int) []span {
	if n <= 0 {
		return nil
	}

	if parts < 1 {
		parts = 1
	}

	if parts > n {
		parts = n
	}

	out := make([]span, 0, parts)
	size, rem := n/parts, n%parts
	lo := 0

	for p := range parts {
		hi := lo + size
		if p < rem {
			hi++
		}

		out = append(out, span{lo: lo, hi: hi})
		lo = hi
	}

	return out
}
