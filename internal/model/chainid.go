package model

// ChainLabel maps a zero-based rank to a spreadsheet column label:
// 0 -> A, 25 -> Z, 26 -> AA, 701 -> ZZ, 702 -> AAA.
func ChainLabel(rank int) string {
	if rank < 0 {
		return ""
	}

	var buf []byte

	for n := rank + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}
