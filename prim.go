package transferenc

var (
	isSpace [256]bool
)

func init() {
	// RFC 7230 grammar admits only SP and HTAB around list elements, but
	// real headers carry stray CR/LF and friends, so all six ASCII space
	// characters are stripped. Non-ASCII bytes are never whitespace.
	for _, c := range " \t\n\v\f\r" {
		isSpace[c] = true
	}
}

func trim(v string) string {
	i := 0
	for i < len(v) && isSpace[v[i]] {
		i++
	}
	j := len(v)
	for j > i && isSpace[v[j-1]] {
		j--
	}
	return v[i:j]
}

// equalASCIIFold reports whether a and b are equal under ASCII case
// folding. Bytes outside A-Z/a-z must match exactly: unlike
// strings.EqualFold, no Unicode folding happens, so e.g. the Kelvin sign
// does not compare equal to 'k'.
func equalASCIIFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
