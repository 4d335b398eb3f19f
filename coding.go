package transferenc

// A StdCoding is one of the four transfer codings registered with IANA.
// The zero value means the coding is not one of them.
type StdCoding int

const (
	// Chunked is the "chunked" coding (RFC 7230 Section 4.1).
	Chunked StdCoding = iota + 1
	// Compress is the UNIX "compress" data format (RFC 7230 Section 4.2.1).
	Compress
	// Deflate is the zlib "deflate" data format (RFC 7230 Section 4.2.2).
	Deflate
	// Gzip is the "gzip" data format (RFC 7230 Section 4.2.3).
	Gzip
)

// String returns the registered name of the coding, or "" for the zero value.
func (c StdCoding) String() string {
	switch c {
	case Chunked:
		return "chunked"
	case Compress:
		return "compress"
	case Deflate:
		return "deflate"
	case Gzip:
		return "gzip"
	}
	return ""
}

// MatchStd matches tok against the four standard coding names,
// case-insensitively. Coding names are case-insensitive per RFC 7230
// Section 4, but the folding is ASCII-only: tok is not trimmed, and
// non-ASCII bytes never match.
func MatchStd(tok string) (StdCoding, bool) {
	switch {
	case equalASCIIFold(tok, "chunked"):
		return Chunked, true
	case equalASCIIFold(tok, "compress"):
		return Compress, true
	case equalASCIIFold(tok, "deflate"):
		return Deflate, true
	case equalASCIIFold(tok, "gzip"):
		return Gzip, true
	}
	return 0, false
}

// A Coding is one element of a Transfer-Encoding header value: either a
// standard coding, in which case Std is set and Name is empty, or any
// other name, in which case Std is zero and Name holds the element with
// surrounding whitespace removed. Interior whitespace and case are
// preserved, so compare Name case-insensitively.
//
// Name is a substring of the parsed input and shares its lifetime.
type Coding struct {
	Std  StdCoding
	Name string
}

// ParseCoding parses a single element of a Transfer-Encoding value:
// s is stripped of surrounding ASCII whitespace and matched against the
// standard codings. It never fails; an unrecognized or empty element
// comes back in Name.
func ParseCoding(s string) Coding {
	s = trim(s)
	if std, ok := MatchStd(s); ok {
		return Coding{Std: std}
	}
	return Coding{Name: s}
}

// String returns the name of the coding as it would appear on the wire.
func (c Coding) String() string {
	if c.Std != 0 {
		return c.Std.String()
	}
	return c.Name
}
