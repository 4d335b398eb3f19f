package transferenc

import (
	"net/http"
	"strings"
)

// TransferEncoding parses the Transfer-Encoding field in h (RFC 7230
// Section 3.3.1) and returns its codings in decode order: the last coding
// of the last field line comes first. Multiple field lines are treated as
// one comma-joined list.
//
// If there is no such field in h, TransferEncoding returns nil. Otherwise
// it returns every list element, including empty ones left by stray
// commas; rejecting those, like rejecting unknown names, is up to the
// caller.
func TransferEncoding(h http.Header) []Coding {
	vs := h["Transfer-Encoding"]
	if vs == nil {
		return nil
	}
	var codings []Coding
	for i := len(vs) - 1; i >= 0; i-- {
		for it := Codings(vs[i]); ; {
			c, ok := it.Next()
			if !ok {
				break
			}
			codings = append(codings, c)
		}
	}
	return codings
}

// SetTransferEncoding replaces the Transfer-Encoding field in h.
// Codings must be in decode order, as returned by TransferEncoding;
// they are written to the field in application order.
// See also AddTransferEncoding.
func SetTransferEncoding(h http.Header, codings []Coding) {
	h.Set("Transfer-Encoding", buildTransferEncoding(codings))
}

// AddTransferEncoding is like SetTransferEncoding but appends a new field
// line instead of replacing. The appended codings decode before any
// already present in h.
func AddTransferEncoding(h http.Header, codings ...Coding) {
	h.Add("Transfer-Encoding", buildTransferEncoding(codings))
}

func buildTransferEncoding(codings []Coding) string {
	b := &strings.Builder{}
	for i := len(codings) - 1; i >= 0; i-- {
		b.WriteString(codings[i].String())
		if i > 0 {
			b.WriteString(", ")
		}
	}
	return b.String()
}

// IsChunked reports whether the message framed by h has a chunked body,
// that is, whether chunked is the final transfer coding applied
// (RFC 7230 Section 3.3.3).
func IsChunked(h http.Header) bool {
	vs := h["Transfer-Encoding"]
	if len(vs) == 0 {
		return false
	}
	it := Codings(vs[len(vs)-1])
	c, _ := it.Next()
	return c.Std == Chunked
}
