package transferenc

import "strings"

// An Iter yields the codings of one Transfer-Encoding value lazily, in
// decode order. Each element is computed on the pull, with no allocation;
// nothing is split up front.
//
// An Iter is single-pass. To start over, construct a new one with Codings,
// which reproduces the same sequence for the same input. It is not safe
// for concurrent use, but independent Iters over the same string are.
type Iter struct {
	v    string
	done bool
}

// Codings returns an Iter over the elements of v, the value of a
// Transfer-Encoding header. Elements are separated by single commas, so
// empty and doubled commas yield empty elements; an input with k commas
// yields exactly k+1 codings, and even an empty v yields one.
func Codings(v string) Iter {
	return Iter{v: v}
}

// Next returns the next coding in decode order, i.e. the last remaining
// element of the value. Once the elements run out, Next returns false
// forever.
func (it *Iter) Next() (Coding, bool) {
	if it.done {
		return Coding{}, false
	}
	i := strings.LastIndexByte(it.v, ',')
	if i == -1 {
		it.done = true
		return ParseCoding(it.v), true
	}
	c := ParseCoding(it.v[i+1:])
	it.v = it.v[:i]
	return c, true
}
