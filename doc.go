// Package humanesort orders text the way people expect: strings are
// split into numeric and non-numeric segments, and numeric segments
// compare by magnitude, so "something-2" sorts before "something-11".
//
// [Compare] compares two strings under this ordering and [Strings]
// sorts a slice of them. Types that are not strings implement [Order]
// and sort with [Sort]. Digit runs of any length compare correctly,
// numbers are never parsed into machine integers.
//
// Only ASCII decimal digits form numeric segments. Everything else,
// including Unicode digits from other scripts, is ordinary text and
// compares by byte order.
package humanesort
