// Package token splits text into alternating runs of digits and
// non-digits.
//
// [Tokenize] is a function for tokenizing bytes.
//
// [Scan] provides streaming access to the leading token so callers can
// walk a string without materializing the whole sequence.
package token
