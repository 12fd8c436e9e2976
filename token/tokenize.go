package token

import "github.com/humanesort/humanesort/debug"

// Data is the set of inputs the tokenizer accepts. Digits are
// single-byte in UTF-8, so byte-level scanning keeps multi-byte runes
// intact inside Text runs for both forms.
type Data interface {
	~[]byte | ~string
}

// Scan returns the class and byte length of the leading token of src.
// It returns length 0 only for empty input. Classification is total:
// anything that is not an ASCII decimal digit is Text, including
// whitespace, punctuation and non-ASCII bytes.
func Scan[D Data](src D) (Type, int) {
	if len(src) == 0 {
		return Text, 0
	}
	t := classOf(src[0])
	i := 1
	for i < len(src) && classOf(src[i]) == t {
		i++
	}
	return t, i
}

// Next splits the leading token off src and returns the remainder.
func Next(src []byte) (Token, []byte) {
	t, n := Scan(src)
	if n == 0 {
		return Token{}, nil
	}
	return Token{Type: t, Bytes: src[:n]}, src[n:]
}

// Tokenize appends the tokens of src to dst and returns the result.
// Adjacent tokens always differ in type, every token is non-empty, and
// concatenating the tokens' bytes reproduces src exactly. Empty input
// appends nothing.
func Tokenize(dst []Token, src []byte) []Token {
	start := len(dst)
	for len(src) > 0 {
		var tok Token
		tok, src = Next(src)
		dst = append(dst, tok)
	}
	if debug.Tokens() {
		for i := start; i < len(dst); i++ {
			debug.Logf("token %s\n", dst[i].Info())
		}
	}
	return dst
}

func classOf(c byte) Type {
	if asciiDigit(c) {
		return Numeric
	}
	return Text
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
