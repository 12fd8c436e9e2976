package token

import "fmt"

type Type int

const (
	Text Type = iota
	Numeric
)

func (t Type) String() string {
	s, ok := map[Type]string{
		Text:    "Text",
		Numeric: "Numeric",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Token is one maximal run of same-class bytes from its source.
// Bytes aliases the source, tokenization never copies.
type Token struct {
	Type  Type
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q", t.Type, t.Bytes)
}

func (t *Token) String() string {
	return string(t.Bytes)
}
