package token

import (
	"bytes"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{"empty", "", nil},
		{"text only", "abc", []Token{
			{Text, []byte("abc")},
		}},
		{"digits only", "042", []Token{
			{Numeric, []byte("042")},
		}},
		{"text then digits", "item-11", []Token{
			{Text, []byte("item-")},
			{Numeric, []byte("11")},
		}},
		{"digits then text", "11LOL", []Token{
			{Numeric, []byte("11")},
			{Text, []byte("LOL")},
		}},
		{"alternating", "a1b2c3", []Token{
			{Text, []byte("a")},
			{Numeric, []byte("1")},
			{Text, []byte("b")},
			{Numeric, []byte("2")},
			{Text, []byte("c")},
			{Numeric, []byte("3")},
		}},
		{"whitespace and punctuation are text", " \t-.", []Token{
			{Text, []byte(" \t-.")},
		}},
		{"non-ascii digits are text", "١٢٣x7", []Token{
			{Text, []byte("١٢٣x")},
			{Numeric, []byte("7")},
		}},
		{"utf8 runs", "∞42✓", []Token{
			{Text, []byte("∞")},
			{Numeric, []byte("42")},
			{Text, []byte("✓")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(nil, []byte(tt.in))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Type != tt.want[i].Type || !bytes.Equal(got[i].Bytes, tt.want[i].Bytes) {
					t.Errorf("token %d: got %s, want %s", i, got[i].Info(), tt.want[i].Info())
				}
			}
		})
	}
}

// Tokenization is lossless, tokens are non-empty, and adjacent tokens
// alternate class, for any input.
func TestTokenizeInvariants(t *testing.T) {
	inputs := []string{
		"",
		"0",
		"something-11",
		"007bond007",
		"--ad0dkd",
		"{ ∞: 2, x: 0 }",
		"a\nb\t9 ",
		"١٢٣",
		"184467440737095516150123456789",
	}
	for _, in := range inputs {
		toks := Tokenize(nil, []byte(in))
		var buf bytes.Buffer
		for i := range toks {
			if len(toks[i].Bytes) == 0 {
				t.Errorf("%q: empty token at %d", in, i)
			}
			if i > 0 && toks[i].Type == toks[i-1].Type {
				t.Errorf("%q: adjacent tokens %d and %d share type %s", in, i-1, i, toks[i].Type)
			}
			buf.Write(toks[i].Bytes)
		}
		if buf.String() != in {
			t.Errorf("concat of tokens = %q, want %q", buf.String(), in)
		}
	}
}

func TestNext(t *testing.T) {
	tok, rest := Next([]byte("12ab"))
	if tok.Type != Numeric || string(tok.Bytes) != "12" || string(rest) != "ab" {
		t.Errorf("Next(12ab) = %s rest %q", tok.Info(), rest)
	}
	tok, rest = Next(rest)
	if tok.Type != Text || string(tok.Bytes) != "ab" || len(rest) != 0 {
		t.Errorf("Next(ab) = %s rest %q", tok.Info(), rest)
	}
	tok, rest = Next(rest)
	if len(tok.Bytes) != 0 || rest != nil {
		t.Errorf("Next of empty = %s rest %v", tok.Info(), rest)
	}
}

func TestScanString(t *testing.T) {
	typ, n := Scan("a01")
	if typ != Text || n != 1 {
		t.Errorf("Scan(a01) = %s %d", typ, n)
	}
	typ, n = Scan("01a")
	if typ != Numeric || n != 2 {
		t.Errorf("Scan(01a) = %s %d", typ, n)
	}
	if _, n := Scan(""); n != 0 {
		t.Errorf("Scan of empty = %d", n)
	}
}
