package humanesort

import (
	"cmp"

	"github.com/humanesort/humanesort/debug"
	"github.com/humanesort/humanesort/token"
)

// Compare returns the humane ordering of a and b.
//
// Both strings are split into alternating numeric and text segments
// which are compared position by position. Text segments compare by
// byte order over their common length, a numeric segment ranks above a
// text segment at the same position, and numeric segments compare by
// magnitude. A side that runs out first is the smaller. Leading zeros
// carry no weight, so "a007" and "a7" compare Equal, and "a9" compares
// Greater than "ab" because after the shared "a" a number meets text.
func Compare[S ~string](a, b S) Ordering {
	o := compare(a, b)
	if debug.Cmp() {
		debug.Logf("humane cmp %q %q -> %s\n", string(a), string(b), o)
	}
	return o
}

// LessThan reports whether a orders strictly before b.
func LessThan[S ~string](a, b S) bool {
	return Compare(a, b) == Less
}

// CompareBytes is Compare for byte slices.
func CompareBytes(a, b []byte) Ordering {
	o := compare(a, b)
	if debug.Cmp() {
		debug.Logf("humane cmp %q %q -> %s\n", a, b, o)
	}
	return o
}

func compare[D token.Data](a, b D) Ordering {
	for {
		switch {
		case len(a) == 0 && len(b) == 0:
			return Equal
		case len(a) == 0:
			return Less
		case len(b) == 0:
			return Greater
		}
		ta, na := token.Scan(a)
		tb, nb := token.Scan(b)
		switch {
		case ta == token.Numeric && tb == token.Numeric:
			if o := compareMagnitude(a[:na], b[:nb]); o != Equal {
				return o
			}
			a, b = a[na:], b[nb:]
		case ta == token.Numeric:
			// numeric ranks above text at the same position
			return Greater
		case tb == token.Numeric:
			return Less
		default:
			// An equal shared prefix does not decide: the shorter text
			// run ends at a digit or at end of input, and the next
			// round resolves either against the longer run's leftover.
			m := min(na, nb)
			if o := compareRaw(a[:m], b[:m]); o != Equal {
				return o
			}
			a, b = a[m:], b[m:]
		}
	}
}

// compareMagnitude compares two digit runs by numeric value without
// parsing them, so arbitrarily long runs cannot overflow. Leading
// zeros are stripped first, an all-zero run reduces to a single zero.
// Of the remainders the longer is the larger, equal lengths compare
// digit by digit.
func compareMagnitude[D token.Data](a, b D) Ordering {
	for len(a) > 1 && a[0] == '0' {
		a = a[1:]
	}
	for len(b) > 1 && b[0] == '0' {
		b = b[1:]
	}
	if len(a) != len(b) {
		return Ordering(cmp.Compare(len(a), len(b)))
	}
	return compareRaw(a, b)
}

func compareRaw[D token.Data](a, b D) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return Ordering(cmp.Compare(a[i], b[i]))
		}
	}
	return Ordering(cmp.Compare(len(a), len(b)))
}
