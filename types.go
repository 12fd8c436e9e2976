package humanesort

// String is a string carrying the humane ordering capability.
type String string

func (s String) HumaneCmp(t String) Ordering {
	return Compare(s, t)
}

// Bytes is a byte slice carrying the humane ordering capability.
type Bytes []byte

func (b Bytes) HumaneCmp(c Bytes) Ordering {
	return CompareBytes(b, c)
}
