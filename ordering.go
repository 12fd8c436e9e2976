package humanesort

// Ordering is the result of a humane comparison. Values align with
// Go's cmp convention, -1, 0 and +1, so an Ordering converts directly
// to the int a sort comparison function returns.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	s, ok := map[Ordering]string{
		Less:    "Less",
		Equal:   "Equal",
		Greater: "Greater",
	}[o]
	if ok {
		return s
	}
	return "<unknown ordering>"
}

// Reverse flips the ordering, Less becomes Greater and vice versa.
func (o Ordering) Reverse() Ordering {
	return -o
}
