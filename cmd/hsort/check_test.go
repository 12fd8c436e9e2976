package main

import (
	"bytes"
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// The delete side of the diff reconstructs the input order, the insert
// side the humane order.
func TestOrderDiff(t *testing.T) {
	lines := []string{"b10", "b2", "a1"}
	diffs := orderDiff(lines)
	var have, want strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			have.WriteString(d.Text)
			want.WriteString(d.Text)
		case diffpatch.DiffDelete:
			have.WriteString(d.Text)
		case diffpatch.DiffInsert:
			want.WriteString(d.Text)
		}
	}
	if have.String() != "b10\nb2\na1\n" {
		t.Errorf("delete side reconstructs %q", have.String())
	}
	if want.String() != "a1\nb2\nb10\n" {
		t.Errorf("insert side reconstructs %q", want.String())
	}
}

func TestOrderDiffSorted(t *testing.T) {
	for _, d := range orderDiff([]string{"a1", "a2", "a10"}) {
		if d.Type != diffpatch.DiffEqual {
			t.Errorf("sorted input produced %v %q", d.Type, d.Text)
		}
	}
}

func TestWriteOrderDiff(t *testing.T) {
	var buf bytes.Buffer
	writeOrderDiff(&buf, []string{"x2", "x10", "x1"}, false)
	out := buf.String()
	if !strings.Contains(out, "-") || !strings.Contains(out, "+") {
		t.Errorf("diff output missing change markers: %q", out)
	}
}
