package param

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type namedValue struct{ label string }

func (n namedValue) Name() string { return n.label }

func TestNamedOptions_LabelRules(t *testing.T) {
	opts := NamedOptions(1, "b", namedValue{label: "custom"})

	want := []string{"1", "b", "custom"}
	if diff := cmp.Diff(want, opts.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsMerge_IsUnion(t *testing.T) {
	opts := NewOptions(Option{Label: "a", Value: 1}, Option{Label: "b", Value: 2})
	opts.Merge(NewOptions(Option{Label: "3", Value: 3}, Option{Label: "a", Value: 10}))

	want := []Option{
		{Label: "a", Value: 10},
		{Label: "b", Value: 2},
		{Label: "3", Value: 3},
	}
	if diff := cmp.Diff(want, opts.Pairs()); diff != "" {
		t.Fatalf("merged pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_NilSafe(t *testing.T) {
	var opts *Options
	if opts.Len() != 0 || opts.Contains(1) || opts.Labels() != nil {
		t.Fatalf("nil options should behave as empty")
	}
	if clone := opts.Clone(); clone.Len() != 0 {
		t.Fatalf("clone of nil options should be empty")
	}
}

func TestOptionsContains_DeepEqual(t *testing.T) {
	opts := NamedOptions([]any{"x"}, 2)
	if !opts.Contains([]any{"x"}) {
		t.Fatalf("expected slice value to be found")
	}
	if label, ok := opts.LabelOf(2); !ok || label != "2" {
		t.Fatalf("label of 2: got %q (ok=%v)", label, ok)
	}
}
