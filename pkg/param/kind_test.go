package param

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindLineage(t *testing.T) {
	cases := []struct {
		kind Kind
		want []Kind
	}{
		{KindParameter, []Kind{KindParameter}},
		{KindInteger, []Kind{KindInteger, KindNumber, KindParameter}},
		{KindMultiFileSelector, []Kind{KindMultiFileSelector, KindListSelector, KindSelector, KindParameter}},
		{KindFileSelector, []Kind{KindFileSelector, KindSelector, KindParameter}},
		{Kind("colour"), []Kind{Kind("colour"), KindParameter}},
		{Kind(""), []Kind{KindParameter}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.kind), func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.kind.Lineage()); diff != "" {
				t.Fatalf("lineage mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKindIs(t *testing.T) {
	if !KindInteger.Is(KindNumber) {
		t.Fatalf("integer should descend from number")
	}
	if KindNumber.Is(KindInteger) {
		t.Fatalf("number must not descend from integer")
	}
	if !KindMultiFileSelector.Is(KindSelector) {
		t.Fatalf("multi file selector should descend from selector")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":                    KindParameter,
		"Integer":             KindInteger,
		"int":                 KindInteger,
		"list_selector":       KindListSelector,
		"multi-file-selector": KindMultiFileSelector,
		"FileSelector":        KindFileSelector,
		"bool":                KindBoolean,
	}
	for raw, want := range cases {
		got, err := ParseKind(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %q, got %q", raw, want, got)
		}
	}

	if _, err := ParseKind("matrix"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
