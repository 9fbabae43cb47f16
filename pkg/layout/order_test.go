package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramform/pkg/model"
)

func prec(v float64) *float64 { return &v }

func names(fields []model.FieldDescriptor) []string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = field.Name
	}
	return out
}

func TestOrder_TiersAndTieBreak(t *testing.T) {
	fields := []model.FieldDescriptor{
		{Name: "mode", Precedence: prec(2), Index: 0},
		{Name: "zeta", Index: 1},
		{Name: "hidden", Precedence: prec(-1), Index: 2},
		{Name: "speed", Precedence: prec(1), Index: 3},
		{Name: "alpha", Precedence: prec(0), Index: 4},
		{Name: "beta", Precedence: prec(1), Index: 5},
		{Name: "neg-zero", Precedence: prec(-0.5), Index: 6},
	}

	got := names(Order(fields))
	want := []string{"alpha", "zeta", "beta", "speed", "mode"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_Deterministic(t *testing.T) {
	fields := []model.FieldDescriptor{
		{Name: "b", Index: 0},
		{Name: "a", Index: 1},
		{Name: "a", Index: 2},
		{Name: "c", Precedence: prec(0.5), Index: 3},
	}
	first := Order(fields)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, Order(fields)); diff != "" {
			t.Fatalf("order not reproducible (-first +again):\n%s", diff)
		}
	}
	if first[0].Index != 1 || first[1].Index != 2 {
		t.Fatalf("expected equal names to fall back to index, got %+v", first[:2])
	}
	if fields[0].Name != "b" {
		t.Fatalf("input slice was modified")
	}
}

func TestOrder_Empty(t *testing.T) {
	if got := Order(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestGroup(t *testing.T) {
	tiers := Group([]model.FieldDescriptor{
		{Name: "b", Precedence: prec(1)},
		{Name: "a"},
		{Name: "c", Precedence: prec(1)},
	})
	if len(tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(tiers))
	}
	if tiers[0].Precedence != 0 || tiers[1].Precedence != 1 {
		t.Fatalf("unexpected tiers %+v", tiers)
	}
	if diff := cmp.Diff([]string{"b", "c"}, names(tiers[1].Fields)); diff != "" {
		t.Fatalf("tier fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelWidth(t *testing.T) {
	cases := []struct {
		name     string
		strategy LabelWidth
		labels   []string
		expect   string
	}{
		{"empty", Estimate, nil, "60px"},
		{"short", Estimate, []string{"a", "bb"}, "60px"},
		{"long", Estimate, []string{"x", "a_very_long_parameter"}, "157px"},
		{"fixed", Fixed("120px"), []string{"a_very_long_parameter"}, "120px"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.strategy.Width(tc.labels); got != tc.expect {
				t.Fatalf("expected %s, got %s", tc.expect, got)
			}
		})
	}
}
