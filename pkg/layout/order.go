// Package layout orders introspected fields for presentation and computes the
// width of the label column.
package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/goliatone/go-paramform/pkg/model"
)

// Order returns the visible fields in presentation order. Fields with a
// negative precedence are dropped. The rest are grouped by tier (missing
// precedence is tier 0), tiers ascend, and inside a tier fields sort by name
// and then by declaration index. The input slice is not modified.
func Order(fields []model.FieldDescriptor) []model.FieldDescriptor {
	visible := make([]model.FieldDescriptor, 0, len(fields))
	for _, field := range fields {
		if field.Hidden() {
			continue
		}
		visible = append(visible, field)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return less(visible[i], visible[j])
	})
	return visible
}

func less(a, b model.FieldDescriptor) bool {
	if a.Tier() != b.Tier() {
		return a.Tier() < b.Tier()
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Index < b.Index
}

// Tier is one precedence group.
type Tier struct {
	Precedence float64
	Fields     []model.FieldDescriptor
}

// Group splits ordered visible fields into ascending tiers.
func Group(fields []model.FieldDescriptor) []Tier {
	ordered := Order(fields)
	var tiers []Tier
	for _, field := range ordered {
		if n := len(tiers); n > 0 && tiers[n-1].Precedence == field.Tier() {
			tiers[n-1].Fields = append(tiers[n-1].Fields, field)
			continue
		}
		tiers = append(tiers, Tier{Precedence: field.Tier(), Fields: []model.FieldDescriptor{field}})
	}
	return tiers
}

// LabelWidth computes the label column width from every label shown.
type LabelWidth interface {
	Width(labels []string) string
}

// LabelWidthFunc adapts a function into a LabelWidth.
type LabelWidthFunc func(labels []string) string

// Width calls fn.
func (fn LabelWidthFunc) Width(labels []string) string { return fn(labels) }

// Fixed returns a strategy that always yields width.
func Fixed(width string) LabelWidth {
	return LabelWidthFunc(func([]string) string { return width })
}

const (
	minLabelPixels = 60
	pixelsPerRune  = 7.5
)

// Estimate sizes the column from the longest label, never below 60px.
var Estimate LabelWidth = LabelWidthFunc(EstimateLabelWidth)

// EstimateLabelWidth returns max(60, int(longest*7.5)) formatted as pixels.
func EstimateLabelWidth(labels []string) string {
	return fmt.Sprintf("%dpx", EstimatePixels(labels))
}

// EstimatePixels is EstimateLabelWidth without the unit.
func EstimatePixels(labels []string) int {
	longest := 0
	for _, label := range labels {
		if n := len([]rune(label)); n > longest {
			longest = n
		}
	}
	return int(math.Max(minLabelPixels, float64(int(float64(longest)*pixelsPerRune))))
}
