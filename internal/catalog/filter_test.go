package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var fixture = []Product{
	{ID: "1", Name: "Quill", Description: "Feather pen", Category: "Stationery", Price: 150},
	{ID: "2", Name: "Lab Coat", Description: "White cotton", Category: "Lab Equipment", Price: 1800},
	{ID: "3", Name: "Ink Bottle", Description: "Refill for quills", Category: "Stationery", Price: 200},
	{ID: "4", Name: "Goggles", Description: "Splash proof", Category: "Lab Equipment", Price: 700},
	{ID: "5", Name: "Sketchbook", Description: "A4 paper", Category: "Art Supplies", Price: 650},
}

func ids(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{name: "no filters returns everything in order", q: Query{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "category exact match", q: Query{Category: "Stationery"}, want: []string{"1", "3"}},
		{name: "category is case sensitive", q: Query{Category: "stationery"}, want: []string{}},
		{name: "search matches name case insensitively", q: Query{Search: "QUILL"}, want: []string{"1", "3"}},
		{name: "search matches description", q: Query{Search: "splash"}, want: []string{"4"}},
		{name: "search matches category", q: Query{Search: "lab equip"}, want: []string{"2", "4"}},
		{name: "category and search are anded", q: Query{Category: "Lab Equipment", Search: "coat"}, want: []string{"2"}},
		{name: "no match", q: Query{Search: "broomstick"}, want: []string{}},
		{name: "unknown category", q: Query{Category: "Brooms"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(fixture, tt.q))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter(%+v) mismatch (-want +got):\n%s", tt.q, diff)
			}
		})
	}
}

func TestFilter_UnfilteredReturnsEqualCopy(t *testing.T) {
	got := Filter(fixture, Query{})
	if diff := cmp.Diff(fixture, got); diff != "" {
		t.Fatalf("unfiltered result differs (-want +got):\n%s", diff)
	}

	got[0].Name = "changed"
	if fixture[0].Name != "Quill" {
		t.Fatal("Filter must not alias the input slice")
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, Query{Category: "Stationery", Search: "x"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
