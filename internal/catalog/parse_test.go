package catalog

import (
	"reflect"
	"testing"
)

func TestParseVariants(t *testing.T) {
	got := ParseVariants("1K Followers,€3.00,10\n5K Followers,€10.00,5")
	want := []Variant{
		{Name: "1K Followers", Price: "€3.00", Stock: 10},
		{Name: "5K Followers", Price: "€10.00", Stock: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseVariants = %+v, want %+v", got, want)
	}
}

func TestParseVariantsDefaults(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Variant
	}{
		{"only name", "OnlyName", Variant{Name: "OnlyName", Price: "€0.00", Stock: 0}},
		{"bad stock", "Item,€5.00,abc", Variant{Name: "Item", Price: "€5.00", Stock: 0}},
		{"negative stock", "Item,€5.00,-3", Variant{Name: "Item", Price: "€5.00", Stock: 0}},
		{"empty name", ",€5.00,2", Variant{Name: "Unknown", Price: "€5.00", Stock: 2}},
		{"empty price", "Item,,2", Variant{Name: "Item", Price: "€0.00", Stock: 2}},
		{"extra commas kept in stock field", "Item,€5.00,1,junk", Variant{Name: "Item", Price: "€5.00", Stock: 0}},
	}

	for _, tc := range cases {
		got := ParseVariants(tc.in)
		if len(got) != 1 {
			t.Fatalf("%s: expected 1 variant, got %d", tc.name, len(got))
		}
		if got[0] != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got[0], tc.want)
		}
	}
}

func TestParseVariantsTotal(t *testing.T) {
	// Output length equals the number of non-empty lines, whatever the input.
	got := ParseVariants("\n  a,b,c  \n\n   \nx\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(got))
	}

	if got := ParseVariants(""); len(got) != 0 {
		t.Fatalf("empty input should parse to zero variants, got %d", len(got))
	}
}

func TestParseVariantsOrderPreserved(t *testing.T) {
	got := ParseVariants("z,€1,1\na,€2,2\nm,€3,3")
	if got[0].Name != "z" || got[1].Name != "a" || got[2].Name != "m" {
		t.Fatalf("operator order not preserved: %+v", got)
	}
}

func TestFormatVariantsRoundTrip(t *testing.T) {
	want := []Variant{
		{Name: "1K Followers", Price: "€3.00", Stock: 10},
		{Name: "5K Followers", Price: "€10.00", Stock: 5},
	}
	got := ParseVariants(FormatVariants(want))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip lost data: %+v != %+v", got, want)
	}
}
