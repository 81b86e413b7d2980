package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholders substituted for empty or unparsable variant fields.
const (
	DefaultName  = "Unknown"
	DefaultPrice = "€0.00"
)

// ParseVariants turns raw multi-line variant text into an ordered variant
// list. Each non-empty line is one `name,price,stock` triple. The parse is
// total: a malformed line degrades to a best-effort variant with defaulted
// fields instead of failing the whole submission, and an empty result is not
// an error here (callers may reject it upstream).
func ParseVariants(raw string) []Variant {
	var out []Variant
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, normalizeVariant(strings.SplitN(line, ",", 3)))
	}
	return out
}

// normalizeVariant is the single place the defaulting policy lives: empty
// name → "Unknown", empty price → "€0.00", unparsable or negative stock → 0.
func normalizeVariant(fields []string) Variant {
	v := Variant{Name: DefaultName, Price: DefaultPrice}
	if len(fields) > 0 {
		if name := strings.TrimSpace(fields[0]); name != "" {
			v.Name = name
		}
	}
	if len(fields) > 1 {
		if price := strings.TrimSpace(fields[1]); price != "" {
			v.Price = price
		}
	}
	if len(fields) > 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(fields[2])); err == nil && n >= 0 {
			v.Stock = n
		}
	}
	return v
}

// FormatVariants is the inverse of ParseVariants for already-valid data: it
// serializes variants back to the raw-text shape the parser accepts, so an
// edit form prefilled with it survives a resubmit without loss.
func FormatVariants(vs []Variant) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s,%s,%d", v.Name, v.Price, v.Stock)
	}
	return b.String()
}
