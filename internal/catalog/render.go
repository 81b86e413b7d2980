package catalog

import (
	"strconv"
	"strings"

	"restockbot/internal/format"
)

// Announcement is the display representation of a product record: what the
// externally visible restock message shows.
type Announcement struct {
	Title    string
	Body     string
	ImageURL string
	Table    string
}

// Render produces the announcement for a record. It is a pure projection:
// calling it twice on an unchanged record yields byte-identical output, which
// is what lets edits re-render without accumulating drift.
func Render(rec ProductRecord) Announcement {
	a := Announcement{
		Title: "🛒 " + rec.Key,
		Body:  "Fresh stock just landed. Grab it while it lasts!",
		Table: variantTable(rec.Variants),
	}
	// Only forward URLs the chat platform will accept; a malformed image URL
	// drops the image rather than failing the whole announcement.
	if strings.HasPrefix(rec.ImageURL, "http://") || strings.HasPrefix(rec.ImageURL, "https://") {
		a.ImageURL = rec.ImageURL
	}
	return a
}

// Text composes the full Markdown message body for the announcement, with the
// variant table inside a code block so the fixed-width columns line up.
func (a Announcement) Text() string {
	var b strings.Builder
	b.WriteString("*" + a.Title + "*\n")
	b.WriteString(a.Body + "\n")
	if a.ImageURL != "" {
		b.WriteString(a.ImageURL + "\n")
	}
	b.WriteString("\n```\n")
	b.WriteString(a.Table)
	b.WriteString("```")
	return b.String()
}

// variantTable projects the variant list, in stored order, onto aligned
// fixed-width rows. No sorting, filtering or aggregation happens here.
func variantTable(vs []Variant) string {
	nameW := len("ITEM")
	priceW := len("PRICE")
	for _, v := range vs {
		if n := format.Width(v.Name); n > nameW {
			nameW = n
		}
		if n := format.Width(v.Price); n > priceW {
			priceW = n
		}
	}

	var b strings.Builder
	b.WriteString(format.PadRight("ITEM", nameW) + "  " + format.PadRight("PRICE", priceW) + "  STOCK\n")
	for _, v := range vs {
		b.WriteString(format.PadRight(v.Name, nameW) + "  " + format.PadRight(v.Price, priceW) + "  " + strconv.Itoa(v.Stock) + "\n")
	}
	return b.String()
}
