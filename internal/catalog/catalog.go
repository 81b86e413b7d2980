// Package catalog holds the product catalog: the durable store, the raw-text
// variant parser, the announcement renderer and the announcement synchronizer.
package catalog

import "time"

// Variant is a priced, stocked sub-option of a product (a quantity tier).
// Price is an opaque display string; it is never parsed as a number.
type Variant struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int    `json:"stock"`
}

// ProductRecord is everything the catalog knows about one product. The key is
// the map key of the catalog document, so it is not serialized with the value.
// MessageID 0 means the product has never been announced; once bound it is
// reused for every later edit.
type ProductRecord struct {
	Key       string    `json:"-"`
	ImageURL  string    `json:"image,omitempty"`
	Variants  []Variant `json:"variants"`
	ChannelID string    `json:"channelId"`
	MessageID int       `json:"messageId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Announced reports whether an announcement message is bound to the record.
func (r ProductRecord) Announced() bool {
	return r.MessageID != 0
}
