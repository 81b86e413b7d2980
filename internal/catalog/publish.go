package catalog

import (
	"errors"
	"fmt"
)

// Sync failure causes, kept distinct so the operator knows whether the
// channel binding needs fixing or the announcement needs a manual resend.
var (
	ErrChannelUnavailable = errors.New("channel unavailable")
	ErrMessageUnavailable = errors.New("announcement message unavailable")
)

// SyncError reports a failed announcement sync for one product. By the time
// it is returned the catalog is already updated; the record is never rolled
// back, so a later resend loses nothing.
type SyncError struct {
	Key string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("syncing announcement for %q: %v", e.Key, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// Messenger is the outbound chat surface the synchronizer drives. Send posts
// a fresh announcement with its interactive controls and returns the new
// message ID; Edit replaces the content of a bound message in place, leaving
// the controls untouched.
type Messenger interface {
	SendAnnouncement(channel string, key string, a Announcement) (int, error)
	EditAnnouncement(channel string, messageID int, a Announcement) error
}

// Publisher keeps the external announcement message in step with a catalog
// record.
type Publisher struct {
	Store *Store
	Out   Messenger
}

// Publish renders the record and either creates its announcement message
// (first publish, binding persisted via the store) or edits the bound one in
// place. It returns the record with the binding filled in. A returned
// *SyncError means the chat side failed after the catalog was already
// written.
func (p *Publisher) Publish(rec ProductRecord) (ProductRecord, error) {
	a := Render(rec)

	if !rec.Announced() {
		id, err := p.Out.SendAnnouncement(rec.ChannelID, rec.Key, a)
		if err != nil {
			return rec, &SyncError{Key: rec.Key, Err: err}
		}
		if err := p.Store.SetBinding(rec.Key, id); err != nil {
			return rec, err
		}
		rec.MessageID = id
		return rec, nil
	}

	if err := p.Out.EditAnnouncement(rec.ChannelID, rec.MessageID, a); err != nil {
		return rec, &SyncError{Key: rec.Key, Err: err}
	}
	return rec, nil
}
