// Package flow drives the create and edit interactions for the product
// catalog: a small per-operator state machine from a triggering command
// through a form submission to a finalized store write and a synchronized
// announcement.
package flow

import (
	"errors"
	"sync"
	"time"

	"restockbot/internal/catalog"
)

// Rejections raised before any catalog mutation.
var (
	ErrUnauthorized   = errors.New("admin capability required")
	ErrUnknownProduct = errors.New("unknown product")
	ErrNoSession      = errors.New("no form awaiting submission")
	ErrSessionExpired = errors.New("form session expired")
	ErrNoVariants     = errors.New("no variants in submission")
	ErrMissingName    = errors.New("product name missing")
	ErrMissingChannel = errors.New("target channel missing")
)

// Mode distinguishes the create flow from the edit flow.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// session is one operator's open form. It exists only between the trigger
// and the submission (AwaitingSubmission); Idle and Applied have no entry.
type session struct {
	mode   Mode
	key    string
	opened time.Time
}

// Result reports a finished submission. When SyncErr is set the catalog was
// already updated and only the announcement sync failed; the record is kept
// so a manual resend loses nothing.
type Result struct {
	Record  catalog.ProductRecord
	Created bool
	SyncErr error
}

// Controller owns every open form session, keyed by operator. It is the only
// writer of the catalog store: updates are handled one at a time, and the
// controller's own mutex keeps a submission's store write and announcement
// sync in order even if that assumption ever changes.
type Controller struct {
	mu      sync.Mutex
	store   *catalog.Store
	pub     *catalog.Publisher
	isAdmin func(int64) bool
	ttl     time.Duration
	now     func() time.Time
	open    map[int64]*session
}

// NewController wires the controller to its store, publisher and the admin
// capability check.
func NewController(store *catalog.Store, pub *catalog.Publisher, isAdmin func(int64) bool, ttl time.Duration) *Controller {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Controller{
		store:   store,
		pub:     pub,
		isAdmin: isAdmin,
		ttl:     ttl,
		now:     time.Now,
		open:    make(map[int64]*session),
	}
}

// BeginCreate opens a create form for the operator. Only admins may open it;
// a rejected trigger performs no state transition.
func (c *Controller) BeginCreate(userID int64) error {
	if !c.isAdmin(userID) {
		return ErrUnauthorized
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open[userID] = &session{mode: ModeCreate, opened: c.now()}
	return nil
}

// BeginEdit opens an edit form for an existing product and returns the
// prefill: the current variants serialized back to the raw-text shape the
// parser accepts, so edit-then-resubmit is lossless. An unknown key is
// rejected immediately with no transition and no store access beyond the
// existence check.
func (c *Controller) BeginEdit(userID int64, key string) (string, error) {
	if !c.isAdmin(userID) {
		return "", ErrUnauthorized
	}
	rec, ok := c.store.Get(key)
	if !ok {
		return "", ErrUnknownProduct
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open[userID] = &session{mode: ModeEdit, key: key, opened: c.now()}
	return catalog.FormatVariants(rec.Variants), nil
}

// Awaiting reports whether the operator has an open form.
func (c *Controller) Awaiting(userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.open[userID]
	return ok && c.now().Sub(s.opened) <= c.ttl
}

// Cancel discards the operator's open form, if any.
func (c *Controller) Cancel(userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.open[userID]; !ok {
		return false
	}
	delete(c.open, userID)
	return true
}

// Submit finishes the operator's open form with the raw text they sent back.
// Validation failures keep the session open so the operator can resubmit;
// once the record is written the session is closed (Applied) even when the
// announcement sync fails, because the store update already succeeded.
func (c *Controller) Submit(userID int64, text string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.open[userID]
	if !ok {
		return Result{}, ErrNoSession
	}
	if c.now().Sub(s.opened) > c.ttl {
		delete(c.open, userID)
		return Result{}, ErrSessionExpired
	}

	switch s.mode {
	case ModeCreate:
		return c.submitCreate(userID, text)
	default:
		return c.submitEdit(userID, s.key, text)
	}
}

func (c *Controller) submitCreate(userID int64, text string) (Result, error) {
	sub := ParseForm(text)
	if sub.Name == "" {
		return Result{}, ErrMissingName
	}
	if sub.Channel == "" {
		return Result{}, ErrMissingChannel
	}
	vs := catalog.ParseVariants(sub.Variants)
	if len(vs) == 0 {
		return Result{}, ErrNoVariants
	}

	rec := catalog.ProductRecord{
		Key:       sub.Name,
		ImageURL:  sub.ImageURL,
		Variants:  vs,
		ChannelID: sub.Channel,
		CreatedAt: c.now(),
	}
	if err := c.store.Put(rec.Key, rec); err != nil {
		return Result{}, err
	}
	delete(c.open, userID)

	rec, syncErr := c.pub.Publish(rec)
	return Result{Record: rec, Created: true, SyncErr: syncErr}, nil
}

func (c *Controller) submitEdit(userID int64, key, text string) (Result, error) {
	rec, ok := c.store.Get(key)
	if !ok {
		delete(c.open, userID)
		return Result{}, ErrUnknownProduct
	}
	vs := catalog.ParseVariants(text)
	if len(vs) == 0 {
		return Result{}, ErrNoVariants
	}

	// Only the variants change; image, channel, binding and createdAt are
	// carried over from the stored record.
	rec.Variants = vs
	if err := c.store.Put(key, rec); err != nil {
		return Result{}, err
	}
	delete(c.open, userID)

	rec, syncErr := c.pub.Publish(rec)
	return Result{Record: rec, SyncErr: syncErr}, nil
}
