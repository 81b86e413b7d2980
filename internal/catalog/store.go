package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Store is the durable product catalog: a single JSON document keyed by
// product name, read in full once at startup and rewritten in full on every
// mutation. There is no transaction log and no schema migration; an
// incompatible document is a startup error the caller must treat as fatal.
//
// The mutex serializes individual mutations. It does not provide conflict
// detection across interactions: two edits for the same key submitted
// concurrently resolve last-write-wins.
type Store struct {
	mu   sync.Mutex
	path string
	m    map[string]ProductRecord
}

// Open loads the catalog document at path. A missing file yields an empty
// catalog; an unreadable or corrupt document is an error, because the bot
// must not run with an unknown catalog state.
func Open(path string) (*Store, error) {
	s := &Store{path: path, m: make(map[string]ProductRecord)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.m); err != nil {
		return nil, fmt.Errorf("catalog %s is corrupt: %w", path, err)
	}
	for key, rec := range s.m {
		rec.Key = key
		s.m[key] = rec
	}
	return s, nil
}

// Get returns the record under key, if any. Key equality is exact-string.
func (s *Store) Get(key string) (ProductRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.m[key]
	return rec, ok
}

// Put replaces the record under key in full and persists the whole document
// before returning. On a persistence failure the in-memory catalog is rolled
// back to its previous content, so the document on disk and the map never
// disagree.
func (s *Store) Put(key string, rec ProductRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.m[key]
	rec.Key = key
	s.m[key] = rec
	if err := s.save(); err != nil {
		if had {
			s.m[key] = prev
		} else {
			delete(s.m, key)
		}
		return err
	}
	return nil
}

// SetBinding records the announcement message bound to an existing record
// and persists the document. The rest of the record is untouched.
func (s *Store) SetBinding(key string, messageID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.m[key]
	if !ok {
		return fmt.Errorf("no product %q in catalog", key)
	}
	rec := prev
	rec.MessageID = messageID
	s.m[key] = rec
	if err := s.save(); err != nil {
		s.m[key] = prev
		return err
	}
	return nil
}

// All returns a copy of every record, sorted by key.
func (s *Store) All() []ProductRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ProductRecord, 0, len(s.m))
	for _, rec := range s.m {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// save rewrites the whole document. Caller holds the mutex.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.m, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", s.path, err)
	}
	return nil
}
