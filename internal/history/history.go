// Package history maintains a bounded, duplicate-free list of hashes
// of previously presented question texts, persisted in a key-value
// store. The list is fed into the generation prompt as "avoid these";
// the remote generator may ignore it, so the store optimizes for
// availability over strict correctness and never fails the caller.
package history

import (
	"encoding/json"
	"log"
)

// storeKey is the single key holding the JSON-encoded hash array.
const storeKey = "dmv_prep_seen_hashes"

// MaxEntries caps the persisted list; the most recently inserted
// hashes are retained on overflow.
const MaxEntries = 500

// KV is the minimal key-value contract the store needs. Get reports
// whether the key exists; a missing key is not an error.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Store tracks seen question hashes in a KV backend.
type Store struct {
	kv KV
}

// New creates a Store on top of the given KV backend.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// RecordSeen hashes each question text and unions the hashes into the
// persisted list, keeping insertion order, dropping duplicates, and
// truncating to the most recent MaxEntries. Persistence failures are
// logged and swallowed: losing dedup history is non-fatal.
func (s *Store) RecordSeen(texts []string) {
	existing := s.SeenHashes()

	seen := make(map[string]bool, len(existing)+len(texts))
	merged := make([]string, 0, len(existing)+len(texts))
	for _, h := range existing {
		if !seen[h] {
			seen[h] = true
			merged = append(merged, h)
		}
	}
	for _, t := range texts {
		h := Hash(t)
		if !seen[h] {
			seen[h] = true
			merged = append(merged, h)
		}
	}

	if len(merged) > MaxEntries {
		merged = merged[len(merged)-MaxEntries:]
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		log.Printf("history: encode seen hashes: %v", err)
		return
	}
	if err := s.kv.Set(storeKey, string(raw)); err != nil {
		log.Printf("history: persist seen hashes: %v", err)
	}
}

// SeenHashes returns the persisted hash list. A missing, unreadable or
// corrupt value yields an empty list, never an error.
func (s *Store) SeenHashes() []string {
	raw, ok, err := s.kv.Get(storeKey)
	if err != nil || !ok {
		return nil
	}
	var hashes []string
	if err := json.Unmarshal([]byte(raw), &hashes); err != nil {
		return nil
	}
	return hashes
}

// Reset clears the persisted list. Unlike RecordSeen this reports the
// failure: an explicit reset the user asked for must not silently fail.
func (s *Store) Reset() error {
	return s.kv.Set(storeKey, "[]")
}

// SeenCount returns the number of persisted hashes.
func (s *Store) SeenCount() int {
	return len(s.SeenHashes())
}
