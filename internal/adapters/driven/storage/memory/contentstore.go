// Package memory provides in-memory driven-port implementations,
// used in tests and anywhere persistence is not required.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
	"github.com/kartka-labs/kartka-cli/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore is an in-memory implementation of driven.ContentStore.
type ContentStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewContentStore creates a new in-memory content store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		records: make(map[string]string),
	}
}

// Put creates a new record, refusing to overwrite an existing one.
func (s *ContentStore) Put(_ context.Context, identifier, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[identifier]; ok {
		return fmt.Errorf("record %s: %w", identifier, domain.ErrDuplicateIdentifier)
	}
	s.records[identifier] = body
	return nil
}

// ListIdentifiers enumerates all stored identifiers.
func (s *ContentStore) ListIdentifiers(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identifiers := make([]string, 0, len(s.records))
	for id := range s.records {
		identifiers = append(identifiers, id)
	}
	return identifiers, nil
}

// Get returns a stored body. Test helper; not part of the port.
func (s *ContentStore) Get(identifier string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.records[identifier]
	return body, ok
}
