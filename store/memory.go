package store

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store keeping documents in insertion order. It
// backs handler tests and local development without a running MongoDB.
// Documents and filter values are normalized through JSON so that equality
// behaves like the driver's (numbers compare as float64, timestamps as
// their ISO string form).
type Memory struct {
	mu   sync.RWMutex
	data map[string][]map[string]any
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]map[string]any)}
}

func (s *Memory) Insert(ctx context.Context, collection string, doc any) error {
	normalized, err := toDocument(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = append(s.data[collection], normalized)
	return nil
}

func (s *Memory) FindAll(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error {
	normalizedFilter, err := toDocument(filter)
	if err != nil {
		return err
	}

	s.mu.RLock()
	matches := make([]map[string]any, 0)
	for _, doc := range s.data[collection] {
		if int64(len(matches)) >= limit {
			break
		}
		if matchesFilter(doc, normalizedFilter) {
			matches = append(matches, doc)
		}
	}
	s.mu.RUnlock()

	raw, err := json.Marshal(matches)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *Memory) UpdateOne(ctx context.Context, collection string, filter, patch map[string]any, upsert bool) (int64, error) {
	normalizedFilter, err := toDocument(filter)
	if err != nil {
		return 0, err
	}
	normalizedPatch, err := toDocument(patch)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.data[collection] {
		if matchesFilter(doc, normalizedFilter) {
			for k, v := range normalizedPatch {
				doc[k] = v
			}
			return 1, nil
		}
	}
	if !upsert {
		return 0, nil
	}

	inserted := map[string]any{"id": uuid.NewString()}
	for k, v := range normalizedFilter {
		inserted[k] = v
	}
	for k, v := range normalizedPatch {
		inserted[k] = v
	}
	s.data[collection] = append(s.data[collection], inserted)
	return 1, nil
}

func (s *Memory) DeleteOne(ctx context.Context, collection string, filter map[string]any) (int64, error) {
	normalizedFilter, err := toDocument(filter)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.data[collection]
	for i, doc := range docs {
		if matchesFilter(doc, normalizedFilter) {
			s.data[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Count reports how many documents a collection holds. Test helper.
func (s *Memory) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[collection])
}

func toDocument(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func matchesFilter(doc, filter map[string]any) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}
