package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used by tests and local development. It keeps
// documents in insertion order and issues real ObjectID hex identifiers so id
// validation behaves the same as against Mongo.
type Memory struct {
	mu   sync.RWMutex
	docs map[Kind][]bson.M
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[Kind][]bson.M)}
}

func (m *Memory) Create(_ context.Context, kind Kind, doc bson.M) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := primitive.NewObjectID()
	now := time.Now().UTC()

	stored := bson.M{"_id": id, "created_at": now, "updated_at": now}
	for k, v := range doc {
		if k == "_id" || k == "id" {
			continue
		}
		stored[k] = v
	}
	m.docs[kind] = append(m.docs[kind], stored)
	return id.Hex(), nil
}

func (m *Memory) Get(_ context.Context, kind Kind, id string) (Record, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.docs[kind] {
		if doc["_id"] == oid {
			return serialize(doc), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) List(_ context.Context, kind Kind, filter Filter, opts ListOptions) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []bson.M
	for _, doc := range m.docs[kind] {
		if matchesFilter(doc, filter) {
			matched = append(matched, doc)
		}
	}

	if opts.SortBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i][opts.SortBy], matched[j][opts.SortBy])
			if opts.SortDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	records := make([]Record, 0, len(matched))
	for _, doc := range matched {
		records = append(records, serialize(doc))
	}
	return records, nil
}

func (m *Memory) Update(_ context.Context, kind Kind, id string, fields bson.M) (Record, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.docs[kind] {
		if doc["_id"] != oid {
			continue
		}
		for k, v := range fields {
			if k == "_id" || k == "id" {
				continue
			}
			doc[k] = v
		}
		doc["updated_at"] = time.Now().UTC()
		return serialize(doc), nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(_ context.Context, kind Kind, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.docs[kind]
	for i, doc := range docs {
		if doc["_id"] == oid {
			m.docs[kind] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Count(_ context.Context, kind Kind) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.docs[kind])), nil
}

func matchesFilter(doc bson.M, filter Filter) bool {
	for field, match := range filter {
		needle := strings.ToLower(match.Substring)
		val, ok := doc[field]
		if !ok {
			return false
		}
		if match.AnyElement {
			if !anyElementContains(val, needle) {
				return false
			}
		} else {
			s, _ := val.(string)
			if !strings.Contains(strings.ToLower(s), needle) {
				return false
			}
		}
	}
	return true
}

func anyElementContains(val interface{}, needle string) bool {
	for _, elem := range asSlice(val) {
		if strings.Contains(strings.ToLower(fmt.Sprint(elem)), needle) {
			return true
		}
	}
	return false
}

func asSlice(val interface{}) []interface{} {
	switch v := val.(type) {
	case []interface{}:
		return v
	case primitive.A:
		return v
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// compareValues orders sortable field values: date strings compare
// lexicographically (ISO-8601 dates sort chronologically) and timestamps
// compare as time. Missing values sort first.
func compareValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0
		}
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
