package services

import (
	"context"

	"github.com/leewillemse/portfolio-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// ToDoc converts a typed model into the flat document the store persists.
func ToDoc(v interface{}) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CreateItem inserts a record and re-reads it so the response carries the
// assigned id and timestamps. The re-read is not atomic against a concurrent
// delete; a not-found here is surfaced as-is, not treated as fatal.
func CreateItem(ctx context.Context, st store.Store, kind store.Kind, doc bson.M) (store.Record, error) {
	id, err := st.Create(ctx, kind, doc)
	if err != nil {
		return nil, err
	}
	return st.Get(ctx, kind, id)
}

// ListItems returns serialized records; no matches is an empty slice, not an error.
func ListItems(ctx context.Context, st store.Store, kind store.Kind, filter store.Filter, limit int64) ([]store.Record, error) {
	records, err := st.List(ctx, kind, filter, store.ListOptions{Limit: limit})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []store.Record{}
	}
	return records, nil
}

// UpdateItem merges the supplied fields into an existing record. The id is
// validated before any store round-trip.
func UpdateItem(ctx context.Context, st store.Store, kind store.Kind, id string, fields bson.M) (store.Record, error) {
	if _, err := store.ParseID(id); err != nil {
		return nil, err
	}
	return st.Update(ctx, kind, id, fields)
}

// DeleteItem hard-deletes a record. The id is validated before any store round-trip.
func DeleteItem(ctx context.Context, st store.Store, kind store.Kind, id string) error {
	if _, err := store.ParseID(id); err != nil {
		return err
	}
	return st.Delete(ctx, kind, id)
}
