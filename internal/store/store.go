package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind identifies a record kind. The string value doubles as the MongoDB
// collection name, matching the original deployment's collections.
type Kind string

const (
	KindProfile       Kind = "profile"
	KindProject       Kind = "project"
	KindCertificate   Kind = "certificate"
	KindJournalEntry  Kind = "journalentry"
	KindSkillSnapshot Kind = "skillsnapshot"
	KindMilestone     Kind = "milestone"
)

// Collection returns the collection name backing this kind.
func (k Kind) Collection() string {
	return string(k)
}

var (
	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned for ids that are not well-formed ObjectID hex.
	ErrInvalidID = errors.New("invalid record id")
)

// Record is a stored document serialized for the API: the identifier is
// exposed as "id" (hex text) and timestamps as RFC3339 strings.
type Record map[string]interface{}

// Match describes a case-insensitive substring predicate against one field.
// AnyElement marks list-valued fields: the predicate holds if any element
// of the list contains the substring.
type Match struct {
	Substring  string
	AnyElement bool
}

// Filter maps field names to match predicates, combined with logical AND.
// An empty filter matches every record of the kind.
type Filter map[string]Match

// ListOptions controls result ordering and size. The zero value means
// no limit and no guaranteed order.
type ListOptions struct {
	Limit    int64
	SortBy   string
	SortDesc bool
}

// Store is the record store adapter: one collection per kind, plain
// document CRUD with no cross-document guarantees.
type Store interface {
	Create(ctx context.Context, kind Kind, doc bson.M) (string, error)
	Get(ctx context.Context, kind Kind, id string) (Record, error)
	List(ctx context.Context, kind Kind, filter Filter, opts ListOptions) ([]Record, error)
	Update(ctx context.Context, kind Kind, id string, fields bson.M) (Record, error)
	Delete(ctx context.Context, kind Kind, id string) error
	Count(ctx context.Context, kind Kind) (int64, error)
}

// ParseID validates an identifier before any store round-trip.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// serialize converts a stored document to its outbound form: "_id" becomes
// "id" as hex text and any datetime value is rendered as RFC3339.
func serialize(doc bson.M) Record {
	if doc == nil {
		return nil
	}
	rec := make(Record, len(doc))
	for key, val := range doc {
		switch v := val.(type) {
		case primitive.ObjectID:
			if key == "_id" {
				rec["id"] = v.Hex()
			} else {
				rec[key] = v.Hex()
			}
		case primitive.DateTime:
			rec[key] = v.Time().UTC().Format(time.RFC3339)
		case time.Time:
			rec[key] = v.UTC().Format(time.RFC3339)
		default:
			rec[key] = val
		}
	}
	return rec
}
