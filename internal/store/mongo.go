package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a mongo.Database, one collection per kind.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) collection(kind Kind) *mongo.Collection {
	return s.db.Collection(kind.Collection())
}

func (s *MongoStore) Create(ctx context.Context, kind Kind, doc bson.M) (string, error) {
	id := primitive.NewObjectID()
	now := time.Now().UTC()

	insert := bson.M{"_id": id, "created_at": now, "updated_at": now}
	for k, v := range doc {
		if k == "_id" || k == "id" {
			continue
		}
		insert[k] = v
	}

	if _, err := s.collection(kind).InsertOne(ctx, insert); err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *MongoStore) Get(ctx context.Context, kind Kind, id string) (Record, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = s.collection(kind).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return serialize(doc), nil
}

func (s *MongoStore) List(ctx context.Context, kind Kind, filter Filter, opts ListOptions) ([]Record, error) {
	findOpts := options.Find()
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.SortBy != "" {
		dir := 1
		if opts.SortDesc {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortBy, Value: dir}})
	}

	cursor, err := s.collection(kind).Find(ctx, mongoQuery(filter), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, serialize(doc))
	}
	return records, nil
}

func (s *MongoStore) Update(ctx context.Context, kind Kind, id string, fields bson.M) (Record, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		if k == "_id" || k == "id" {
			continue
		}
		set[k] = v
	}

	res, err := s.collection(kind).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, kind, id)
}

func (s *MongoStore) Delete(ctx context.Context, kind Kind, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := s.collection(kind).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, kind Kind) (int64, error) {
	return s.collection(kind).CountDocuments(ctx, bson.M{})
}

// mongoQuery translates the store-neutral filter into a Mongo query.
// Substrings are quoted so user input is matched literally, not as a pattern.
func mongoQuery(filter Filter) bson.M {
	query := bson.M{}
	for field, match := range filter {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(match.Substring), Options: "i"}
		if match.AnyElement {
			query[field] = bson.M{"$elemMatch": bson.M{"$regex": rx}}
		} else {
			query[field] = bson.M{"$regex": rx}
		}
	}
	return query
}
