package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoQueryScalarMatch(t *testing.T) {
	query := mongoQuery(Filter{"skill_category": {Substring: "Backend"}})

	clause, ok := query["skill_category"].(bson.M)
	require.True(t, ok)
	rx, ok := clause["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "Backend", rx.Pattern)
	assert.Equal(t, "i", rx.Options)
}

func TestMongoQueryListMatch(t *testing.T) {
	query := mongoQuery(Filter{"tags": {Substring: "go", AnyElement: true}})

	clause, ok := query["tags"].(bson.M)
	require.True(t, ok)
	elem, ok := clause["$elemMatch"].(bson.M)
	require.True(t, ok)
	rx, ok := elem["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "go", rx.Pattern)
}

func TestMongoQueryQuotesRegexMeta(t *testing.T) {
	// user input is matched literally, never as a pattern
	query := mongoQuery(Filter{"title": {Substring: "c++"}})

	clause := query["title"].(bson.M)
	rx := clause["$regex"].(primitive.Regex)
	assert.Equal(t, `c\+\+`, rx.Pattern)
}

func TestMongoQueryEmptyFilter(t *testing.T) {
	assert.Empty(t, mongoQuery(nil))
	assert.Empty(t, mongoQuery(Filter{}))
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	parsed, err := ParseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)

	_, err = ParseID("12345")
	assert.ErrorIs(t, err, ErrInvalidID)
}
