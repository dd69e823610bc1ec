package services

import (
	"context"
	"testing"

	"github.com/leewillemse/portfolio-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func paramGetter(params map[string]string) func(string) string {
	return func(key string) string { return params[key] }
}

func TestBuildFilterNoParams(t *testing.T) {
	filter := BuildFilter(ProjectFilters, paramGetter(nil))
	assert.Empty(t, filter, "no parameters means match-all")
}

func TestBuildFilterProjectParams(t *testing.T) {
	filter := BuildFilter(ProjectFilters, paramGetter(map[string]string{"tag": "rust", "tech": "go"}))

	require.Len(t, filter, 2)
	assert.Equal(t, store.Match{Substring: "rust", AnyElement: true}, filter["highlights"])
	assert.Equal(t, store.Match{Substring: "go", AnyElement: true}, filter["tech_stack"])
}

func TestBuildFilterCertificateSkill(t *testing.T) {
	filter := BuildFilter(CertificateFilters, paramGetter(map[string]string{"skill": "Cloud"}))

	require.Len(t, filter, 1)
	assert.Equal(t, store.Match{Substring: "Cloud"}, filter["skill_category"])
}

func TestFilterMatchesHighlightSubstring(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	_, err := st.Create(ctx, store.KindProject, bson.M{
		"title":      "CLI tool",
		"highlights": []string{"Rewrote the parser in Rust"},
	})
	require.NoError(t, err)
	_, err = st.Create(ctx, store.KindProject, bson.M{
		"title":      "Dashboard",
		"highlights": []string{"Realtime charts"},
	})
	require.NoError(t, err)

	filter := BuildFilter(ProjectFilters, paramGetter(map[string]string{"tag": "rust"}))
	recs, err := ListItems(ctx, st, store.KindProject, filter, 0)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "CLI tool", recs[0]["title"])
}

func TestFilterParamsCombineWithAND(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	_, err := st.Create(ctx, store.KindProject, bson.M{
		"title":      "Match",
		"highlights": []string{"offline first"},
		"tech_stack": []string{"Go", "SQLite"},
	})
	require.NoError(t, err)
	_, err = st.Create(ctx, store.KindProject, bson.M{
		"title":      "Half match",
		"highlights": []string{"offline first"},
		"tech_stack": []string{"Python"},
	})
	require.NoError(t, err)

	filter := BuildFilter(ProjectFilters, paramGetter(map[string]string{"tag": "offline", "tech": "go"}))
	recs, err := ListItems(ctx, st, store.KindProject, filter, 0)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "Match", recs[0]["title"])
}
