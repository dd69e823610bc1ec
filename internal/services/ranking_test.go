package services

import (
	"context"
	"strings"
	"testing"

	"github.com/leewillemse/portfolio-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func seedProject(t *testing.T, st store.Store, title string, tech []string, highlights ...string) {
	t.Helper()
	_, err := st.Create(context.Background(), store.KindProject, bson.M{
		"title":       title,
		"description": "",
		"tech_stack":  tech,
		"highlights":  highlights,
	})
	require.NoError(t, err)
}

func seedCertificate(t *testing.T, st store.Store, title, organization, category, reflection string) {
	t.Helper()
	_, err := st.Create(context.Background(), store.KindCertificate, bson.M{
		"title":          title,
		"organization":   organization,
		"skill_category": category,
		"reflection":     reflection,
	})
	require.NoError(t, err)
}

func seedJournal(t *testing.T, st store.Store, title, content string, tags []string) {
	t.Helper()
	_, err := st.Create(context.Background(), store.KindJournalEntry, bson.M{
		"title":            title,
		"content_markdown": content,
		"tags":             tags,
	})
	require.NoError(t, err)
}

func titles(recs []store.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r["title"].(string))
	}
	return out
}

func TestAnswerQuestionScoresTokenOverlap(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedProject(t, st, "Data Pipeline", []string{"Python", "SQL"})
	seedProject(t, st, "Game Engine", []string{"C++"})

	_, results, err := AnswerQuestion(ctx, st, "python data", "projects")
	require.NoError(t, err)

	require.Len(t, results["projects"], 2)
	assert.Equal(t, []string{"Data Pipeline", "Game Engine"}, titles(results["projects"]))
}

func TestAnswerQuestionTokensMatchAsSubstrings(t *testing.T) {
	// "script" matches "JavaScript" inside the tech stack
	ctx := context.Background()
	st := store.NewMemory()
	seedProject(t, st, "Frontend", []string{"JavaScript"})
	seedProject(t, st, "Backend", []string{"Go"})

	_, results, err := AnswerQuestion(ctx, st, "script", "projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"Frontend", "Backend"}, titles(results["projects"]))
}

func TestAnswerQuestionTopFivePerKind(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	for _, title := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		seedProject(t, st, title, nil)
	}

	_, results, err := AnswerQuestion(ctx, st, "anything", "projects")
	require.NoError(t, err)
	assert.Len(t, results["projects"], 5)
}

func TestAnswerQuestionFocusRestrictsKinds(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedProject(t, st, "proj", []string{"Go"})
	seedCertificate(t, st, "cert", "org", "Backend", "")
	seedJournal(t, st, "entry", "notes", []string{"go"})

	_, results, err := AnswerQuestion(ctx, st, "go", "certificates")
	require.NoError(t, err)

	assert.NotContains(t, results, "projects")
	assert.NotContains(t, results, "journal")
	require.Len(t, results["certificates"], 1)
}

func TestAnswerQuestionUnrecognizedFocus(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedProject(t, st, "proj", []string{"Go"})

	_, results, err := AnswerQuestion(ctx, st, "go", "recipes")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAnswerQuestionEmptyFocusSearchesAllKinds(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedProject(t, st, "proj", []string{"Go"})
	seedCertificate(t, st, "cert", "org", "Backend", "")
	seedJournal(t, st, "entry", "notes", []string{"go", "testing", "sql", "docker"})

	answer, results, err := AnswerQuestion(ctx, st, "go", "")
	require.NoError(t, err)

	assert.Contains(t, results, "projects")
	assert.Contains(t, results, "certificates")
	assert.Contains(t, results, "journal")

	// sentences come in fixed order: projects, certificates, journal
	assert.Equal(t, "Top project: proj using Go. Recent certificate: cert in Backend. Learning focus: go, testing, sql.", answer)
}

func TestAnswerQuestionSummaryOnlyCertificates(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedCertificate(t, st, "AWS SAA", "Amazon", "Cloud", "learned IAM")

	answer, _, err := AnswerQuestion(ctx, st, "cloud", "")
	require.NoError(t, err)

	assert.Equal(t, "Recent certificate: AWS SAA in Cloud.", answer)
	assert.NotContains(t, answer, "Top project")
	assert.NotContains(t, answer, "Learning focus")
}

func TestAnswerQuestionEmptyQuestionKeepsStoreOrder(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedProject(t, st, "first", nil)
	seedProject(t, st, "second", nil)

	answer, results, err := AnswerQuestion(ctx, st, "", "projects")
	require.NoError(t, err)

	// all scores are zero; insertion order survives the stable sort
	assert.Equal(t, []string{"first", "second"}, titles(results["projects"]))
	// records exist, so the project sentence is still emitted
	assert.True(t, strings.HasPrefix(answer, "Top project: first"))
}

func TestAnswerQuestionNoRecordsEmptyAnswer(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	answer, results, err := AnswerQuestion(ctx, st, "anything", "")
	require.NoError(t, err)
	assert.Empty(t, answer)
	assert.Empty(t, results["projects"])
	assert.Empty(t, results["certificates"])
	assert.Empty(t, results["journal"])
}

func TestScoreTextCountsRepeatedTokens(t *testing.T) {
	text := "building data pipelines with python"
	assert.Equal(t, 2, scoreText(text, []string{"python", "data"}))
	assert.Equal(t, 2, scoreText(text, []string{"python", "python"}))
	assert.Equal(t, 0, scoreText(text, []string{"rust"}))
}
