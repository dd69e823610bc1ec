package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/leewillemse/portfolio-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxAnswerResults caps how many records each kind contributes to an answer.
const maxAnswerResults = 5

// searchSpec declares which fields of a kind make up its search text and
// which focus values select it.
type searchSpec struct {
	kind       store.Kind
	key        string
	textFields []string
	listFields []string
	focusNames []string
}

var searchSpecs = []searchSpec{
	{
		kind:       store.KindProject,
		key:        "projects",
		textFields: []string{"title", "description"},
		listFields: []string{"tech_stack", "highlights"},
		focusNames: []string{"project", "projects"},
	},
	{
		kind:       store.KindCertificate,
		key:        "certificates",
		textFields: []string{"title", "organization", "skill_category", "reflection"},
		focusNames: []string{"certificate", "certificates"},
	},
	{
		kind:       store.KindJournalEntry,
		key:        "journal",
		textFields: []string{"title", "content_markdown"},
		listFields: []string{"tags"},
		focusNames: []string{"journal"},
	},
}

func (s searchSpec) selectedBy(focus string) bool {
	if focus == "" {
		return true
	}
	for _, name := range s.focusNames {
		if focus == name {
			return true
		}
	}
	return false
}

// AnswerQuestion ranks records of the focused kinds against the question and
// returns a short narrative summary plus the top matches per kind. An empty
// focus searches projects, certificates and journal; an unrecognized focus
// matches no kind.
func AnswerQuestion(ctx context.Context, st store.Store, question, focus string) (string, map[string][]store.Record, error) {
	tokens := strings.Fields(strings.ToLower(question))
	focus = strings.ToLower(strings.TrimSpace(focus))

	results := make(map[string][]store.Record)
	for _, spec := range searchSpecs {
		if !spec.selectedBy(focus) {
			continue
		}
		// Retrieval sorted by creation time so equal scores tie-break
		// deterministically on insertion order.
		records, err := st.List(ctx, spec.kind, nil, store.ListOptions{SortBy: "created_at"})
		if err != nil {
			return "", nil, err
		}
		results[spec.key] = rankRecords(records, tokens, spec)
	}
	return buildSummary(results), results, nil
}

// rankRecords orders records by token score descending. The sort is stable,
// so ties keep the retrieval order.
func rankRecords(records []store.Record, tokens []string, spec searchSpec) []store.Record {
	type scored struct {
		record store.Record
		score  int
	}
	ranked := make([]scored, 0, len(records))
	for _, rec := range records {
		ranked = append(ranked, scored{record: rec, score: scoreText(searchText(rec, spec), tokens)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]store.Record, 0, maxAnswerResults)
	for i, s := range ranked {
		if i == maxAnswerResults {
			break
		}
		out = append(out, s.record)
	}
	return out
}

// scoreText counts question tokens occurring as substrings of the search
// text. Repeated tokens count each time.
func scoreText(text string, tokens []string) int {
	score := 0
	for _, token := range tokens {
		if token != "" && strings.Contains(text, token) {
			score++
		}
	}
	return score
}

// searchText concatenates the kind's designated text and list fields,
// space-joined and lower-cased.
func searchText(rec store.Record, spec searchSpec) string {
	parts := make([]string, 0, len(spec.textFields)+len(spec.listFields))
	for _, field := range spec.textFields {
		parts = append(parts, stringField(rec, field))
	}
	for _, field := range spec.listFields {
		parts = append(parts, joinList(rec[field], " "))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// buildSummary produces the narrative answer: one sentence per kind that has
// results, in the fixed order projects, certificates, journal.
func buildSummary(results map[string][]store.Record) string {
	var parts []string
	if recs := results["projects"]; len(recs) > 0 {
		top := recs[0]
		parts = append(parts, fmt.Sprintf("Top project: %s using %s.",
			stringField(top, "title"), joinList(top["tech_stack"], ", ")))
	}
	if recs := results["certificates"]; len(recs) > 0 {
		top := recs[0]
		parts = append(parts, fmt.Sprintf("Recent certificate: %s in %s.",
			stringField(top, "title"), stringField(top, "skill_category")))
	}
	if recs := results["journal"]; len(recs) > 0 {
		top := recs[0]
		parts = append(parts, fmt.Sprintf("Learning focus: %s.",
			joinList(firstN(top["tags"], 3), ", ")))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func stringField(rec store.Record, field string) string {
	s, _ := rec[field].(string)
	return s
}

func joinList(val interface{}, sep string) string {
	elems := listElements(val)
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		parts = append(parts, fmt.Sprint(e))
	}
	return strings.Join(parts, sep)
}

func firstN(val interface{}, n int) []interface{} {
	elems := listElements(val)
	if len(elems) > n {
		elems = elems[:n]
	}
	return elems
}

func listElements(val interface{}) []interface{} {
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
