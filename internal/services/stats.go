package services

import (
	"context"

	"github.com/leewillemse/portfolio-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// Stats are the aggregate figures for recruiter mode. Every call recomputes
// from the live store; nothing is cached.
type Stats struct {
	TotalProjects       int64 `json:"total_projects"`
	TotalCertificates   int64 `json:"total_certificates"`
	TotalJournalEntries int64 `json:"total_journal_entries"`
	SkillsMastered      int   `json:"skills_mastered"`
}

// CollectStats counts each collection and derives skills_mastered from the
// most recently captured skill snapshot (0 when no snapshot exists).
func CollectStats(ctx context.Context, st store.Store) (Stats, error) {
	var stats Stats
	var err error

	if stats.TotalProjects, err = st.Count(ctx, store.KindProject); err != nil {
		return Stats{}, err
	}
	if stats.TotalCertificates, err = st.Count(ctx, store.KindCertificate); err != nil {
		return Stats{}, err
	}
	if stats.TotalJournalEntries, err = st.Count(ctx, store.KindJournalEntry); err != nil {
		return Stats{}, err
	}

	latest, err := st.List(ctx, store.KindSkillSnapshot, nil, store.ListOptions{
		Limit:    1,
		SortBy:   "date_captured",
		SortDesc: true,
	})
	if err != nil {
		return Stats{}, err
	}
	if len(latest) > 0 {
		stats.SkillsMastered = skillCount(latest[0]["skills"])
	}
	return stats, nil
}

func skillCount(val interface{}) int {
	switch skills := val.(type) {
	case bson.M:
		return len(skills)
	case map[string]interface{}:
		return len(skills)
	case map[string]int:
		return len(skills)
	default:
		return 0
	}
}
