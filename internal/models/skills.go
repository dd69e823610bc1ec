package models

import "fmt"

// SkillSnapshot captures skill scores at a point in time, for evolution
// graphs and the "skills mastered" stat.
type SkillSnapshot struct {
	DateCaptured string         `bson:"date_captured" json:"date_captured"`
	Skills       map[string]int `bson:"skills" json:"skills"`
}

func (s *SkillSnapshot) Validate() error {
	if err := ValidateDate(s.DateCaptured, "date_captured"); err != nil {
		return err
	}
	for name, score := range s.Skills {
		if score < 0 || score > 100 {
			return fmt.Errorf("skill %q score must be between 0 and 100", name)
		}
	}
	return nil
}
