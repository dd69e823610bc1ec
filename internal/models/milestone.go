package models

import "errors"

// Milestone is a timeline entry for story mode.
type Milestone struct {
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	DateAchieved string `bson:"date_achieved" json:"date_achieved"`
	Kind         string `bson:"kind" json:"kind"`
}

var milestoneKinds = map[string]bool{
	"start":     true,
	"challenge": true,
	"win":       true,
	"launch":    true,
	"general":   true,
}

func (m *Milestone) Validate() error {
	if m.Title == "" {
		return errors.New("title is required")
	}
	if m.Description == "" {
		return errors.New("description is required")
	}
	if err := ValidateDate(m.DateAchieved, "date_achieved"); err != nil {
		return err
	}
	if m.Kind == "" {
		m.Kind = "general"
	}
	if !milestoneKinds[m.Kind] {
		return errors.New("kind must be one of start, challenge, win, launch, general")
	}
	return nil
}
