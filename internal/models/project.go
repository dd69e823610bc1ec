package models

import "errors"

// Project is a portfolio project entry.
type Project struct {
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	ThumbnailURL string   `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	TechStack    []string `bson:"tech_stack" json:"tech_stack"`
	GithubURL    string   `bson:"github_url,omitempty" json:"github_url,omitempty"`
	LiveDemoURL  string   `bson:"live_demo_url,omitempty" json:"live_demo_url,omitempty"`
	Highlights   []string `bson:"highlights" json:"highlights"`
	Challenges   []string `bson:"challenges" json:"challenges"`
	Solutions    []string `bson:"solutions" json:"solutions"`
	Year         int      `bson:"year,omitempty" json:"year,omitempty"`
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	return nil
}
