package models

import "errors"

// JournalEntry is a learning-journal post. Links to projects and
// certificates are by title text only; nothing enforces that the linked
// record exists.
type JournalEntry struct {
	Title                  string   `bson:"title" json:"title"`
	ContentMarkdown        string   `bson:"content_markdown" json:"content_markdown"`
	Tags                   []string `bson:"tags" json:"tags"`
	LinkedProjectTitle     string   `bson:"linked_project_title,omitempty" json:"linked_project_title,omitempty"`
	LinkedCertificateTitle string   `bson:"linked_certificate_title,omitempty" json:"linked_certificate_title,omitempty"`
	DateLogged             string   `bson:"date_logged" json:"date_logged"`
}

func (j *JournalEntry) Validate() error {
	if j.Title == "" {
		return errors.New("title is required")
	}
	if j.ContentMarkdown == "" {
		return errors.New("content_markdown is required")
	}
	return ValidateDate(j.DateLogged, "date_logged")
}
