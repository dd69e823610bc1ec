package models

import "errors"

// Certificate is a completed course or certification.
type Certificate struct {
	Title         string `bson:"title" json:"title"`
	Organization  string `bson:"organization" json:"organization"`
	DateAwarded   string `bson:"date_awarded" json:"date_awarded"`
	SkillCategory string `bson:"skill_category" json:"skill_category"`
	AssetURL      string `bson:"asset_url,omitempty" json:"asset_url,omitempty"`
	Reflection    string `bson:"reflection" json:"reflection"`
}

func (c *Certificate) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Organization == "" {
		return errors.New("organization is required")
	}
	if err := ValidateDate(c.DateAwarded, "date_awarded"); err != nil {
		return err
	}
	if c.SkillCategory == "" {
		return errors.New("skill_category is required")
	}
	return nil
}
