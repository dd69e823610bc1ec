package models

import "errors"

// Profile is the site owner's hero/about content. The API treats it as a
// singleton: only the most recently created profile is ever served.
type Profile struct {
	Name            string   `bson:"name" json:"name"`
	Tagline         string   `bson:"tagline" json:"tagline"`
	Traits          []string `bson:"traits" json:"traits"`
	About           string   `bson:"about" json:"about"`
	AvatarURL       string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Location        string   `bson:"location,omitempty" json:"location,omitempty"`
	Email           string   `bson:"email,omitempty" json:"email,omitempty"`
	Website         string   `bson:"website,omitempty" json:"website,omitempty"`
	ResumeURL       string   `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	ThemePreference string   `bson:"theme_preference" json:"theme_preference"`
}

var themePreferences = map[string]bool{"light": true, "dark": true, "system": true}

// Validate checks required fields and applies defaults.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Tagline == "" {
		return errors.New("tagline is required")
	}
	if p.ThemePreference == "" {
		p.ThemePreference = "system"
	}
	if !themePreferences[p.ThemePreference] {
		return errors.New("theme_preference must be light, dark or system")
	}
	return nil
}
