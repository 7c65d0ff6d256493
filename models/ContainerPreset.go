package models

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// ContainerPreset is a named reservoir or bottle the calculator can prefill.
type ContainerPreset struct {
	gorm.Model
	Slug     string  `gorm:"uniqueIndex;not null" json:"slug"`
	Name     string  `gorm:"not null" json:"name"`
	Size     float64 `gorm:"not null" json:"size"`
	Unit     string  `gorm:"type:varchar(16);not null" json:"unit"`
	System   string  `gorm:"type:varchar(16)" json:"system"`
	Position int     `gorm:"not null;default:0" json:"position"`
}

// Slugify derives a stable lookup key from a display name.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}

// BeforeSave fills in the slug when it was left blank.
func (p *ContainerPreset) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = Slugify(p.Name)
	}
	return nil
}
