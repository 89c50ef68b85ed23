// models/tree.go
package models

import (
	"strings"
	"time"
)

// UserTree is one growth-tree instance. GrowthStage is derived from
// XPContributed and never decreases.
type UserTree struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	User          *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TreeType      string     `json:"tree_type" gorm:"not null;size:50"` // oak, cherry, rainbow
	GrowthStage   int        `json:"growth_stage" gorm:"default:1"`     // 1-5
	XPContributed int        `json:"xp_contributed" gorm:"default:0"`
	Decorations   string     `json:"-" gorm:"type:text"` // comma-separated identifiers
	PlantedAt     time.Time  `json:"planted_at"`
	LastWatered   *time.Time `json:"last_watered,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (UserTree) TableName() string {
	return "user_trees"
}

// DecorationList returns the decorations as a slice. Empty trees return an
// empty slice, not nil, so JSON encodes as [].
func (t *UserTree) DecorationList() []string {
	if t.Decorations == "" {
		return []string{}
	}
	return strings.Split(t.Decorations, ",")
}

// HasDecoration reports whether the tree already carries the decoration.
func (t *UserTree) HasDecoration(decoration string) bool {
	for _, d := range t.DecorationList() {
		if d == decoration {
			return true
		}
	}
	return false
}

// AddDecoration attaches a decoration. Adding one the tree already has is a
// no-op; the set stays deduplicated.
func (t *UserTree) AddDecoration(decoration string) {
	if decoration == "" || t.HasDecoration(decoration) {
		return
	}
	if t.Decorations == "" {
		t.Decorations = decoration
		return
	}
	t.Decorations += "," + decoration
}
