package entities

import "time"

// MapLayout is one saved map layout blob, scoped by owner.
type MapLayout struct {
	Owner string `gorm:"primaryKey;size:128" json:"owner"`
	Key   string `gorm:"primaryKey;column:layout_key;size:128" json:"key"`
	Blob  string `gorm:"type:text" json:"blob"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
