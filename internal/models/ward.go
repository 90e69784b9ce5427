package models

import "time"

// WardColor is constrained to a fixed palette used for visual grouping.
type WardColor string

const (
	WardColorRed    WardColor = "Red"
	WardColorGreen  WardColor = "Green"
	WardColorBlue   WardColor = "Blue"
	WardColorYellow WardColor = "Yellow"
)

// AllowedWardColors lists every accepted ward color. Matching against
// it is case-insensitive; the stored value keeps the caller's casing.
var AllowedWardColors = []WardColor{WardColorRed, WardColorGreen, WardColorBlue, WardColorYellow}

type Ward struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	WardName  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wards_name_color" json:"wardName"`
	WardColor string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_wards_name_color" json:"wardColor"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Nurses []Nurse `gorm:"foreignKey:WardID" json:"nurses,omitempty"`
}
