package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// WatchList is a user-owned keyword/authority/sector filter matched against
// every newly ingested regulatory update.
type WatchList struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"not null;index" json:"user_id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Keywords    pq.StringArray `gorm:"type:text[]" json:"keywords"`
	Authorities pq.StringArray `gorm:"type:text[]" json:"authorities"`
	Sectors     pq.StringArray `gorm:"type:text[]" json:"sectors"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the WatchList model.
func (WatchList) TableName() string {
	return "watch_lists"
}

// MatchReason records which side of a watch list matched and what matched.
type MatchReason struct {
	Type    string   `json:"type"`
	Matched []string `json:"matched"`
}

// WatchListMatch joins a watch list to an update it matched. At most one row
// exists per (watch_list_id, regulatory_update_id) pair; re-matching upserts.
type WatchListMatch struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	WatchListID        uint           `gorm:"not null;uniqueIndex:idx_watch_list_update" json:"watch_list_id"`
	RegulatoryUpdateID uint           `gorm:"not null;uniqueIndex:idx_watch_list_update" json:"regulatory_update_id"`
	MatchScore         float64        `gorm:"not null" json:"match_score"`
	MatchReasons       datatypes.JSON `gorm:"type:jsonb" json:"match_reasons"`
	Dismissed          bool           `gorm:"default:false" json:"dismissed"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the WatchListMatch model.
func (WatchListMatch) TableName() string {
	return "watch_list_matches"
}
