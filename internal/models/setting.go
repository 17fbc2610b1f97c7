package models

import "time"

// SettingKeywordRulesSeeded marks that the keyword rule table has been
// initialised. Once set, an empty table means every keyword was removed.
const SettingKeywordRulesSeeded = "keyword_rules.seeded"

// Setting is a persisted key/value flag
type Setting struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Setting model
func (Setting) TableName() string {
	return "settings"
}
