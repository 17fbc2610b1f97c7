package models

import "time"

// KeywordRule persists one classifier keyword for a category
type KeywordRule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_keyword_rule" json:"category"`
	Keyword   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_keyword_rule" json:"keyword"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for KeywordRule model
func (KeywordRule) TableName() string {
	return "keyword_rules"
}
