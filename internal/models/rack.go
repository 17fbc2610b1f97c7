package models

import (
	"time"

	"github.com/xelth-com/eckshop/internal/services/classifier"
)

// Rack represents a storage rack or cart on the shop floor
type Rack struct {
	ID        int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string              `gorm:"type:varchar(100);not null" json:"name"`
	Prefix    string              `gorm:"type:varchar(10)" json:"prefix,omitempty"`
	Type      classifier.RackType `gorm:"type:varchar(32);not null;default:standard;index" json:"type"`
	Columns   int                 `gorm:"not null;default:1" json:"columns"`
	Rows      int                 `gorm:"not null;default:1" json:"rows"`
	SortOrder int                 `gorm:"default:0" json:"sort_order"`

	// Visual positioning on the floor plan
	PosX     int `gorm:"default:0" json:"posX"`
	PosY     int `gorm:"default:0" json:"posY"`
	Rotation int `gorm:"default:0" json:"rotation"` // 0, 90, 180, 270

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Rack) TableName() string { return "racks" }

// Capacity is the number of slots in the rack
func (r Rack) Capacity() int { return r.Columns * r.Rows }
