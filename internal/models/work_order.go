package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/xelth-com/eckshop/internal/services/classifier"
	"github.com/xelth-com/eckshop/internal/services/hardware"
)

// WorkOrderStatus defines possible work order statuses
type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "open"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// PartStatus tracks a part through the shop
type PartStatus string

const (
	PartStatusPending PartStatus = "pending"
	PartStatusCut     PartStatus = "cut"
	PartStatusDone    PartStatus = "done"
)

// WorkOrder groups the parts and hardware of one production job
type WorkOrder struct {
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Number    string          `gorm:"uniqueIndex;not null" json:"number"`
	Customer  string          `gorm:"index" json:"customer"`
	Status    WorkOrderStatus `gorm:"default:open;index" json:"status"`
	Notes     string          `gorm:"type:text" json:"notes"`
	Metadata  datatypes.JSON  `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	Parts    []Part         `gorm:"foreignKey:WorkOrderID" json:"parts,omitempty"`
	Hardware []HardwareItem `gorm:"foreignKey:WorkOrderID" json:"hardware,omitempty"`
}

// TableName specifies the table name for WorkOrder model
func (WorkOrder) TableName() string {
	return "work_orders"
}

// BeforeCreate assigns an ID and work order number
func (w *WorkOrder) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Number == "" {
		w.Number = generateWorkOrderNumber(time.Now())
	}
	return nil
}

// generateWorkOrderNumber creates a number like WO20260118-3F9A
func generateWorkOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return "WO" + now.Format("20060102") + "-" + suffix
}

// Part is a manufactured component of a work order
type Part struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	WorkOrderID string     `gorm:"type:varchar(36);not null;index" json:"work_order_id"`
	Name        string     `gorm:"not null" json:"name"`
	Status      PartStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Part model
func (Part) TableName() string {
	return "parts"
}

// ToClassifier converts the row into the classifier's view of a part
func (p Part) ToClassifier() classifier.Part {
	return classifier.Part{ID: strconv.FormatUint(uint64(p.ID), 10), Name: p.Name}
}

// IsDone reports whether the part finished processing
func (p Part) IsDone() bool {
	return p.Status == PartStatusDone
}

// HardwareItem is a raw hardware line item of a work order
type HardwareItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	WorkOrderID string          `gorm:"type:varchar(36);not null;index" json:"work_order_id"`
	Name        string          `gorm:"not null;index" json:"name"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	Status      hardware.Status `gorm:"type:varchar(20);default:pending" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for HardwareItem model
func (HardwareItem) TableName() string {
	return "hardware_items"
}

// ToRecord converts the row into a hardware consolidation record
func (h HardwareItem) ToRecord() hardware.Record {
	return hardware.Record{
		ID:          h.ID,
		Name:        h.Name,
		Quantity:    h.Quantity,
		Status:      h.Status,
		WorkOrderID: h.WorkOrderID,
	}
}
