package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// NotificationLog records one outbound mail attempt. Delivery is best-effort;
// the log is the only trace of a failed send.
type NotificationLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuotationID *uuid.UUID     `gorm:"type:uuid" json:"quotation_id"`
	Subject     string         `gorm:"size:255;not null" json:"subject"`
	Recipients  pq.StringArray `gorm:"type:text[]" json:"recipients"`
	Cc          pq.StringArray `gorm:"type:text[]" json:"cc"`
	Error       string         `gorm:"type:text" json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
