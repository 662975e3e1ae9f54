package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LogEntry stores structured ERROR+ logs in the local database for later
// diagnosis.
type LogEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
	Level     string         `gorm:"size:10;not null;index" json:"level"`
	Message   string         `gorm:"type:text" json:"message"`
	Action    string         `gorm:"size:100" json:"action"`
	Error     string         `gorm:"type:text" json:"error"`
	Extra     datatypes.JSON `gorm:"type:json" json:"extra"`
	CreatedAt time.Time      `json:"created_at"`
}
