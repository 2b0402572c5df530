package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records an admin mutation (who, what, and the change payload).
type AuditLog struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	ActorID    uint           `gorm:"index" json:"actor_id"`
	ActorEmail string         `json:"actor_email"`
	Action     string         `gorm:"size:64;not null;index" json:"action"`
	Entity     string         `gorm:"size:64" json:"entity"`
	EntityID   uint           `json:"entity_id"`
	Detail     datatypes.JSON `gorm:"type:jsonb" json:"detail" swaggertype:"object"`
}

// TableName overrides the table name
func (AuditLog) TableName() string {
	return "audit_logs"
}
