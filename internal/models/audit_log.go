package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit actions recorded for every mutating admin operation.
const (
	AuditActionLogin    = "login"
	AuditActionCreate   = "create"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionApprove  = "approve"
	AuditActionRegister = "register"
	AuditActionSeed     = "seed"
)

// AuditLog is an append-only record of who did what to which entity. Entries
// are never updated or deleted. Details is a best-effort diagnostic bag, not a
// queryable structured field.
type AuditLog struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	AdminUsername string            `gorm:"size:128;index;not null" json:"admin_username"`
	Action        string            `gorm:"size:32;index;not null" json:"action"`
	EntityType    string            `gorm:"size:64;index;not null" json:"entity_type"`
	EntityID      string            `gorm:"size:64" json:"entity_id,omitempty"`
	Details       datatypes.JSONMap `gorm:"type:json" json:"details,omitempty"`
	CreatedAt     time.Time         `gorm:"index" json:"created_at"`
}
