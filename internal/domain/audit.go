package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntry struct - a mutating call issued through the gateway
type AuditEntry struct {
	ID         *uuid.UUID   `gorm:"type:uuid;primary_key;"`
	RequestID  *uuid.UUID   `gorm:"type:uuid;index"`
	Operation  *string      `gorm:"type:varchar(100);not null;index"`
	DocumentID *string      `gorm:"type:varchar(100);index"`
	Status     *AuditStatus `gorm:"type:varchar(10);not null;"`
	Error      *string      `gorm:"type:text"`
	DurationMs *int64       `gorm:"type:bigint"`
	CreatedAt  *time.Time   `gorm:"type:timestamp"`
}

// TableName func
func (a *AuditEntry) TableName() string {
	return "audit_entries"
}

// BeforeCreate hook - generates UUID before creating
func (a *AuditEntry) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	a.ID = &id
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&AuditEntry{})
	if err != nil {
		panic(err)
	}
}
