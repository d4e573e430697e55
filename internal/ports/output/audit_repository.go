package output

import "ecm-connector/internal/domain"

// AuditRepository interface - Output port
// Defines what the application needs from audit persistence
type AuditRepository interface {
	CreateEntry(request domain.AuditEntryRequest) (*domain.AuditEntryResponse, error)
	GetEntries(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error)
	Ping() error
}
