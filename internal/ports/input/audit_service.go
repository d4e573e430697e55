package input

import "ecm-connector/internal/domain"

// AuditService interface - Input port (use case)
// Defines what the application can do with the audit log
type AuditService interface {
	Record(request domain.AuditEntryRequest)
	GetEntries(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error)
	Enabled() bool
	Ping() error
}
