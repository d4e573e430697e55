package application

import (
	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// AuditService struct - Application service for the audit log.
// With a nil repository every call is a no-op.
type AuditService struct {
	repo output.AuditRepository
}

// NewAuditService func - Creates new audit service
func NewAuditService(repo output.AuditRepository) *AuditService {
	if repo == nil {
		logrus.Warn("Audit log disabled: no database configured")
	}
	return &AuditService{
		repo: repo,
	}
}

// Enabled func
func (s *AuditService) Enabled() bool {
	return s.repo != nil
}

// Record func - Use case: store one gateway call. Failures are logged, not returned.
func (s *AuditService) Record(request domain.AuditEntryRequest) {
	if s.repo == nil {
		return
	}
	if _, err := s.repo.CreateEntry(request); err != nil {
		logrus.Warnf("Audit entry for %s not stored: %v", request.Operation, err)
	}
}

// GetEntries func - Use case: list audit entries with pagination and filtering
func (s *AuditService) GetEntries(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error) {
	var (
		page    int
		perPage int
	)
	if condition.Page != nil && *condition.Page > 0 {
		page = *condition.Page
	} else {
		page = 1
	}
	condition.Page = &page
	if condition.Limit != nil && *condition.Limit > 0 {
		perPage = *condition.Limit
	} else {
		perPage = 100
	}
	condition.Limit = &perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}

	sort := domain.SortMethod{OrderBy: "created_at"}
	if condition.OrderBy != nil {
		sort.OrderBy = *condition.OrderBy
	}
	if condition.Asc != nil {
		sort.Asc = *condition.Asc
	}
	condition.SortMethod = &sort

	if s.repo == nil {
		total := int64(0)
		return &domain.AuditListResponse{
			Entries:     []domain.AuditEntryResponse{},
			CurrentPage: condition.Page,
			PerPage:     condition.Limit,
			TotalItem:   &total,
		}, nil
	}
	return s.repo.GetEntries(condition)
}

// Ping func - Checks the audit database; nil when the log is disabled
func (s *AuditService) Ping() error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Ping()
}
