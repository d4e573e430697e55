package postgres

import (
	"net/url"

	"ecm-connector/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// sortable columns of audit_entries
var auditOrderColumns = map[string]bool{
	"created_at":  true,
	"operation":   true,
	"document_id": true,
	"status":      true,
	"duration_ms": true,
}

// AuditRepository struct - Secondary/Driven adapter for PostgreSQL
type AuditRepository struct {
	dbGorm *gorm.DB
}

// NewAuditRepository func - Creates new PostgreSQL repository
func NewAuditRepository(dbGorm *gorm.DB) *AuditRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &AuditRepository{
		dbGorm: dbGorm,
	}
}

// CreateEntry func - Stores one audit entry
func (p *AuditRepository) CreateEntry(request domain.AuditEntryRequest) (*domain.AuditEntryResponse, error) {
	var response domain.AuditEntryResponse

	status := request.Status
	durationMs := request.Duration.Milliseconds()
	entry := domain.AuditEntry{
		RequestID:  request.RequestID,
		Operation:  &request.Operation,
		Status:     &status,
		DurationMs: &durationMs,
	}
	if request.DocumentID != "" {
		entry.DocumentID = &request.DocumentID
	}
	if request.Error != "" {
		entry.Error = &request.Error
	}

	if err := p.dbGorm.Create(&entry).Error; err != nil {
		logrus.Errorln(err)
		return &response, err
	}
	response = toAuditResponse(entry)
	return &response, nil
}

func (p *AuditRepository) condition(condition domain.QueryAuditRequest) map[string]interface{} {
	expression := make(map[string]interface{})
	if condition.Status != nil {
		expression["status"] = *condition.Status
	}
	if condition.DocumentID != nil {
		expression["document_id"] = *condition.DocumentID
	}
	return expression
}

// GetEntries func - Retrieves audit entries with filtering and pagination
func (p *AuditRepository) GetEntries(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error) {
	var (
		entry   domain.AuditEntry
		entries []domain.AuditEntry
	)
	cond := p.condition(condition)
	tx := p.dbGorm.Where(cond)

	if condition.Operation != nil {
		keyword, err := url.QueryUnescape(*condition.Operation)
		if err != nil {
			logrus.Errorln(err)
			return nil, err
		}
		tx = tx.Where("operation ILIKE ? ", "%"+keyword+"%")
	}

	var totalItem int64
	tx.Model(&entry).Count(&totalItem)

	order := "created_at"
	asc := false
	if condition.SortMethod != nil {
		if auditOrderColumns[condition.SortMethod.OrderBy] {
			order = condition.SortMethod.OrderBy
		}
		asc = condition.SortMethod.Asc
	}
	if asc {
		tx = tx.Order(order + " ASC")
	} else {
		tx = tx.Order(order + " DESC")
	}
	if condition.Pagination != nil {
		tx = tx.Limit(condition.Pagination.Limit).Offset(condition.Pagination.Offset)
	}

	tx.Find(&entries)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}

	result := domain.AuditListResponse{
		Entries: []domain.AuditEntryResponse{},
	}
	result.CurrentPage = condition.Page
	if condition.Pagination != nil {
		result.PerPage = &condition.Pagination.Limit
	}
	result.TotalItem = &totalItem
	for _, e := range entries {
		result.Entries = append(result.Entries, toAuditResponse(e))
	}
	return &result, nil
}

// Ping func - Checks the database connection
func (p *AuditRepository) Ping() error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func toAuditResponse(entry domain.AuditEntry) domain.AuditEntryResponse {
	return domain.AuditEntryResponse{
		ID:         entry.ID,
		RequestID:  entry.RequestID,
		Operation:  entry.Operation,
		DocumentID: entry.DocumentID,
		Status:     entry.Status,
		Error:      entry.Error,
		DurationMs: entry.DurationMs,
		CreatedAt:  entry.CreatedAt,
	}
}
