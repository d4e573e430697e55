package application

import (
	"errors"
	"testing"
	"time"

	"ecm-connector/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int          { return &v }
func stringPtr(v string) *string { return &v }
func boolPtr(v bool) *bool       { return &v }

func TestAuditServiceDisabled(t *testing.T) {
	service := NewAuditService(nil)

	assert.False(t, service.Enabled())
	assert.NoError(t, service.Ping())

	// must not panic
	service.Record(domain.AuditEntryRequest{Operation: "document.lock"})

	list, err := service.GetEntries(domain.QueryAuditRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Entries)
	assert.Equal(t, 1, *list.CurrentPage)
	assert.Equal(t, 100, *list.PerPage)
	assert.Equal(t, int64(0), *list.TotalItem)
}

func TestAuditServiceRecord(t *testing.T) {
	repo := &MockAuditRepository{
		CreateEntryFunc: func(request domain.AuditEntryRequest) (*domain.AuditEntryResponse, error) {
			return nil, errors.New("connection reset")
		},
	}
	service := NewAuditService(repo)
	request := domain.AuditEntryRequest{
		Operation:  "document.delete",
		DocumentID: "a",
		Status:     domain.AuditStatusFailure,
		Error:      "document not found",
		Duration:   15 * time.Millisecond,
	}

	// storage failures are swallowed
	service.Record(request)

	assert.True(t, service.Enabled())
	require.Len(t, repo.Created, 1)
	assert.Equal(t, request, repo.Created[0])
}

func TestAuditServiceGetEntries(t *testing.T) {
	tests := []struct {
		name         string
		condition    domain.QueryAuditRequest
		expectedPage domain.Pagination
		expectedSort domain.SortMethod
	}{
		{
			name:         "defaults",
			condition:    domain.QueryAuditRequest{},
			expectedPage: domain.Pagination{Limit: 100, Offset: 0},
			expectedSort: domain.SortMethod{OrderBy: "created_at"},
		},
		{
			name: "explicit page and order",
			condition: domain.QueryAuditRequest{
				Page:    intPtr(3),
				Limit:   intPtr(20),
				OrderBy: stringPtr("operation"),
				Asc:     boolPtr(true),
			},
			expectedPage: domain.Pagination{Limit: 20, Offset: 40},
			expectedSort: domain.SortMethod{OrderBy: "operation", Asc: true},
		},
		{
			name: "non-positive values fall back",
			condition: domain.QueryAuditRequest{
				Page:  intPtr(0),
				Limit: intPtr(-5),
			},
			expectedPage: domain.Pagination{Limit: 100, Offset: 0},
			expectedSort: domain.SortMethod{OrderBy: "created_at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockAuditRepository{}
			service := NewAuditService(repo)

			_, err := service.GetEntries(tt.condition)

			require.NoError(t, err)
			require.NotNil(t, repo.LastCondition)
			assert.Equal(t, tt.expectedPage, *repo.LastCondition.Pagination)
			assert.Equal(t, tt.expectedSort, *repo.LastCondition.SortMethod)
		})
	}
}

func TestAuditServicePing(t *testing.T) {
	repo := &MockAuditRepository{
		PingFunc: func() error { return errors.New("database is down") },
	}

	assert.EqualError(t, NewAuditService(repo).Ping(), "database is down")
}
