package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	docID  = "4b1d2c1e-7f6b-4d7e-9a53-1f0c3a2b9d10"
	docID2 = "9e3f8a70-2b4c-4a1d-8c55-6d7e8f901a2b"
)

// Mock implementations for testing. Embedded interfaces cover the methods a
// test does not use; calling one of those panics.

// MockDocumentService implements input.DocumentService for testing
type MockDocumentService struct {
	input.DocumentService

	ListDocumentIDsFunc                func(ctx context.Context) ([]string, error)
	ListDocumentIDsModifiedBetweenFunc func(ctx context.Context, from, to time.Time) ([]string, error)
	GetDocumentFunc                    func(ctx context.Context, id string) (*domain.Document, error)
	GetBlobFunc                        func(ctx context.Context, id string) (*domain.Blob, error)
	GetACLsFunc                        func(ctx context.Context, id string) (string, error)

	// Captured values for assertions
	Calls int
}

func (m *MockDocumentService) ListDocumentIDs(ctx context.Context) ([]string, error) {
	m.Calls++
	return m.ListDocumentIDsFunc(ctx)
}

func (m *MockDocumentService) ListDocumentIDsModifiedBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	m.Calls++
	return m.ListDocumentIDsModifiedBetweenFunc(ctx, from, to)
}

func (m *MockDocumentService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	m.Calls++
	return m.GetDocumentFunc(ctx, id)
}

func (m *MockDocumentService) GetBlob(ctx context.Context, id string) (*domain.Blob, error) {
	m.Calls++
	return m.GetBlobFunc(ctx, id)
}

func (m *MockDocumentService) GetACLs(ctx context.Context, id string) (string, error) {
	m.Calls++
	return m.GetACLsFunc(ctx, id)
}

func (m *MockDocumentService) SessionStatus() domain.SessionStatus {
	return domain.SessionStatus{Binding: "automation"}
}

// MockLifecycleService implements input.DocumentLifecycleService for testing
type MockLifecycleService struct {
	input.DocumentLifecycleService

	CreateDocumentFunc func(ctx context.Context, parent domain.OperationInput, docType string, properties domain.PropertyMap) (*domain.Document, error)
	DeleteDocumentFunc func(ctx context.Context, doc domain.OperationInput) error
	LockDocumentFunc   func(ctx context.Context, doc domain.OperationInput) (*domain.Document, error)
	CreateVersionFunc  func(ctx context.Context, doc domain.OperationInput, increment domain.VersionIncrement, save bool) (*domain.Document, error)
}

func (m *MockLifecycleService) CreateDocument(ctx context.Context, parent domain.OperationInput, docType string, properties domain.PropertyMap) (*domain.Document, error) {
	return m.CreateDocumentFunc(ctx, parent, docType, properties)
}

func (m *MockLifecycleService) DeleteDocument(ctx context.Context, doc domain.OperationInput) error {
	return m.DeleteDocumentFunc(ctx, doc)
}

func (m *MockLifecycleService) LockDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error) {
	return m.LockDocumentFunc(ctx, doc)
}

func (m *MockLifecycleService) CreateVersion(ctx context.Context, doc domain.OperationInput, increment domain.VersionIncrement, save bool) (*domain.Document, error) {
	return m.CreateVersionFunc(ctx, doc, increment, save)
}

// MockCollectionService implements input.CollectionService for testing
type MockCollectionService struct {
	input.CollectionService

	AddDocumentsToCollectionFunc func(ctx context.Context, collection domain.OperationInput, documents domain.DocumentList) error
}

func (m *MockCollectionService) AddDocumentsToCollection(ctx context.Context, collection domain.OperationInput, documents domain.DocumentList) error {
	return m.AddDocumentsToCollectionFunc(ctx, collection, documents)
}

// MockCMISService implements input.CMISService for testing
type MockCMISService struct {
	input.CMISService

	GetObjectFunc func(ctx context.Context, id string) (*domain.CMISObject, error)
	QueryFunc     func(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error)
}

func (m *MockCMISService) GetObject(ctx context.Context, id string) (*domain.CMISObject, error) {
	return m.GetObjectFunc(ctx, id)
}

func (m *MockCMISService) Query(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error) {
	return m.QueryFunc(ctx, statement, searchAllVersions)
}

func (m *MockCMISService) SessionStatus() domain.SessionStatus {
	return domain.SessionStatus{Binding: "cmis"}
}

// MockAuditService implements input.AuditService for testing
type MockAuditService struct {
	PingErr        error
	GetEntriesFunc func(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error)

	// Captured values for assertions
	Recorded []domain.AuditEntryRequest
}

func (m *MockAuditService) Record(request domain.AuditEntryRequest) {
	m.Recorded = append(m.Recorded, request)
}

func (m *MockAuditService) GetEntries(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error) {
	return m.GetEntriesFunc(condition)
}

func (m *MockAuditService) Enabled() bool {
	return true
}

func (m *MockAuditService) Ping() error {
	return m.PingErr
}

type testGateway struct {
	app         *fiber.App
	documents   *MockDocumentService
	lifecycle   *MockLifecycleService
	collections *MockCollectionService
	cmis        *MockCMISService
	audit       *MockAuditService
}

func newTestGateway(withCMIS bool) *testGateway {
	g := &testGateway{
		app:         fiber.New(),
		documents:   &MockDocumentService{},
		lifecycle:   &MockLifecycleService{},
		collections: &MockCollectionService{},
		audit:       &MockAuditService{},
	}
	services := Services{
		Documents:   g.documents,
		Lifecycle:   g.lifecycle,
		Collections: g.collections,
		Audit:       g.audit,
	}
	if withCMIS {
		g.cmis = &MockCMISService{}
		services.CMIS = g.cmis
	}
	New(services).Register(g.app)
	return g
}

func (g *testGateway) do(t *testing.T, method, target, body string, headers ...string) (int, ResponseBody, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := g.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded ResponseBody
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded, string(raw)
}

func TestHealthCheck(t *testing.T) {
	g := newTestGateway(true)

	code, body, _ := g.do(t, fiber.MethodGet, "/health", "")

	assert.Equal(t, fiber.StatusOK, code)
	data := body.Data.(map[string]interface{})
	sessions := data["sessions"].([]interface{})
	require.Len(t, sessions, 2)
	assert.Equal(t, "automation", sessions[0].(map[string]interface{})["binding"])
	assert.Equal(t, "cmis", sessions[1].(map[string]interface{})["binding"])

	g.audit.PingErr = errors.New("database is down")
	code, _, _ = g.do(t, fiber.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
}

func TestGetDocumentRejectsInvalidID(t *testing.T) {
	g := newTestGateway(false)

	code, body, _ := g.do(t, fiber.MethodGet, "/v1/api/documents/not-a-uuid", "")

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body.Status.Message[0], "not a document uuid")
	assert.Zero(t, g.documents.Calls)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: fmt.Errorf("%w: %s", domain.ErrNotFound, docID), expected: fiber.StatusNotFound},
		{name: "ambiguous", err: domain.ErrAmbiguousResult, expected: fiber.StatusConflict},
		{name: "invalid", err: domain.ErrInvalidRequest, expected: fiber.StatusBadRequest},
		{name: "remote forbidden", err: &domain.RemoteError{StatusCode: 403, Message: "denied"}, expected: fiber.StatusForbidden},
		{name: "remote failure", err: &domain.RemoteError{StatusCode: 500, Message: "boom"}, expected: fiber.StatusBadGateway},
		{name: "connection", err: fmt.Errorf("%w: automation: refused", domain.ErrConnection), expected: fiber.StatusBadGateway},
		{
			name:     "connection refused by the backend",
			err:      fmt.Errorf("%w: automation: %w", domain.ErrConnection, &domain.RemoteError{StatusCode: 401, Message: "bad credentials"}),
			expected: fiber.StatusBadGateway,
		},
		{
			name:     "connection to an unknown repository",
			err:      fmt.Errorf("%w: cmis: %w", domain.ErrConnection, &domain.RemoteError{StatusCode: 404, Message: "repository not found"}),
			expected: fiber.StatusBadGateway,
		},
		{name: "unknown", err: errors.New("boom"), expected: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(false)
			g.documents.GetDocumentFunc = func(ctx context.Context, id string) (*domain.Document, error) {
				return nil, tt.err
			}

			code, body, _ := g.do(t, fiber.MethodGet, "/v1/api/documents/"+docID, "")

			assert.Equal(t, tt.expected, code)
			assert.Equal(t, tt.expected, body.Status.Code)
			assert.Equal(t, []string{tt.err.Error()}, body.Status.Message)
		})
	}
}

func TestGetDocument(t *testing.T) {
	g := newTestGateway(false)
	g.documents.GetDocumentFunc = func(ctx context.Context, id string) (*domain.Document, error) {
		return &domain.Document{
			ID:         id,
			Title:      "Report",
			Properties: domain.PropertyMap{"dc:title": "Report"},
		}, nil
	}

	code, body, _ := g.do(t, fiber.MethodGet, "/v1/api/documents/"+docID, "")

	assert.Equal(t, fiber.StatusOK, code)
	data := body.Data.(map[string]interface{})
	assert.Equal(t, docID, data["id"])
	assert.Equal(t, "Report", data["title"])
	assert.Equal(t, map[string]interface{}{"dc:title": "Report"}, data["properties"])
}

func TestListDocuments(t *testing.T) {
	g := newTestGateway(false)
	g.documents.ListDocumentIDsFunc = func(ctx context.Context) ([]string, error) {
		return []string{docID}, nil
	}
	var from, to time.Time
	g.documents.ListDocumentIDsModifiedBetweenFunc = func(ctx context.Context, start, end time.Time) ([]string, error) {
		from, to = start, end
		return []string{}, nil
	}

	code, body, _ := g.do(t, fiber.MethodGet, "/v1/api/documents", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, map[string]interface{}{"ids": []interface{}{docID}}, body.Data)

	code, _, _ = g.do(t, fiber.MethodGet, "/v1/api/documents?from=2024-03-01&to=2024-03-31", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), to)

	code, _, _ = g.do(t, fiber.MethodGet, "/v1/api/documents?from=2024-03-01", "")
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _, _ = g.do(t, fiber.MethodGet, "/v1/api/documents?from=01/03/2024&to=2024-03-31", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestGetDocumentBlob(t *testing.T) {
	g := newTestGateway(false)
	g.documents.GetBlobFunc = func(ctx context.Context, id string) (*domain.Blob, error) {
		return &domain.Blob{FileName: "report.pdf", MimeType: "application/pdf", Data: []byte("%PDF-1.7")}, nil
	}

	req := httptest.NewRequest(fiber.MethodGet, "/v1/api/documents/"+docID+"/blob", nil)
	resp, err := g.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "report.pdf")
	assert.Equal(t, "%PDF-1.7", string(raw))
}

func TestGetDocumentACLPassesJSONThrough(t *testing.T) {
	g := newTestGateway(false)
	g.documents.GetACLsFunc = func(ctx context.Context, id string) (string, error) {
		return `{"entity-type":"acls","acl":[]}`, nil
	}

	code, body, _ := g.do(t, fiber.MethodGet, "/v1/api/documents/"+docID+"/acl", "")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "acls", body.Data.(map[string]interface{})["entity-type"])
}

func TestDeleteDocumentIsAudited(t *testing.T) {
	g := newTestGateway(false)
	g.lifecycle.DeleteDocumentFunc = func(ctx context.Context, doc domain.OperationInput) error {
		assert.Equal(t, "doc:"+docID, doc.InputRef())
		return &domain.RemoteError{StatusCode: 404, Operation: "Document.Delete", Message: "not found"}
	}

	code, _, _ := g.do(t, fiber.MethodDelete, "/v1/api/documents/"+docID, "")

	assert.Equal(t, fiber.StatusNotFound, code)
	require.Len(t, g.audit.Recorded, 1)
	entry := g.audit.Recorded[0]
	assert.Equal(t, "document.delete", entry.Operation)
	assert.Equal(t, docID, entry.DocumentID)
	assert.Equal(t, domain.AuditStatusFailure, entry.Status)
	assert.Contains(t, entry.Error, "not found")
	assert.NotNil(t, entry.RequestID)
}

func TestLockDocumentKeepsIncomingRequestID(t *testing.T) {
	g := newTestGateway(false)
	g.lifecycle.LockDocumentFunc = func(ctx context.Context, doc domain.OperationInput) (*domain.Document, error) {
		return &domain.Document{ID: docID, LockOwner: "jdoe"}, nil
	}
	requestID := uuid.New()

	req := httptest.NewRequest(fiber.MethodPost, "/v1/api/documents/"+docID+"/lock", nil)
	req.Header.Set(HeaderRequestID, requestID.String())
	resp, err := g.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, requestID.String(), resp.Header.Get(HeaderRequestID))
	require.Len(t, g.audit.Recorded, 1)
	assert.Equal(t, domain.AuditStatusSuccess, g.audit.Recorded[0].Status)
	assert.Equal(t, requestID, *g.audit.Recorded[0].RequestID)
}

func TestCreateVersionValidation(t *testing.T) {
	g := newTestGateway(false)
	var increment domain.VersionIncrement
	g.lifecycle.CreateVersionFunc = func(ctx context.Context, doc domain.OperationInput, i domain.VersionIncrement, save bool) (*domain.Document, error) {
		increment = i
		return &domain.Document{ID: docID, VersionLabel: "1.0"}, nil
	}

	code, _, _ := g.do(t, fiber.MethodPost, "/v1/api/documents/"+docID+"/versions", `{"increment":"Major","save":true}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, domain.VersionIncrementMajor, increment)

	code, body, _ := g.do(t, fiber.MethodPost, "/v1/api/documents/"+docID+"/versions", `{"increment":"Patch"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body.Status.Message[0], "version_increment")
	require.Len(t, g.audit.Recorded, 2)
	assert.Equal(t, domain.AuditStatusFailure, g.audit.Recorded[1].Status)
}

func TestCreateDocument(t *testing.T) {
	g := newTestGateway(false)
	var sent domain.PropertyMap
	g.lifecycle.CreateDocumentFunc = func(ctx context.Context, parent domain.OperationInput, docType string, properties domain.PropertyMap) (*domain.Document, error) {
		assert.Equal(t, "doc:"+docID, parent.InputRef())
		assert.Equal(t, "File", docType)
		sent = properties
		return &domain.Document{ID: docID2, Type: docType}, nil
	}

	code, body, _ := g.do(t, fiber.MethodPost, "/v1/api/documents/"+docID+"/children", `{"type":"File","properties":{"dc:title":"Report"}}`)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, docID2, body.Data.(map[string]interface{})["id"])
	assert.Equal(t, domain.PropertyMap{"dc:title": "Report"}, sent)

	code, _, _ = g.do(t, fiber.MethodPost, "/v1/api/documents/"+docID+"/children", `{"type":"File","properties":{"title":"Report"}}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestAddCollectionDocuments(t *testing.T) {
	g := newTestGateway(false)
	var added domain.DocumentList
	g.collections.AddDocumentsToCollectionFunc = func(ctx context.Context, collection domain.OperationInput, documents domain.DocumentList) error {
		assert.Equal(t, "doc:"+docID, collection.InputRef())
		added = documents
		return nil
	}

	code, _, _ := g.do(t, fiber.MethodPost, "/v1/api/collections/"+docID+"/documents", `{"ids":["`+docID2+`"]}`)

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "docs:"+docID2, added.InputRef())

	code, _, _ = g.do(t, fiber.MethodPost, "/v1/api/collections/"+docID+"/documents", `{"ids":["nope"]}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestGetAuditEntries(t *testing.T) {
	g := newTestGateway(false)
	var condition domain.QueryAuditRequest
	g.audit.GetEntriesFunc = func(c domain.QueryAuditRequest) (*domain.AuditListResponse, error) {
		condition = c
		operation := "document.lock"
		status := domain.AuditStatusSuccess
		page, perPage, total := 2, 10, int64(11)
		return &domain.AuditListResponse{
			Entries:     []domain.AuditEntryResponse{{Operation: &operation, Status: &status}},
			CurrentPage: &page,
			PerPage:     &perPage,
			TotalItem:   &total,
		}, nil
	}

	code, body, _ := g.do(t, fiber.MethodGet, "/v1/api/audit?page=2&limit=10&status=SUCCESS", "")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, 2, *condition.Page)
	assert.Equal(t, 10, *condition.Limit)
	assert.Equal(t, "SUCCESS", *condition.Status)
	assert.Equal(t, int64(11), *body.TotalItem)
	entries := body.Data.([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, "SUCCESS", entries[0].(map[string]interface{})["status"])

	code, _, _ = g.do(t, fiber.MethodGet, "/v1/api/audit?status=DONE", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestCMISRoutes(t *testing.T) {
	t.Run("not mounted without a CMIS service", func(t *testing.T) {
		g := newTestGateway(false)

		code, _, _ := g.do(t, fiber.MethodGet, "/v1/api/cmis/objects/abc", "")

		assert.Equal(t, fiber.StatusNotFound, code)
	})

	t.Run("object ids are passed verbatim", func(t *testing.T) {
		g := newTestGateway(true)
		g.cmis.GetObjectFunc = func(ctx context.Context, id string) (*domain.CMISObject, error) {
			return &domain.CMISObject{ID: id, Name: "Report"}, nil
		}

		code, body, _ := g.do(t, fiber.MethodGet, "/v1/api/cmis/objects/"+docID+";1.0", "")

		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, docID+";1.0", body.Data.(map[string]interface{})["id"])
	})

	t.Run("query", func(t *testing.T) {
		g := newTestGateway(true)
		g.cmis.QueryFunc = func(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error) {
			assert.Equal(t, "SELECT * FROM cmis:document", statement)
			assert.True(t, searchAllVersions)
			return []domain.QueryResult{{Properties: map[string]interface{}{"cmis:objectId": docID}}}, nil
		}

		code, body, _ := g.do(t, fiber.MethodPost, "/v1/api/cmis/query", `{"statement":"SELECT * FROM cmis:document","search_all_versions":true}`)

		assert.Equal(t, fiber.StatusOK, code)
		rows := body.Data.([]interface{})
		require.Len(t, rows, 1)
		assert.Equal(t, docID, rows[0].(map[string]interface{})["cmis:objectId"])

		code, _, _ = g.do(t, fiber.MethodPost, "/v1/api/cmis/query", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}
