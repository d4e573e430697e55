package application

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"
)

// Mock implementations for testing

// MockOperationRequest implements output.OperationRequest for testing
type MockOperationRequest struct {
	session *MockAutomationSession

	// Captured values for assertions
	OperationID string
	Params      domain.Params
	Headers     map[string]string
	Input       domain.OperationInput
}

func (r *MockOperationRequest) Set(name string, value interface{}) output.OperationRequest {
	r.Params[name] = value
	return r
}

func (r *MockOperationRequest) SetHeader(name, value string) output.OperationRequest {
	r.Headers[name] = value
	return r
}

func (r *MockOperationRequest) SetInput(input domain.OperationInput) output.OperationRequest {
	r.Input = input
	return r
}

func (r *MockOperationRequest) Execute(ctx context.Context) (domain.Result, error) {
	r.session.mu.Lock()
	r.session.Requests = append(r.session.Requests, r)
	r.session.mu.Unlock()

	if r.session.ExecuteFunc != nil {
		return r.session.ExecuteFunc(r)
	}
	return domain.VoidResult(), nil
}

// MockAutomationSession implements output.AutomationSession for testing
type MockAutomationSession struct {
	ExecuteFunc func(request *MockOperationRequest) (domain.Result, error)
	GetFileFunc func(ctx context.Context, path string) (*domain.Blob, error)

	// Captured values for assertions
	mu         sync.Mutex
	Requests   []*MockOperationRequest
	closeCalls int32
}

func (m *MockAutomationSession) NewRequest(operationID string) output.OperationRequest {
	return &MockOperationRequest{
		session:     m,
		OperationID: operationID,
		Params:      domain.Params{},
		Headers:     map[string]string{},
	}
}

func (m *MockAutomationSession) GetFile(ctx context.Context, path string) (*domain.Blob, error) {
	if m.GetFileFunc != nil {
		return m.GetFileFunc(ctx, path)
	}
	return &domain.Blob{FileName: "file.bin"}, nil
}

func (m *MockAutomationSession) Close() error {
	atomic.AddInt32(&m.closeCalls, 1)
	return nil
}

// Closes returns how often Close was called
func (m *MockAutomationSession) Closes() int {
	return int(atomic.LoadInt32(&m.closeCalls))
}

// Executed returns the operation ids of all executed requests in order
func (m *MockAutomationSession) Executed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.Requests))
	for _, r := range m.Requests {
		ids = append(ids, r.OperationID)
	}
	return ids
}

// LastRequest returns the most recently executed request
func (m *MockAutomationSession) LastRequest() *MockOperationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}

// MockConnector implements output.Connector for testing
type MockConnector[S output.Session] struct {
	ConnectFunc func(ctx context.Context) (S, error)

	connects int32
}

func (m *MockConnector[S]) Connect(ctx context.Context) (S, error) {
	atomic.AddInt32(&m.connects, 1)
	return m.ConnectFunc(ctx)
}

// Connects returns how often Connect was called
func (m *MockConnector[S]) Connects() int {
	return int(atomic.LoadInt32(&m.connects))
}

// MockRESTClient implements output.RESTClient for testing
type MockRESTClient struct {
	GetTextFunc  func(ctx context.Context, url string) (string, error)
	SendJSONFunc func(ctx context.Context, method, url string, data []byte) (string, error)

	// Captured values for assertions
	LastURL    string
	LastMethod string
}

func (m *MockRESTClient) GetText(ctx context.Context, url string) (string, error) {
	m.LastURL = url
	if m.GetTextFunc != nil {
		return m.GetTextFunc(ctx, url)
	}
	return "{}", nil
}

func (m *MockRESTClient) SendJSON(ctx context.Context, method, url string, data []byte) (string, error) {
	m.LastMethod = method
	m.LastURL = url
	if m.SendJSONFunc != nil {
		return m.SendJSONFunc(ctx, method, url, data)
	}
	return "{}", nil
}

// MockDocumentCache implements output.DocumentCache for testing.
// It does not deduplicate concurrent fetches.
type MockDocumentCache struct {
	mu        sync.Mutex
	documents map[string]*domain.Document
	versions  map[string][]string

	// Captured values for assertions
	Clears int
}

func NewMockDocumentCache() *MockDocumentCache {
	return &MockDocumentCache{
		documents: map[string]*domain.Document{},
		versions:  map[string][]string{},
	}
}

func (m *MockDocumentCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = map[string]*domain.Document{}
	m.versions = map[string][]string{}
	m.Clears++
}

func (m *MockDocumentCache) Get(id string) (*domain.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.documents[id]
	return doc, ok
}

func (m *MockDocumentCache) Put(id string, doc *domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[id] = doc
}

func (m *MockDocumentCache) GetOrFetchVersions(ctx context.Context, id string, fetch output.VersionFetcher) ([]string, error) {
	m.mu.Lock()
	versions, ok := m.versions[id]
	m.mu.Unlock()
	if ok {
		return versions, nil
	}

	versions, err := fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.versions[id] = versions
	m.mu.Unlock()
	return versions, nil
}

// MockCMISSession implements output.CMISSession for testing.
// Methods without a Func field return zero values.
type MockCMISSession struct {
	GetObjectFunc                func(ctx context.Context, objectID string) (*domain.CMISObject, error)
	GetLatestDocumentVersionFunc func(ctx context.Context, objectID string) (*domain.CMISObject, error)
	QueryFunc                    func(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error)
	CreateDocumentFunc           func(ctx context.Context, request domain.CreateDocumentRequest) (string, error)
	CreateFolderFunc             func(ctx context.Context, properties map[string]interface{}, parentID string) (string, error)
	MoveFunc                     func(ctx context.Context, objectID, sourceFolderID, targetFolderID string) (*domain.CMISObject, error)
	ApplyACLFunc                 func(ctx context.Context, objectID string, add, remove []domain.ACE, propagation domain.ACLPropagation) (*domain.ACL, error)

	closeCalls int32
}

func (m *MockCMISSession) Close() error {
	atomic.AddInt32(&m.closeCalls, 1)
	return nil
}

func (m *MockCMISSession) RepositoryInfo(ctx context.Context) (*domain.RepositoryInfo, error) {
	return &domain.RepositoryInfo{ID: "default"}, nil
}

func (m *MockCMISSession) RootFolder(ctx context.Context) (*domain.CMISObject, error) {
	return &domain.CMISObject{ID: "root", BaseTypeID: string(domain.CMISTypeFolder)}, nil
}

func (m *MockCMISSession) GetObject(ctx context.Context, objectID string) (*domain.CMISObject, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, objectID)
	}
	return &domain.CMISObject{ID: objectID}, nil
}

func (m *MockCMISSession) GetObjectByPath(ctx context.Context, path string) (*domain.CMISObject, error) {
	return &domain.CMISObject{Path: path}, nil
}

func (m *MockCMISSession) GetLatestDocumentVersion(ctx context.Context, objectID string) (*domain.CMISObject, error) {
	if m.GetLatestDocumentVersionFunc != nil {
		return m.GetLatestDocumentVersionFunc(ctx, objectID)
	}
	return &domain.CMISObject{ID: objectID}, nil
}

func (m *MockCMISSession) GetChildren(ctx context.Context, folderID string) ([]domain.CMISObject, error) {
	return nil, nil
}

func (m *MockCMISSession) Query(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, statement, searchAllVersions)
	}
	return nil, nil
}

func (m *MockCMISSession) CreateDocument(ctx context.Context, request domain.CreateDocumentRequest) (string, error) {
	if m.CreateDocumentFunc != nil {
		return m.CreateDocumentFunc(ctx, request)
	}
	return "new-doc", nil
}

func (m *MockCMISSession) CreateDocumentFromSource(ctx context.Context, sourceID string, properties map[string]interface{}, folderID string, state domain.VersioningState) (string, error) {
	return "copy", nil
}

func (m *MockCMISSession) CreateFolder(ctx context.Context, properties map[string]interface{}, parentID string) (string, error) {
	if m.CreateFolderFunc != nil {
		return m.CreateFolderFunc(ctx, properties, parentID)
	}
	return "new-folder", nil
}

func (m *MockCMISSession) CreateItem(ctx context.Context, properties map[string]interface{}, folderID string) (string, error) {
	return "new-item", nil
}

func (m *MockCMISSession) Delete(ctx context.Context, objectID string, allVersions bool) error {
	return nil
}

func (m *MockCMISSession) Move(ctx context.Context, objectID, sourceFolderID, targetFolderID string) (*domain.CMISObject, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, objectID, sourceFolderID, targetFolderID)
	}
	return &domain.CMISObject{ID: objectID}, nil
}

func (m *MockCMISSession) GetACL(ctx context.Context, objectID string, onlyBasicPermissions bool) (*domain.ACL, error) {
	return &domain.ACL{}, nil
}

func (m *MockCMISSession) ApplyACL(ctx context.Context, objectID string, add, remove []domain.ACE, propagation domain.ACLPropagation) (*domain.ACL, error) {
	if m.ApplyACLFunc != nil {
		return m.ApplyACLFunc(ctx, objectID, add, remove, propagation)
	}
	return &domain.ACL{ACEs: add}, nil
}

func (m *MockCMISSession) ApplyPolicy(ctx context.Context, objectID string, policyIDs ...string) error {
	return nil
}

func (m *MockCMISSession) TypeDefinition(ctx context.Context, typeID string) (*domain.TypeDefinition, error) {
	return &domain.TypeDefinition{ID: typeID}, nil
}

func (m *MockCMISSession) TypeChildren(ctx context.Context, typeID string, includePropertyDefinitions bool) ([]domain.TypeDefinition, error) {
	return nil, nil
}

func (m *MockCMISSession) CreateType(ctx context.Context, definition domain.TypeDefinition) (*domain.TypeDefinition, error) {
	return &definition, nil
}

func (m *MockCMISSession) DeleteType(ctx context.Context, typeID string) error {
	return nil
}

// MockAuditRepository implements output.AuditRepository for testing
type MockAuditRepository struct {
	CreateEntryFunc func(request domain.AuditEntryRequest) (*domain.AuditEntryResponse, error)
	GetEntriesFunc  func(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error)
	PingFunc        func() error

	// Captured values for assertions
	Created       []domain.AuditEntryRequest
	LastCondition *domain.QueryAuditRequest
}

func (m *MockAuditRepository) CreateEntry(request domain.AuditEntryRequest) (*domain.AuditEntryResponse, error) {
	m.Created = append(m.Created, request)
	if m.CreateEntryFunc != nil {
		return m.CreateEntryFunc(request)
	}
	return &domain.AuditEntryResponse{}, nil
}

func (m *MockAuditRepository) GetEntries(condition domain.QueryAuditRequest) (*domain.AuditListResponse, error) {
	m.LastCondition = &condition
	if m.GetEntriesFunc != nil {
		return m.GetEntriesFunc(condition)
	}
	return &domain.AuditListResponse{Entries: []domain.AuditEntryResponse{}}, nil
}

func (m *MockAuditRepository) Ping() error {
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}

// fakeClock is a manually advanced time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
