package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"ecm-connector/configs"
	"ecm-connector/internal/adapters/output/httpx"
	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Compile-time checks for the output ports
var (
	_ output.Connector[output.AutomationSession] = (*Connector)(nil)
	_ output.AutomationSession                   = (*Session)(nil)
	_ output.OperationRequest                    = (*Request)(nil)
)

const (
	automationPath = "site/automation"

	contentTypeRequest = "application/json+nxrequest"
	acceptEntity       = "application/json+nxentity, */*"

	entityDocument  = "document"
	entityDocuments = "documents"
)

// Connector struct - Output adapter establishing automation sessions
type Connector struct {
	httpClient *http.Client
	serverURL  string
	baseURL    string
	user       string
	password   string
	timeout    time.Duration
}

// NewConnector func - Creates a connector for the automation endpoint below config.URL
func NewConnector(config configs.Nuxeo, fallback configs.Debug) (*Connector, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("%w: nuxeo url is not configured", domain.ErrInvalidRequest)
	}
	if _, err := url.ParseRequestURI(config.URL); err != nil {
		return nil, fmt.Errorf("%w: nuxeo url: %v", domain.ErrInvalidRequest, err)
	}

	serverURL := strings.TrimSuffix(config.URL, "/") + "/"
	timeout := httpx.TimeoutFromSeconds(config.Timeout)
	user, password := config.Credentials(fallback)

	connector := &Connector{
		httpClient: httpx.NewClient(timeout),
		serverURL:  serverURL,
		baseURL:    serverURL + automationPath,
		user:       user,
		password:   password,
		timeout:    timeout,
	}

	logrus.Infof("Automation connector initialized with base URL: %s, timeout: %v", connector.baseURL, timeout)

	return connector, nil
}

// Connect authenticates by loading the operation registry.
func (c *Connector) Connect(ctx context.Context) (output.AutomationSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, httpx.ConnectionError("automation", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httpx.ConnectionError("automation", err)
	}
	if err := httpx.CheckResponse(resp, "connect"); err != nil {
		return nil, httpx.ConnectionError("automation", err)
	}
	defer resp.Body.Close()

	registry, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httpx.ConnectionError("automation", err)
	}

	logrus.Infof("Automation session opened for user %s: %d operations, %d chains",
		c.user, gjson.GetBytes(registry, "operations.#").Int(), gjson.GetBytes(registry, "chains.#").Int())

	return &Session{connector: c}, nil
}

// Session struct - an authenticated automation session
type Session struct {
	connector *Connector
	closed    atomic.Bool
}

// NewRequest starts building a call of the named operation.
func (s *Session) NewRequest(operationID string) output.OperationRequest {
	return &Request{
		session:     s,
		operationID: operationID,
		params:      make(map[string]interface{}),
		headers:     make(map[string]string),
	}
}

// GetFile downloads a blob by absolute URL or server-relative path.
func (s *Session) GetFile(ctx context.Context, filePath string) (*domain.Blob, error) {
	if s.closed.Load() {
		return nil, domain.ErrSessionClosed
	}
	if filePath == "" {
		return nil, fmt.Errorf("%w: empty file path", domain.ErrInvalidRequest)
	}

	fileURL := filePath
	if !strings.HasPrefix(filePath, "http://") && !strings.HasPrefix(filePath, "https://") {
		fileURL = httpx.JoinURL(s.connector.serverURL, filePath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create file request: %w", err)
	}
	req.SetBasicAuth(s.connector.user, s.connector.password)

	resp, err := s.connector.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	if err := httpx.CheckResponse(resp, "getFile"); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return newBlob(resp, data, fileURL), nil
}

// Close marks the session closed and drops idle connections.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.connector.httpClient.CloseIdleConnections()
	logrus.Debug("Automation session closed")
	return nil
}

// Request struct - builder for one operation call
type Request struct {
	session     *Session
	operationID string
	params      map[string]interface{}
	headers     map[string]string
	input       domain.OperationInput
}

// Set adds a named parameter.
func (r *Request) Set(name string, value interface{}) output.OperationRequest {
	r.params[name] = encodeParam(value)
	return r
}

// SetHeader adds a request header.
func (r *Request) SetHeader(name, value string) output.OperationRequest {
	r.headers[name] = value
	return r
}

// SetInput sets the operation input.
func (r *Request) SetInput(input domain.OperationInput) output.OperationRequest {
	r.input = input
	return r
}

// Execute sends the request and decodes the typed result.
func (r *Request) Execute(ctx context.Context) (domain.Result, error) {
	if r.session.closed.Load() {
		return domain.Result{}, domain.ErrSessionClosed
	}

	reqBody := operationAPIRequest{
		Params:  r.params,
		Context: map[string]interface{}{},
	}
	if r.input != nil {
		reqBody.Input = r.input.InputRef()
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to marshal %s request: %w", r.operationID, err)
	}

	c := r.session.connector
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+r.operationID, bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to create %s request: %w", r.operationID, err)
	}
	req.Header.Set("Content-Type", contentTypeRequest)
	req.Header.Set("Accept", acceptEntity)
	for name, value := range r.headers {
		req.Header.Set(name, value)
	}
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to send %s request: %w", r.operationID, err)
	}
	if err := httpx.CheckResponse(resp, r.operationID); err != nil {
		return domain.Result{}, err
	}
	defer resp.Body.Close()

	result, err := decodeResult(resp, r.operationID)
	if err != nil {
		return domain.Result{}, err
	}

	logrus.Debugf("Operation %s returned %s", r.operationID, result.Kind())

	return result, nil
}

// decodeResult decides the Result variant from the response.
func decodeResult(resp *http.Response, operationID string) (domain.Result, error) {
	if resp.StatusCode == http.StatusNoContent {
		return domain.VoidResult(), nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to read %s response: %w", operationID, err)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if !strings.Contains(mediaType, "json") {
		if len(data) == 0 {
			return domain.VoidResult(), nil
		}
		return domain.BlobResult(newBlob(resp, data, operationID)), nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.VoidResult(), nil
	}

	switch gjson.GetBytes(data, "entity-type").String() {
	case entityDocument:
		var doc documentAPI
		if err := json.Unmarshal(data, &doc); err != nil {
			return domain.Result{}, fmt.Errorf("failed to parse %s document: %w", operationID, err)
		}
		return domain.DocumentResult(doc.toDomain()), nil

	case entityDocuments:
		var docs documentsAPI
		if err := json.Unmarshal(data, &docs); err != nil {
			return domain.Result{}, fmt.Errorf("failed to parse %s documents: %w", operationID, err)
		}
		return domain.DocumentsResult(docs.toDomain()), nil

	default:
		// JSON blobs, e.g. the user listing of Services.QueryUsers
		return domain.BlobResult(newBlob(resp, data, operationID)), nil
	}
}

func newBlob(resp *http.Response, data []byte, fallbackName string) *domain.Blob {
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))

	fileName := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		fileName = params["filename"]
	}
	if fileName == "" {
		if u, err := url.Parse(fallbackName); err == nil && u.Path != "" {
			fileName = path.Base(u.Path)
		} else {
			fileName = fallbackName
		}
	}

	return &domain.Blob{
		FileName: fileName,
		MimeType: mediaType,
		Data:     data,
	}
}

// encodeParam converts parameter values to their wire form.
func encodeParam(value interface{}) interface{} {
	switch v := value.(type) {
	case domain.PropertyMap:
		return v.Encode()
	case *domain.Document:
		return v.ID
	case domain.Document:
		return v.ID
	case domain.DocRef:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case domain.OperationInput:
		return strings.TrimPrefix(v.InputRef(), "doc:")
	default:
		return v
	}
}

// API request/response structures for the automation endpoint

// operationAPIRequest represents the request body of an operation call
type operationAPIRequest struct {
	Params  map[string]interface{} `json:"params"`
	Context map[string]interface{} `json:"context"`
	Input   string                 `json:"input,omitempty"`
}

// documentAPI represents a document entity
type documentAPI struct {
	EntityType        string                 `json:"entity-type"`
	Repository        string                 `json:"repository"`
	UID               string                 `json:"uid"`
	Path              string                 `json:"path"`
	Type              string                 `json:"type"`
	State             string                 `json:"state"`
	ParentRef         string                 `json:"parentRef"`
	IsCheckedOut      bool                   `json:"isCheckedOut"`
	VersionLabel      string                 `json:"versionLabel"`
	Title             string                 `json:"title"`
	LastModified      string                 `json:"lastModified"`
	LockOwner         string                 `json:"lockOwner"`
	LockCreated       string                 `json:"lockCreated"`
	Facets            []string               `json:"facets"`
	Properties        map[string]interface{} `json:"properties"`
	ContextParameters map[string]interface{} `json:"contextParameters"`
}

// documentsAPI represents a document collection entity
type documentsAPI struct {
	EntityType  string        `json:"entity-type"`
	IsPaginable bool          `json:"isPaginable"`
	TotalSize   int           `json:"totalSize"`
	PageIndex   int           `json:"pageIndex"`
	PageSize    int           `json:"pageSize"`
	PageCount   int           `json:"pageCount"`
	Entries     []documentAPI `json:"entries"`
}

func (d documentAPI) toDomain() *domain.Document {
	return &domain.Document{
		ID:                d.UID,
		Path:              d.Path,
		Type:              d.Type,
		State:             d.State,
		Title:             d.Title,
		VersionLabel:      d.VersionLabel,
		Repository:        d.Repository,
		ParentRef:         d.ParentRef,
		LockOwner:         d.LockOwner,
		LockCreated:       domain.ParseTimestamp(d.LockCreated),
		LastModified:      domain.ParseTimestamp(d.LastModified),
		IsCheckedOut:      d.IsCheckedOut,
		Facets:            d.Facets,
		Properties:        domain.PropertyMap(d.Properties),
		ContextParameters: domain.PropertyMap(d.ContextParameters),
	}
}

func (d documentsAPI) toDomain() *domain.Documents {
	entries := make([]domain.Document, 0, len(d.Entries))
	for _, entry := range d.Entries {
		entries = append(entries, *entry.toDomain())
	}
	return &domain.Documents{
		Entries:     entries,
		IsPaginable: d.IsPaginable,
		PageIndex:   d.PageIndex,
		PageSize:    d.PageSize,
		PageCount:   d.PageCount,
		TotalSize:   d.TotalSize,
	}
}
