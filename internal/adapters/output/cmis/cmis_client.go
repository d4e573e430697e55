package cmis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
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
	_ output.Connector[output.CMISSession] = (*Connector)(nil)
	_ output.CMISSession                   = (*Session)(nil)
)

// BindingBrowser is the only supported binding type.
const BindingBrowser = "browser"

// Connector struct - Output adapter establishing CMIS browser-binding sessions
type Connector struct {
	httpClient   *http.Client
	serviceURL   string
	repositoryID string
	user         string
	password     string
	timeout      time.Duration
}

// NewConnector func - Creates a connector for the browser binding at config.URL
func NewConnector(config configs.CMIS, fallback configs.Debug) (*Connector, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("%w: cmis url is not configured", domain.ErrInvalidRequest)
	}
	if _, err := url.ParseRequestURI(config.URL); err != nil {
		return nil, fmt.Errorf("%w: cmis url: %v", domain.ErrInvalidRequest, err)
	}
	if config.BindingType != "" && !strings.EqualFold(config.BindingType, BindingBrowser) {
		return nil, fmt.Errorf("%w: unsupported cmis binding %q", domain.ErrInvalidRequest, config.BindingType)
	}

	timeout := httpx.TimeoutFromSeconds(config.Timeout)
	user, password := config.Credentials(fallback)

	connector := &Connector{
		httpClient:   httpx.NewClient(timeout),
		serviceURL:   config.URL,
		repositoryID: config.RepositoryID,
		user:         user,
		password:     password,
		timeout:      timeout,
	}

	logrus.Infof("CMIS connector initialized with service URL: %s, repository: %q, timeout: %v", config.URL, config.RepositoryID, timeout)

	return connector, nil
}

// Connect loads the service document and binds the session to one repository.
// An empty repository id selects the first repository the endpoint lists.
func (c *Connector) Connect(ctx context.Context) (output.CMISSession, error) {
	s := &Session{connector: c}

	data, err := s.get(ctx, c.serviceURL, nil, "getRepositories")
	if err != nil {
		return nil, httpx.ConnectionError("cmis", err)
	}

	var repo gjson.Result
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if c.repositoryID == "" || key.String() == c.repositoryID {
			repo = value
			return false
		}
		return true
	})
	if !repo.Exists() {
		return nil, httpx.ConnectionError("cmis", fmt.Errorf("%w: repository %q", domain.ErrNotFound, c.repositoryID))
	}

	s.info = parseRepositoryInfo(repo)
	if s.info.RepositoryURL == "" || s.info.RootFolderURL == "" {
		return nil, httpx.ConnectionError("cmis", fmt.Errorf("repository %q has no browser binding urls", s.info.ID))
	}

	logrus.Infof("CMIS session opened on repository %s (%s %s)", s.info.ID, s.info.ProductName, s.info.ProductVersion)

	return s, nil
}

// Session struct - a CMIS session bound to one repository
type Session struct {
	connector *Connector
	info      *domain.RepositoryInfo
	closed    atomic.Bool
}

// Close marks the session closed and drops idle connections.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.connector.httpClient.CloseIdleConnections()
	logrus.Debug("CMIS session closed")
	return nil
}

// RepositoryInfo returns the repository description loaded at connect time.
func (s *Session) RepositoryInfo(ctx context.Context) (*domain.RepositoryInfo, error) {
	if s.closed.Load() {
		return nil, domain.ErrSessionClosed
	}
	info := *s.info
	return &info, nil
}

// RootFolder returns the root folder of the repository.
func (s *Session) RootFolder(ctx context.Context) (*domain.CMISObject, error) {
	return s.GetObject(ctx, s.info.RootFolderID)
}

// GetObject loads an object by id.
func (s *Session) GetObject(ctx context.Context, objectID string) (*domain.CMISObject, error) {
	return s.getObject(ctx, s.info.RootFolderURL, url.Values{"objectId": {objectID}}, "getObject")
}

// GetObjectByPath loads an object by repository path.
func (s *Session) GetObjectByPath(ctx context.Context, path string) (*domain.CMISObject, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: path %q is not absolute", domain.ErrInvalidRequest, path)
	}
	escaped := (&url.URL{Path: path}).EscapedPath()
	return s.getObject(ctx, strings.TrimSuffix(s.info.RootFolderURL, "/")+escaped, nil, "getObjectByPath")
}

// GetLatestDocumentVersion loads the latest version of the series objectID belongs to.
func (s *Session) GetLatestDocumentVersion(ctx context.Context, objectID string) (*domain.CMISObject, error) {
	params := url.Values{
		"objectId":      {objectID},
		"returnVersion": {"latest"},
	}
	return s.getObject(ctx, s.info.RootFolderURL, params, "getObjectOfLatestVersion")
}

func (s *Session) getObject(ctx context.Context, target string, params url.Values, operation string) (*domain.CMISObject, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("cmisselector", "object")
	params.Set("includeAllowableActions", "true")

	data, err := s.get(ctx, target, params, operation)
	if err != nil {
		return nil, err
	}
	return parseObject(gjson.ParseBytes(data)), nil
}

// GetChildren lists the children of a folder.
func (s *Session) GetChildren(ctx context.Context, folderID string) ([]domain.CMISObject, error) {
	params := url.Values{
		"cmisselector": {"children"},
		"objectId":     {folderID},
	}
	data, err := s.get(ctx, s.info.RootFolderURL, params, "getChildren")
	if err != nil {
		return nil, err
	}

	objects := []domain.CMISObject{}
	gjson.GetBytes(data, "objects").ForEach(func(_, value gjson.Result) bool {
		objects = append(objects, *parseObject(value.Get("object")))
		return true
	})
	return objects, nil
}

// Query runs a CMIS SQL statement.
func (s *Session) Query(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error) {
	params := url.Values{
		"cmisselector":      {"query"},
		"q":                 {statement},
		"searchAllVersions": {fmt.Sprint(searchAllVersions)},
	}
	data, err := s.get(ctx, s.info.RepositoryURL, params, "query")
	if err != nil {
		return nil, err
	}

	results := []domain.QueryResult{}
	gjson.GetBytes(data, "results").ForEach(func(_, value gjson.Result) bool {
		results = append(results, domain.QueryResult{Properties: propertyMap(value.Get("succinctProperties"))})
		return true
	})
	return results, nil
}

// CreateDocument creates a document, uploading its content when present.
func (s *Session) CreateDocument(ctx context.Context, request domain.CreateDocumentRequest) (string, error) {
	form := newForm("createDocument")
	form.Set("objectId", request.FolderID)
	if request.VersioningState != "" {
		form.Set("versioningState", string(request.VersioningState))
	}
	form.setProperties(request.Properties)
	form.setPolicies(request.Policies)
	form.setACEs("add", request.AddACEs)
	form.setACEs("remove", request.RemoveACEs)

	data, err := s.post(ctx, s.info.RootFolderURL, form, request.Content, "createDocument")
	if err != nil {
		return "", err
	}
	return objectID(data), nil
}

// CreateDocumentFromSource copies a document into a folder.
func (s *Session) CreateDocumentFromSource(ctx context.Context, sourceID string, properties map[string]interface{}, folderID string, state domain.VersioningState) (string, error) {
	form := newForm("createDocumentFromSource")
	form.Set("sourceId", sourceID)
	form.Set("objectId", folderID)
	if state != "" {
		form.Set("versioningState", string(state))
	}
	form.setProperties(properties)

	data, err := s.post(ctx, s.info.RootFolderURL, form, nil, "createDocumentFromSource")
	if err != nil {
		return "", err
	}
	return objectID(data), nil
}

// CreateFolder creates a folder below parentID.
func (s *Session) CreateFolder(ctx context.Context, properties map[string]interface{}, parentID string) (string, error) {
	form := newForm("createFolder")
	form.Set("objectId", parentID)
	form.setProperties(properties)

	data, err := s.post(ctx, s.info.RootFolderURL, form, nil, "createFolder")
	if err != nil {
		return "", err
	}
	return objectID(data), nil
}

// CreateItem creates an item object in a folder.
func (s *Session) CreateItem(ctx context.Context, properties map[string]interface{}, folderID string) (string, error) {
	form := newForm("createItem")
	form.Set("objectId", folderID)
	form.setProperties(properties)

	data, err := s.post(ctx, s.info.RootFolderURL, form, nil, "createItem")
	if err != nil {
		return "", err
	}
	return objectID(data), nil
}

// Delete removes an object, optionally with all its versions.
func (s *Session) Delete(ctx context.Context, objectID string, allVersions bool) error {
	form := newForm("delete")
	form.Set("objectId", objectID)
	form.Set("allVersions", fmt.Sprint(allVersions))

	_, err := s.post(ctx, s.info.RootFolderURL, form, nil, "delete")
	return err
}

// Move files an object into another folder.
func (s *Session) Move(ctx context.Context, objectID, sourceFolderID, targetFolderID string) (*domain.CMISObject, error) {
	form := newForm("move")
	form.Set("objectId", objectID)
	form.Set("sourceFolderId", sourceFolderID)
	form.Set("targetFolderId", targetFolderID)

	data, err := s.post(ctx, s.info.RootFolderURL, form, nil, "move")
	if err != nil {
		return nil, err
	}
	return parseObject(gjson.ParseBytes(data)), nil
}

// GetACL returns the ACL of an object.
func (s *Session) GetACL(ctx context.Context, objectID string, onlyBasicPermissions bool) (*domain.ACL, error) {
	params := url.Values{
		"cmisselector":         {"acl"},
		"objectId":             {objectID},
		"onlyBasicPermissions": {fmt.Sprint(onlyBasicPermissions)},
	}
	data, err := s.get(ctx, s.info.RootFolderURL, params, "getACL")
	if err != nil {
		return nil, err
	}
	return parseACL(gjson.ParseBytes(data)), nil
}

// ApplyACL adds and removes entries and returns the resulting ACL.
func (s *Session) ApplyACL(ctx context.Context, objectID string, add, remove []domain.ACE, propagation domain.ACLPropagation) (*domain.ACL, error) {
	form := newForm("applyACL")
	form.Set("objectId", objectID)
	form.setACEs("add", add)
	form.setACEs("remove", remove)
	if propagation != "" {
		form.Set("ACLPropagation", string(propagation))
	}

	data, err := s.post(ctx, s.info.RootFolderURL, form, nil, "applyACL")
	if err != nil {
		return nil, err
	}
	return parseACL(gjson.ParseBytes(data)), nil
}

// ApplyPolicy applies each policy to the object, one request per policy.
func (s *Session) ApplyPolicy(ctx context.Context, objectID string, policyIDs ...string) error {
	for _, policyID := range policyIDs {
		form := newForm("applyPolicy")
		form.Set("objectId", objectID)
		form.Set("policyId", policyID)
		if _, err := s.post(ctx, s.info.RootFolderURL, form, nil, "applyPolicy"); err != nil {
			return err
		}
	}
	return nil
}

// TypeDefinition loads the definition of a type.
func (s *Session) TypeDefinition(ctx context.Context, typeID string) (*domain.TypeDefinition, error) {
	params := url.Values{
		"cmisselector": {"typeDefinition"},
		"typeId":       {typeID},
	}
	data, err := s.get(ctx, s.info.RepositoryURL, params, "getTypeDefinition")
	if err != nil {
		return nil, err
	}
	return parseTypeDefinition(gjson.ParseBytes(data)), nil
}

// TypeChildren lists the direct subtypes of typeID, or the base types when typeID is empty.
func (s *Session) TypeChildren(ctx context.Context, typeID string, includePropertyDefinitions bool) ([]domain.TypeDefinition, error) {
	params := url.Values{
		"cmisselector":               {"typeChildren"},
		"includePropertyDefinitions": {fmt.Sprint(includePropertyDefinitions)},
	}
	if typeID != "" {
		params.Set("typeId", typeID)
	}
	data, err := s.get(ctx, s.info.RepositoryURL, params, "getTypeChildren")
	if err != nil {
		return nil, err
	}

	types := []domain.TypeDefinition{}
	gjson.GetBytes(data, "types").ForEach(func(_, value gjson.Result) bool {
		types = append(types, *parseTypeDefinition(value))
		return true
	})
	return types, nil
}

// CreateType registers a new type.
func (s *Session) CreateType(ctx context.Context, definition domain.TypeDefinition) (*domain.TypeDefinition, error) {
	encoded, err := encodeTypeDefinition(definition)
	if err != nil {
		return nil, err
	}
	form := newForm("createType")
	form.Set("type", encoded)

	data, err := s.post(ctx, s.info.RepositoryURL, form, nil, "createType")
	if err != nil {
		return nil, err
	}
	return parseTypeDefinition(gjson.ParseBytes(data)), nil
}

// DeleteType removes a type.
func (s *Session) DeleteType(ctx context.Context, typeID string) error {
	form := newForm("deleteType")
	form.Set("typeId", typeID)

	_, err := s.post(ctx, s.info.RepositoryURL, form, nil, "deleteType")
	return err
}

func (s *Session) get(ctx context.Context, target string, params url.Values, operation string) ([]byte, error) {
	if s.closed.Load() {
		return nil, domain.ErrSessionClosed
	}
	if len(params) > 0 {
		params.Set("succinct", "true")
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	return s.do(req, operation)
}

func (s *Session) post(ctx context.Context, target string, form *form, content *domain.ContentStream, operation string) ([]byte, error) {
	if s.closed.Load() {
		return nil, domain.ErrSessionClosed
	}

	body, contentType, err := form.encode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", contentType)
	return s.do(req, operation)
}

func (s *Session) do(req *http.Request, operation string) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(s.connector.user, s.connector.password)

	resp, err := s.connector.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s request: %w", operation, err)
	}
	if err := httpx.CheckResponse(resp, operation); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	logrus.Debugf("CMIS %s returned %d bytes", operation, len(data))

	return data, nil
}
