package application

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// DocumentService struct - Application service for the automation binding.
// It implements input.DocumentService, input.DocumentLifecycleService,
// input.WorkflowService, input.PermissionService and input.CollectionService.
type DocumentService struct {
	sessions    *SessionManager[output.AutomationSession]
	cache       output.DocumentCache
	rest        output.RESTClient
	restBaseURL string
}

// NewDocumentService func - Creates the automation facade.
// serverURL is the repository root the REST API lives under.
func NewDocumentService(sessions *SessionManager[output.AutomationSession], cache output.DocumentCache, rest output.RESTClient, serverURL string) *DocumentService {
	return &DocumentService{
		sessions:    sessions,
		cache:       cache,
		rest:        rest,
		restBaseURL: strings.TrimSuffix(serverURL, "/") + "/api/v1/",
	}
}

// ListDocumentIDs func - Use case: list all File documents that are not versions
func (s *DocumentService) ListDocumentIDs(ctx context.Context) ([]string, error) {
	return s.listDocumentIDs(ctx, queryAllFiles)
}

// ListDocumentIDsModifiedBetween func - Use case: list File documents modified in a date range
func (s *DocumentService) ListDocumentIDsModifiedBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s is before start %s", domain.ErrInvalidRequest,
			domain.FormatQueryDate(to), domain.FormatQueryDate(from))
	}
	query := queryAllFiles + fmt.Sprintf(queryModifiedIn, domain.FormatQueryTimestamp(from), domain.FormatQueryTimestamp(to))
	return s.listDocumentIDs(ctx, query)
}

// listDocumentIDs runs query on a cleared cache, caches every hit with its
// version list and drops the ids that are versions of another document.
// The version set is collected per call: a concurrent listing may clear the
// cache before this one finishes.
func (s *DocumentService) listDocumentIDs(ctx context.Context, query string) ([]string, error) {
	s.cache.Clear()

	docs, err := s.queryAllPages(ctx, query)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	versionIDs := make(map[string]struct{})
	for i := range docs {
		doc := &docs[i]
		ids = append(ids, doc.ID)
		s.cache.Put(doc.ID, doc)
		versions, err := s.GetAllVersions(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range versions {
			versionIDs[id] = struct{}{}
		}
	}

	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, isVersion := versionIDs[id]; !isVersion {
			filtered = append(filtered, id)
		}
	}

	logrus.Infof("Listed %d documents (%d versions filtered)", len(filtered), len(ids)-len(filtered))

	return filtered, nil
}

// queryAllPages follows the page index of paginable query results.
func (s *DocumentService) queryAllPages(ctx context.Context, query string) ([]domain.Document, error) {
	var entries []domain.Document
	params := domain.Params{"query": query}

	for page := 0; ; page++ {
		if page > 0 {
			params["currentPageIndex"] = page
		}
		docs, err := s.documents(ctx, opDocumentQuery, nil, params)
		if err != nil {
			return nil, err
		}
		entries = append(entries, docs.Entries...)

		if !docs.IsPaginable || page+1 >= docs.PageCount || docs.Size() == 0 {
			return entries, nil
		}
	}
}

// GetDocument func - Use case: fetch a document by id, served from the cache when listed before.
// A cached snapshot is returned as listed, even after the document was updated
// or deleted, until the next listing clears the cache.
func (s *DocumentService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty document id", domain.ErrInvalidRequest)
	}
	if doc, ok := s.cache.Get(id); ok {
		return doc, nil
	}

	docs, err := s.documents(ctx, opDocumentQuery, nil, domain.Params{
		"query": fmt.Sprintf(queryByUUID, escapeNXQL(id)),
	})
	if err != nil {
		return nil, err
	}

	switch docs.Size() {
	case 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	case 1:
		return &docs.Entries[0], nil
	default:
		return nil, fmt.Errorf("%w: %d documents match %s", domain.ErrAmbiguousResult, docs.Size(), id)
	}
}

// GetDocumentVersion func - Use case: version marker of a document (its dc:modified value)
func (s *DocumentService) GetDocumentVersion(ctx context.Context, id string) (string, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return "", err
	}
	return doc.Properties.String("dc:modified"), nil
}

// GetLastModified func - Use case: last modification time of a document
func (s *DocumentService) GetLastModified(ctx context.Context, id string) (*time.Time, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.LastModified != nil {
		return doc.LastModified, nil
	}
	return domain.ParseTimestamp(doc.Properties.String("dc:modified")), nil
}

// GetURI func - Use case: download URI of the main file of a document
func (s *DocumentService) GetURI(ctx context.Context, id string) (string, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return "", err
	}
	uri := doc.Properties.Map("file:content").String("data")
	if uri == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrNoContent, id)
	}
	return uri, nil
}

// GetBlob func - Use case: download the main file of a document
func (s *DocumentService) GetBlob(ctx context.Context, id string) (*domain.Blob, error) {
	uri, err := s.GetURI(ctx, id)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetFile(ctx, uri)
}

// GetPath func - Use case: repository path of a document
func (s *DocumentService) GetPath(ctx context.Context, id string) (string, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return "", err
	}
	return doc.Path, nil
}

// GetACLs func - Use case: raw ACL document of a document from the REST API
func (s *DocumentService) GetACLs(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty document id", domain.ErrInvalidRequest)
	}
	return s.rest.GetText(ctx, s.restBaseURL+"id/"+url.PathEscape(id)+"/@acl")
}

// GetAllVersions func - Use case: version ids of a document, cached for the current listing
func (s *DocumentService) GetAllVersions(ctx context.Context, id string) ([]string, error) {
	return s.cache.GetOrFetchVersions(ctx, id, s.fetchVersionIDs)
}

func (s *DocumentService) fetchVersionIDs(ctx context.Context, id string) ([]string, error) {
	docs, err := s.documents(ctx, opDocumentGetVersions, domain.DocRef(id), nil)
	if err != nil {
		return nil, err
	}
	return docs.IDs(), nil
}

// GetDocumentVersions func - Use case: version documents of a document, uncached
func (s *DocumentService) GetDocumentVersions(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error) {
	return s.documents(ctx, opDocumentGetVersions, doc, nil)
}

// GetChildren func - Use case: children of a folderish document
func (s *DocumentService) GetChildren(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error) {
	return s.documents(ctx, opDocumentGetChildren, doc, nil)
}

// SendJSON func - Use case: plain REST call below api/v1/
func (s *DocumentService) SendJSON(ctx context.Context, method, path string, body []byte) (string, error) {
	return s.rest.SendJSON(ctx, method, s.restBaseURL+strings.TrimPrefix(path, "/"), body)
}

// SessionStatus func - Reports the automation session for health checks
func (s *DocumentService) SessionStatus() domain.SessionStatus {
	return sessionStatus("automation", s.sessions)
}

// Shutdown func - Closes the automation session
func (s *DocumentService) Shutdown() {
	s.sessions.Shutdown()
}

// execute acquires the session and runs one operation.
func (s *DocumentService) execute(ctx context.Context, operationID string, input domain.OperationInput, params domain.Params) (domain.Result, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return domain.Result{}, err
	}

	request := session.NewRequest(operationID).SetHeader(output.HeaderDocumentProperties, "*")
	for name, value := range params {
		request.Set(name, value)
	}
	if input != nil {
		request.SetInput(input)
	}

	result, err := request.Execute(ctx)
	if err != nil {
		logrus.Errorln(err)
		return domain.Result{}, err
	}
	return result, nil
}

// document runs an operation that yields one document. A collection
// result yields its first entry.
func (s *DocumentService) document(ctx context.Context, operationID string, input domain.OperationInput, params domain.Params) (*domain.Document, error) {
	result, err := s.execute(ctx, operationID, input, params)
	if err != nil {
		return nil, err
	}
	doc, err := result.FirstDocument()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operationID, err)
	}
	return doc, nil
}

// documents runs an operation that yields a collection. A single document
// becomes a one-entry collection and a void result an empty one.
func (s *DocumentService) documents(ctx context.Context, operationID string, input domain.OperationInput, params domain.Params) (*domain.Documents, error) {
	result, err := s.execute(ctx, operationID, input, params)
	if err != nil {
		return nil, err
	}

	switch result.Kind() {
	case domain.ResultDocuments:
		return result.Documents()
	case domain.ResultDocument:
		doc, _ := result.Document()
		return &domain.Documents{Entries: []domain.Document{*doc}, TotalSize: 1}, nil
	case domain.ResultVoid:
		return &domain.Documents{Entries: []domain.Document{}}, nil
	default:
		_, err := result.Documents()
		return nil, fmt.Errorf("%s: %w", operationID, err)
	}
}

// blob runs an operation that yields binary content.
func (s *DocumentService) blob(ctx context.Context, operationID string, input domain.OperationInput, params domain.Params) (*domain.Blob, error) {
	result, err := s.execute(ctx, operationID, input, params)
	if err != nil {
		return nil, err
	}
	blob, err := result.Blob()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operationID, err)
	}
	return blob, nil
}

// escapeNXQL escapes a value for use inside a single-quoted NXQL literal.
func escapeNXQL(value string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
}

func sessionStatus[S output.Session](binding string, sessions *SessionManager[S]) domain.SessionStatus {
	status := domain.SessionStatus{Binding: binding, Open: sessions.IsOpen()}
	if lastUsed := sessions.LastUsed(); !lastUsed.IsZero() {
		status.LastUsed = &lastUsed
	}
	return status
}
