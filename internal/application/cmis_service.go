package application

import (
	"context"
	"fmt"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CMISService struct - Application service for the content-interoperability binding
type CMISService struct {
	sessions *SessionManager[output.CMISSession]
}

// NewCMISService func - Creates the CMIS facade
func NewCMISService(sessions *SessionManager[output.CMISSession]) *CMISService {
	return &CMISService{
		sessions: sessions,
	}
}

// RepositoryInfo func
func (s *CMISService) RepositoryInfo(ctx context.Context) (*domain.RepositoryInfo, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.RepositoryInfo(ctx)
}

// RootFolder func
func (s *CMISService) RootFolder(ctx context.Context) (*domain.CMISObject, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.RootFolder(ctx)
}

// GetObject func
func (s *CMISService) GetObject(ctx context.Context, id string) (*domain.CMISObject, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty object id", domain.ErrInvalidRequest)
	}
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetObject(ctx, id)
}

// GetObjectByPath func
func (s *CMISService) GetObjectByPath(ctx context.Context, path string) (*domain.CMISObject, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetObjectByPath(ctx, path)
}

// GetLatestDocumentVersion func
func (s *CMISService) GetLatestDocumentVersion(ctx context.Context, id string) (*domain.CMISObject, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetLatestDocumentVersion(ctx, id)
}

// GetChildren func
func (s *CMISService) GetChildren(ctx context.Context, folderID string) ([]domain.CMISObject, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetChildren(ctx, folderID)
}

// Query func - Use case: run a CMIS SQL statement
func (s *CMISService) Query(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error) {
	if statement == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidRequest)
	}
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	results, err := session.Query(ctx, statement, searchAllVersions)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return results, nil
}

// QueryCollections func - Use case: every collection document of the repository
func (s *CMISService) QueryCollections(ctx context.Context) ([]domain.QueryResult, error) {
	return s.Query(ctx, domain.AllCollectionsQuery, false)
}

// CreateDocument func
func (s *CMISService) CreateDocument(ctx context.Context, request domain.CreateDocumentRequest) (string, error) {
	if request.FolderID == "" {
		return "", fmt.Errorf("%w: folder id is required", domain.ErrInvalidRequest)
	}
	if _, ok := request.Properties[domain.CMISPropName]; !ok {
		return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidRequest, domain.CMISPropName)
	}
	if _, ok := request.Properties[domain.CMISPropObjectTypeID]; !ok {
		request.Properties[domain.CMISPropObjectTypeID] = string(domain.CMISTypeDocument)
	}
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return "", err
	}
	return session.CreateDocument(ctx, request)
}

// CreateDocumentFromSource func - Use case: copy a document into a folder
func (s *CMISService) CreateDocumentFromSource(ctx context.Context, sourceID string, properties map[string]interface{}, folderID string, state domain.VersioningState) (string, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return "", err
	}
	return session.CreateDocumentFromSource(ctx, sourceID, properties, folderID, state)
}

// CreateFolder func
func (s *CMISService) CreateFolder(ctx context.Context, properties map[string]interface{}, parentID string) (string, error) {
	if properties == nil {
		properties = map[string]interface{}{}
	}
	if _, ok := properties[domain.CMISPropObjectTypeID]; !ok {
		properties[domain.CMISPropObjectTypeID] = string(domain.CMISTypeFolder)
	}
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return "", err
	}
	return session.CreateFolder(ctx, properties, parentID)
}

// CreateItem func
func (s *CMISService) CreateItem(ctx context.Context, properties map[string]interface{}, folderID string) (string, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return "", err
	}
	return session.CreateItem(ctx, properties, folderID)
}

// Delete func
func (s *CMISService) Delete(ctx context.Context, id string, allVersions bool) error {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	return session.Delete(ctx, id, allVersions)
}

// MoveObject func - Use case: move the latest version of id between folders
func (s *CMISService) MoveObject(ctx context.Context, id, sourceFolderID, targetFolderID string) (*domain.CMISObject, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := session.GetLatestDocumentVersion(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Move(ctx, latest.ID, sourceFolderID, targetFolderID)
}

// GetACL func
func (s *CMISService) GetACL(ctx context.Context, id string, onlyBasicPermissions bool) (*domain.ACL, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.GetACL(ctx, id, onlyBasicPermissions)
}

// ApplyACL func
func (s *CMISService) ApplyACL(ctx context.Context, id string, add, remove []domain.ACE, propagation domain.ACLPropagation) (*domain.ACL, error) {
	if len(add) == 0 && len(remove) == 0 {
		return nil, fmt.Errorf("%w: no access control entries given", domain.ErrInvalidRequest)
	}
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.ApplyACL(ctx, id, add, remove, propagation)
}

// ApplyPolicy func
func (s *CMISService) ApplyPolicy(ctx context.Context, id string, policyIDs ...string) error {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	return session.ApplyPolicy(ctx, id, policyIDs...)
}

// TypeDefinition func
func (s *CMISService) TypeDefinition(ctx context.Context, typeID string) (*domain.TypeDefinition, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.TypeDefinition(ctx, typeID)
}

// TypeChildren func
func (s *CMISService) TypeChildren(ctx context.Context, typeID string, includePropertyDefinitions bool) ([]domain.TypeDefinition, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.TypeChildren(ctx, typeID, includePropertyDefinitions)
}

// CreateType func
func (s *CMISService) CreateType(ctx context.Context, definition domain.TypeDefinition) (*domain.TypeDefinition, error) {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return session.CreateType(ctx, definition)
}

// DeleteType func
func (s *CMISService) DeleteType(ctx context.Context, typeID string) error {
	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	return session.DeleteType(ctx, typeID)
}

// ContentStreamFromText func - Builds an upload from a string
func (s *CMISService) ContentStreamFromText(mimeType, text, fileName string) *domain.ContentStream {
	return &domain.ContentStream{
		FileName: fileName,
		MimeType: valueOr(mimeType, "text/plain"),
		Data:     []byte(text),
	}
}

// SessionStatus func - Reports the CMIS session for health checks
func (s *CMISService) SessionStatus() domain.SessionStatus {
	return sessionStatus("cmis", s.sessions)
}

// Shutdown func - Closes the CMIS session
func (s *CMISService) Shutdown() {
	s.sessions.Shutdown()
}
