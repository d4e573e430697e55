package input

import (
	"context"

	"ecm-connector/internal/domain"
)

// CMISService interface - Input port (use case)
// Operations against the content-interoperability binding
type CMISService interface {
	RepositoryInfo(ctx context.Context) (*domain.RepositoryInfo, error)
	RootFolder(ctx context.Context) (*domain.CMISObject, error)
	GetObject(ctx context.Context, id string) (*domain.CMISObject, error)
	GetObjectByPath(ctx context.Context, path string) (*domain.CMISObject, error)
	GetLatestDocumentVersion(ctx context.Context, id string) (*domain.CMISObject, error)
	GetChildren(ctx context.Context, folderID string) ([]domain.CMISObject, error)

	Query(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error)
	QueryCollections(ctx context.Context) ([]domain.QueryResult, error)

	CreateDocument(ctx context.Context, request domain.CreateDocumentRequest) (string, error)
	CreateDocumentFromSource(ctx context.Context, sourceID string, properties map[string]interface{}, folderID string, state domain.VersioningState) (string, error)
	CreateFolder(ctx context.Context, properties map[string]interface{}, parentID string) (string, error)
	CreateItem(ctx context.Context, properties map[string]interface{}, folderID string) (string, error)
	Delete(ctx context.Context, id string, allVersions bool) error
	// MoveObject moves the latest version of id.
	MoveObject(ctx context.Context, id, sourceFolderID, targetFolderID string) (*domain.CMISObject, error)

	GetACL(ctx context.Context, id string, onlyBasicPermissions bool) (*domain.ACL, error)
	ApplyACL(ctx context.Context, id string, add, remove []domain.ACE, propagation domain.ACLPropagation) (*domain.ACL, error)
	ApplyPolicy(ctx context.Context, id string, policyIDs ...string) error

	TypeDefinition(ctx context.Context, typeID string) (*domain.TypeDefinition, error)
	TypeChildren(ctx context.Context, typeID string, includePropertyDefinitions bool) ([]domain.TypeDefinition, error)
	CreateType(ctx context.Context, definition domain.TypeDefinition) (*domain.TypeDefinition, error)
	DeleteType(ctx context.Context, typeID string) error

	ContentStreamFromText(mimeType, text, fileName string) *domain.ContentStream

	SessionStatus() domain.SessionStatus
	Shutdown()
}
