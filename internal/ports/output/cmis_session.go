package output

import (
	"context"

	"ecm-connector/internal/domain"
)

// CMISSession interface - Output port
// Defines what the application needs from the content-interoperability binding.
type CMISSession interface {
	Session

	RepositoryInfo(ctx context.Context) (*domain.RepositoryInfo, error)
	RootFolder(ctx context.Context) (*domain.CMISObject, error)
	GetObject(ctx context.Context, objectID string) (*domain.CMISObject, error)
	GetObjectByPath(ctx context.Context, path string) (*domain.CMISObject, error)
	GetLatestDocumentVersion(ctx context.Context, objectID string) (*domain.CMISObject, error)
	GetChildren(ctx context.Context, folderID string) ([]domain.CMISObject, error)

	// Query runs a CMIS SQL statement.
	Query(ctx context.Context, statement string, searchAllVersions bool) ([]domain.QueryResult, error)

	// CreateDocument returns the id of the new document.
	CreateDocument(ctx context.Context, request domain.CreateDocumentRequest) (string, error)
	CreateDocumentFromSource(ctx context.Context, sourceID string, properties map[string]interface{}, folderID string, state domain.VersioningState) (string, error)
	CreateFolder(ctx context.Context, properties map[string]interface{}, parentID string) (string, error)
	CreateItem(ctx context.Context, properties map[string]interface{}, folderID string) (string, error)
	Delete(ctx context.Context, objectID string, allVersions bool) error
	Move(ctx context.Context, objectID, sourceFolderID, targetFolderID string) (*domain.CMISObject, error)

	GetACL(ctx context.Context, objectID string, onlyBasicPermissions bool) (*domain.ACL, error)
	ApplyACL(ctx context.Context, objectID string, add, remove []domain.ACE, propagation domain.ACLPropagation) (*domain.ACL, error)
	ApplyPolicy(ctx context.Context, objectID string, policyIDs ...string) error

	TypeDefinition(ctx context.Context, typeID string) (*domain.TypeDefinition, error)
	TypeChildren(ctx context.Context, typeID string, includePropertyDefinitions bool) ([]domain.TypeDefinition, error)
	CreateType(ctx context.Context, definition domain.TypeDefinition) (*domain.TypeDefinition, error)
	DeleteType(ctx context.Context, typeID string) error
}
