package input

import (
	"context"
	"time"

	"ecm-connector/internal/domain"
)

// DocumentService interface - Input port (use case)
// Reads against the automation binding
type DocumentService interface {
	// ListDocumentIDs lists every File document, leaving out ids that are
	// versions of another listed document. It starts a new cache epoch.
	ListDocumentIDs(ctx context.Context) ([]string, error)
	// ListDocumentIDsModifiedBetween is ListDocumentIDs restricted to dc:modified in [from, to].
	ListDocumentIDsModifiedBetween(ctx context.Context, from, to time.Time) ([]string, error)

	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	GetDocumentVersion(ctx context.Context, id string) (string, error)
	GetLastModified(ctx context.Context, id string) (*time.Time, error)
	GetURI(ctx context.Context, id string) (string, error)
	GetBlob(ctx context.Context, id string) (*domain.Blob, error)
	GetPath(ctx context.Context, id string) (string, error)
	GetACLs(ctx context.Context, id string) (string, error)
	GetAllVersions(ctx context.Context, id string) ([]string, error)
	GetDocumentVersions(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error)
	GetChildren(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error)

	// SendJSON issues a plain REST call below the api/v1/ root.
	SendJSON(ctx context.Context, method, path string, body []byte) (string, error)

	SessionStatus() domain.SessionStatus
	Shutdown()
}

// DocumentLifecycleService interface - Input port (use case)
// Mutations of single documents
type DocumentLifecycleService interface {
	CreateDocument(ctx context.Context, parent domain.OperationInput, docType string, properties domain.PropertyMap) (*domain.Document, error)
	CreateFolder(ctx context.Context, name, parentID string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error)
	LockDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error)
	UnlockDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error)
	CheckOutDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error)
	CheckInDocument(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error)
	DeleteDocument(ctx context.Context, doc domain.OperationInput) error
	SetLifeCycle(ctx context.Context, doc domain.OperationInput, transition string) (*domain.Document, error)
	MoveDocument(ctx context.Context, doc domain.OperationInput, targetID string) (*domain.Document, error)
	PublishDocument(ctx context.Context, doc domain.OperationInput, sectionID string, override bool) (*domain.Document, error)
	RenderDocument(ctx context.Context, doc domain.OperationInput, options domain.RenderOptions) (*domain.Blob, error)
	TagDocument(ctx context.Context, doc domain.OperationInput, tags []string) (*domain.Document, error)
	CreateVersion(ctx context.Context, doc domain.OperationInput, increment domain.VersionIncrement, save bool) (*domain.Document, error)
	ApproveDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error)
}
