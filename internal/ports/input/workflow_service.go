package input

import (
	"context"

	"ecm-connector/internal/domain"
)

// WorkflowService interface - Input port (use case)
// Workflow instances and their tasks
type WorkflowService interface {
	StartWorkflow(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error)
	StartWorkflowWithVariables(ctx context.Context, doc domain.OperationInput, start domain.WorkflowStart) (*domain.Document, error)
	StartCamundaWorkflow(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error)
	SetWorkflowVar(ctx context.Context, instanceID, name string, value interface{}) error
	SetWorkflowNodeVar(ctx context.Context, doc domain.OperationInput, name string, value interface{}) (*domain.Document, error)
	CancelWorkflow(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error)
	TerminateWorkflow(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error)
	ResumeWorkflow(ctx context.Context, instanceID string) error

	GetUserTasks(ctx context.Context) (*domain.Documents, error)
	GetTask(ctx context.Context, id string) (*domain.Document, error)
	CreateTask(ctx context.Context, routing bool, params domain.Params, doc domain.OperationInput) (*domain.Document, error)
	CompleteTask(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error)
}

// PermissionService interface - Input port (use case)
type PermissionService interface {
	AddPermission(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error)
	RemovePermission(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error)
	AddPermissionToDocument(ctx context.Context, doc domain.OperationInput, grant domain.PermissionGrant) (*domain.Document, error)
	RemovePermissionFromDocument(ctx context.Context, doc domain.OperationInput, user, acl string) (*domain.Document, error)
	GetUsersAndGroups(ctx context.Context, doc domain.OperationInput, query domain.UsersAndGroupsQuery) (*domain.Document, error)
	QueryUsers(ctx context.Context, pattern, tenantID string) (*domain.Blob, error)
}

// CollectionService interface - Input port (use case)
// Collections, the worklist and the drive top level folder
type CollectionService interface {
	// CreateCollection creates a collection; doc, when not nil, is added to it.
	CreateCollection(ctx context.Context, name, description string, doc domain.OperationInput) (*domain.Document, error)
	GetCollections(ctx context.Context, searchTerm string) (*domain.Documents, error)
	GetDocumentsFromCollection(ctx context.Context, collection domain.OperationInput) (*domain.Documents, error)
	AddDocumentsToCollection(ctx context.Context, collection domain.OperationInput, documents domain.DocumentList) error
	AddToWorklist(ctx context.Context, doc domain.OperationInput) error
	GetWorklist(ctx context.Context) (*domain.Documents, error)
	GetTopLevelFolder(ctx context.Context) (*domain.Blob, error)
}
