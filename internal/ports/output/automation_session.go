package output

import (
	"context"

	"ecm-connector/internal/domain"
)

// HeaderDocumentProperties selects the document schemas returned with each document.
const HeaderDocumentProperties = "X-NXDocumentProperties"

// AutomationSession interface - Output port
// Defines what the application needs from the automation-operation binding.
type AutomationSession interface {
	Session

	// NewRequest starts building a call of the named operation (e.g. "Document.Create").
	NewRequest(operationID string) OperationRequest

	// GetFile downloads the blob at path, which is either an absolute URL as
	// found in file:content/data or a path relative to the server root.
	GetFile(ctx context.Context, path string) (*domain.Blob, error)
}

// OperationRequest interface - Output port
// A named remote call with named parameters and an optional input.
type OperationRequest interface {
	// Set adds a named parameter. Document values are sent by id,
	// PropertyMap values in the "key=value" line format.
	Set(name string, value interface{}) OperationRequest

	// SetHeader adds a request header.
	SetHeader(name, value string) OperationRequest

	// SetInput sets the operation input.
	SetInput(input domain.OperationInput) OperationRequest

	// Execute sends the request and decodes the response into a Result
	// variant. Backend failures are returned as *domain.RemoteError.
	Execute(ctx context.Context) (domain.Result, error)
}
