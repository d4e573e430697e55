package application

import (
	"context"
	"fmt"
	"strings"

	"ecm-connector/internal/domain"
)

// CreateDocument func - Use case: create a document below parent. The name is taken from dc:title.
func (s *DocumentService) CreateDocument(ctx context.Context, parent domain.OperationInput, docType string, properties domain.PropertyMap) (*domain.Document, error) {
	if docType == "" {
		return nil, fmt.Errorf("%w: document type is required", domain.ErrInvalidRequest)
	}
	params := domain.Params{
		"type":       docType,
		"properties": properties,
	}
	if name := properties.String("dc:title"); name != "" {
		params["name"] = name
	}
	return s.document(ctx, opDocumentCreate, parent, params)
}

// CreateFolder func - Use case: create a Folder titled name below the document parentID
func (s *DocumentService) CreateFolder(ctx context.Context, name, parentID string) (*domain.Document, error) {
	parent, err := s.GetDocument(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return s.CreateDocument(ctx, parent, "Folder", domain.PropertyMap{"dc:title": name})
}

// UpdateDocument func - Use case: pass params to Document.Update
func (s *DocumentService) UpdateDocument(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error) {
	return s.document(ctx, opDocumentUpdate, doc, params)
}

// LockDocument func
func (s *DocumentService) LockDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error) {
	return s.document(ctx, opDocumentLock, doc, nil)
}

// UnlockDocument func
func (s *DocumentService) UnlockDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error) {
	return s.document(ctx, opDocumentUnlock, doc, nil)
}

// CheckOutDocument func
func (s *DocumentService) CheckOutDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error) {
	return s.document(ctx, opDocumentCheckOut, doc, nil)
}

// CheckInDocument func - Use case: check in with e.g. version and comment params
func (s *DocumentService) CheckInDocument(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error) {
	return s.document(ctx, opDocumentCheckIn, doc, params)
}

// DeleteDocument func
func (s *DocumentService) DeleteDocument(ctx context.Context, doc domain.OperationInput) error {
	_, err := s.execute(ctx, opDocumentDelete, doc, nil)
	return err
}

// SetLifeCycle func - Use case: follow a lifecycle transition (e.g. "approve")
func (s *DocumentService) SetLifeCycle(ctx context.Context, doc domain.OperationInput, transition string) (*domain.Document, error) {
	if transition == "" {
		return nil, fmt.Errorf("%w: lifecycle transition is required", domain.ErrInvalidRequest)
	}
	return s.document(ctx, opDocumentSetLifeCycle, doc, domain.Params{"value": transition})
}

// MoveDocument func
func (s *DocumentService) MoveDocument(ctx context.Context, doc domain.OperationInput, targetID string) (*domain.Document, error) {
	return s.document(ctx, opDocumentMove, doc, domain.Params{"target": targetID})
}

// PublishDocument func - Use case: publish to a section, replacing an earlier publication when override is set
func (s *DocumentService) PublishDocument(ctx context.Context, doc domain.OperationInput, sectionID string, override bool) (*domain.Document, error) {
	return s.document(ctx, opDocumentPublish, doc, domain.Params{
		"target":   sectionID,
		"override": override,
	})
}

// RenderDocument func - Use case: render a document through a template
func (s *DocumentService) RenderDocument(ctx context.Context, doc domain.OperationInput, options domain.RenderOptions) (*domain.Blob, error) {
	if options.Template == "" {
		return nil, fmt.Errorf("%w: render template is required", domain.ErrInvalidRequest)
	}
	params := domain.Params{
		"template": options.Template,
		"filename": valueOr(options.FileName, defaultRenderFileName),
		"mimetype": valueOr(options.MimeType, defaultRenderMimeType),
		"type":     valueOr(options.Type, defaultRenderType),
	}
	return s.blob(ctx, opRenderDocument, doc, params)
}

// TagDocument func
func (s *DocumentService) TagDocument(ctx context.Context, doc domain.OperationInput, tags []string) (*domain.Document, error) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: no tags given", domain.ErrInvalidRequest)
	}
	return s.document(ctx, opTagDocument, doc, domain.Params{"tags": strings.Join(cleaned, ",")})
}

// CreateVersion func - Use case: snapshot a version, bumping the given part of the label
func (s *DocumentService) CreateVersion(ctx context.Context, doc domain.OperationInput, increment domain.VersionIncrement, save bool) (*domain.Document, error) {
	switch increment {
	case "":
		increment = domain.VersionIncrementNone
	case domain.VersionIncrementNone, domain.VersionIncrementMinor, domain.VersionIncrementMajor:
	default:
		return nil, fmt.Errorf("%w: increment %q", domain.ErrInvalidRequest, increment)
	}
	return s.document(ctx, opDocumentCreateVersion, doc, domain.Params{
		"increment":    string(increment),
		"saveDocument": save,
	})
}

// ApproveDocument func - Use case: run the ApproveDocument chain, which must be deployed on the server
func (s *DocumentService) ApproveDocument(ctx context.Context, doc domain.OperationInput) (*domain.Document, error) {
	return s.document(ctx, opApproveDocument, doc, nil)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
