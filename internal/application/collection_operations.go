package application

import (
	"context"
	"fmt"

	"ecm-connector/internal/domain"

	"github.com/sirupsen/logrus"
)

// CreateCollection func - Use case: create a collection, optionally adding doc to it
func (s *DocumentService) CreateCollection(ctx context.Context, name, description string, doc domain.OperationInput) (*domain.Document, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: collection name is required", domain.ErrInvalidRequest)
	}
	params := domain.Params{"name": name}
	if description != "" {
		params["description"] = description
	}
	return s.document(ctx, opCreateCollection, doc, params)
}

// GetCollections func - Use case: collections whose title matches searchTerm
func (s *DocumentService) GetCollections(ctx context.Context, searchTerm string) (*domain.Documents, error) {
	return s.documents(ctx, opGetCollections, nil, domain.Params{"searchTerm": searchTerm})
}

// GetDocumentsFromCollection func
func (s *DocumentService) GetDocumentsFromCollection(ctx context.Context, collection domain.OperationInput) (*domain.Documents, error) {
	return s.documents(ctx, opGetDocumentsFromCollection, collection, nil)
}

// AddDocumentsToCollection func - Use case: add all documents in one request
func (s *DocumentService) AddDocumentsToCollection(ctx context.Context, collection domain.OperationInput, documents domain.DocumentList) error {
	if collection == nil {
		return fmt.Errorf("%w: collection is required", domain.ErrInvalidRequest)
	}
	if len(documents) == 0 {
		logrus.Warnf("No documents to add to collection %s", collection.InputRef())
		return nil
	}
	_, err := s.execute(ctx, opAddToCollection, documents, domain.Params{"collection": collection})
	return err
}

// AddToWorklist func
func (s *DocumentService) AddToWorklist(ctx context.Context, doc domain.OperationInput) error {
	_, err := s.execute(ctx, opAddToWorklist, doc, nil)
	return err
}

// GetWorklist func
func (s *DocumentService) GetWorklist(ctx context.Context) (*domain.Documents, error) {
	return s.documents(ctx, opFetchFromWorklist, nil, nil)
}

// GetTopLevelFolder func - Use case: the drive top level folder descriptor
func (s *DocumentService) GetTopLevelFolder(ctx context.Context) (*domain.Blob, error) {
	return s.blob(ctx, opGetTopLevelFolder, nil, nil)
}
