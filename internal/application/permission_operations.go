package application

import (
	"context"
	"fmt"

	"ecm-connector/internal/domain"
)

// AddPermission func - Use case: pass params to Document.AddPermission
func (s *DocumentService) AddPermission(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error) {
	return s.document(ctx, opAddPermission, doc, params)
}

// RemovePermission func - Use case: pass params to Document.RemovePermission
func (s *DocumentService) RemovePermission(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error) {
	return s.document(ctx, opRemovePermission, doc, params)
}

// AddPermissionToDocument func - Use case: grant a permission to a user
func (s *DocumentService) AddPermissionToDocument(ctx context.Context, doc domain.OperationInput, grant domain.PermissionGrant) (*domain.Document, error) {
	if grant.Permission == "" || grant.User == "" {
		return nil, fmt.Errorf("%w: permission and user are required", domain.ErrInvalidRequest)
	}
	return s.document(ctx, opAddPermission, doc, domain.Params{
		"permission":       grant.Permission,
		"username":         grant.User,
		"acl":              valueOr(grant.ACL, domain.DefaultACL),
		"blockInheritance": grant.BlockInheritance,
	})
}

// RemovePermissionFromDocument func - Use case: revoke the permissions of a user in one ACL
func (s *DocumentService) RemovePermissionFromDocument(ctx context.Context, doc domain.OperationInput, user, acl string) (*domain.Document, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", domain.ErrInvalidRequest)
	}
	return s.document(ctx, opRemovePermission, doc, domain.Params{
		"user": user,
		"acl":  valueOr(acl, domain.DefaultACL),
	})
}

// GetUsersAndGroups func - Use case: store the principals holding a permission on doc in a context variable
func (s *DocumentService) GetUsersAndGroups(ctx context.Context, doc domain.OperationInput, query domain.UsersAndGroupsQuery) (*domain.Document, error) {
	if query.Permission == "" || query.VariableName == "" {
		return nil, fmt.Errorf("%w: permission and variable name are required", domain.ErrInvalidRequest)
	}
	return s.document(ctx, opUsersWithPermission, doc, domain.Params{
		"permission":         query.Permission,
		"variable name":      query.VariableName,
		"ignore groups":      query.IgnoreGroups,
		"prefix identifiers": query.PrefixIdentifiers,
		"resolve groups":     query.ResolveGroups,
	})
}

// QueryUsers func - Use case: search users; the JSON listing comes back as a blob
func (s *DocumentService) QueryUsers(ctx context.Context, pattern, tenantID string) (*domain.Blob, error) {
	params := domain.Params{}
	if pattern != "" {
		params["pattern"] = pattern
	}
	if tenantID != "" {
		params["tenantId"] = tenantID
	}
	return s.blob(ctx, opQueryUsers, nil, params)
}
