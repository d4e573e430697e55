package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ecm-connector/internal/domain"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// Created response
	Created = Status{Code: http.StatusCreated, Message: []string{"Created"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Document not found"}}
	// ConFlict response
	ConFlict = Status{Code: http.StatusConflict, Message: []string{"Sorry, Data is conflict"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, The repository is not available"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// errorStatus maps a domain error onto the response status. The error text
// replaces the canned message so backend failures reach the caller verbatim.
func errorStatus(err error) Status {
	var status Status
	switch {
	// a failed handshake stays a gateway error whatever the backend answered
	case errors.Is(err, domain.ErrConnection):
		status = BadGateway
	case errors.Is(err, domain.ErrInvalidRequest):
		status = BadRequest
	case errors.Is(err, domain.ErrPermissionDenied):
		status = Forbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoContent):
		status = NotFound
	case errors.Is(err, domain.ErrAmbiguousResult), errors.Is(err, domain.ErrConflict):
		status = ConFlict
	case errors.Is(err, domain.ErrRepositoryUnavailable),
		errors.Is(err, domain.ErrSessionClosed),
		errors.Is(err, domain.ErrUnexpectedResult):
		status = BadGateway
	default:
		status = InternalServerError
	}
	status.Message = []string{err.Error()}
	return status
}

type (
	// DocumentResponse struct - HTTP response DTO for a single document
	DocumentResponse struct {
		ID           string                 `json:"id"`
		Path         string                 `json:"path,omitempty"`
		Type         string                 `json:"type,omitempty"`
		State        string                 `json:"state,omitempty"`
		Title        string                 `json:"title,omitempty"`
		VersionLabel string                 `json:"version_label,omitempty"`
		Repository   string                 `json:"repository,omitempty"`
		ParentRef    string                 `json:"parent_ref,omitempty"`
		LockOwner    string                 `json:"lock_owner,omitempty"`
		LockCreated  *time.Time             `json:"lock_created,omitempty"`
		LastModified *time.Time             `json:"last_modified,omitempty"`
		IsCheckedOut bool                   `json:"is_checked_out"`
		Facets       []string               `json:"facets,omitempty"`
		Properties   map[string]interface{} `json:"properties,omitempty"`
	}

	// DocumentIDsResponse struct - HTTP response DTO for id listings
	DocumentIDsResponse struct {
		IDs []string `json:"ids"`
	}

	// CMISObjectResponse struct - HTTP response DTO for a CMIS object
	CMISObjectResponse struct {
		ID           string                 `json:"id"`
		Name         string                 `json:"name,omitempty"`
		BaseTypeID   string                 `json:"base_type_id,omitempty"`
		ObjectTypeID string                 `json:"object_type_id,omitempty"`
		Path         string                 `json:"path,omitempty"`
		Properties   map[string]interface{} `json:"properties,omitempty"`
		Actions      []string               `json:"actions,omitempty"`
	}

	// RepositoryInfoResponse struct - HTTP response DTO for the CMIS repository
	RepositoryInfoResponse struct {
		ID             string                 `json:"id"`
		Name           string                 `json:"name,omitempty"`
		Description    string                 `json:"description,omitempty"`
		ProductName    string                 `json:"product_name,omitempty"`
		ProductVersion string                 `json:"product_version,omitempty"`
		CMISVersion    string                 `json:"cmis_version,omitempty"`
		RootFolderID   string                 `json:"root_folder_id,omitempty"`
		Capabilities   map[string]interface{} `json:"capabilities,omitempty"`
	}

	// ACEResponse struct - HTTP response DTO for an access control entry
	ACEResponse struct {
		Principal   string   `json:"principal"`
		Permissions []string `json:"permissions"`
		IsDirect    bool     `json:"is_direct"`
	}

	// AuditEntryResponse struct - HTTP response DTO for an audit entry
	AuditEntryResponse struct {
		ID         *uuid.UUID `json:"id,omitempty"`
		RequestID  *uuid.UUID `json:"request_id,omitempty"`
		Operation  *string    `json:"operation,omitempty"`
		DocumentID *string    `json:"document_id,omitempty"`
		Status     *string    `json:"status,omitempty"`
		Error      *string    `json:"error,omitempty"`
		DurationMs *int64     `json:"duration_ms,omitempty"`
		CreatedAt  *time.Time `json:"created_at,omitempty"`
	}

	// HealthResponse struct - HTTP response DTO for the health check
	HealthResponse struct {
		Sessions []domain.SessionStatus `json:"sessions"`
		Audit    bool                   `json:"audit"`
	}
)

func toDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:           doc.ID,
		Path:         doc.Path,
		Type:         doc.Type,
		State:        doc.State,
		Title:        doc.Title,
		VersionLabel: doc.VersionLabel,
		Repository:   doc.Repository,
		ParentRef:    doc.ParentRef,
		LockOwner:    doc.LockOwner,
		LockCreated:  doc.LockCreated,
		LastModified: doc.LastModified,
		IsCheckedOut: doc.IsCheckedOut,
		Facets:       doc.Facets,
		Properties:   doc.Properties,
	}
}

func toDocumentListResponse(docs *domain.Documents) []DocumentResponse {
	data := make([]DocumentResponse, 0, docs.Size())
	if docs == nil {
		return data
	}
	for i := range docs.Entries {
		data = append(data, toDocumentResponse(&docs.Entries[i]))
	}
	return data
}

func toCMISObjectResponse(object *domain.CMISObject) CMISObjectResponse {
	return CMISObjectResponse{
		ID:           object.ID,
		Name:         object.Name,
		BaseTypeID:   object.BaseTypeID,
		ObjectTypeID: object.ObjectTypeID,
		Path:         object.Path,
		Properties:   object.Properties,
		Actions:      object.Actions,
	}
}

func toACLResponse(acl *domain.ACL) []ACEResponse {
	data := make([]ACEResponse, 0, len(acl.ACEs))
	for _, ace := range acl.ACEs {
		data = append(data, ACEResponse{
			Principal:   ace.Principal,
			Permissions: ace.Permissions,
			IsDirect:    ace.IsDirect,
		})
	}
	return data
}

// rawJSON passes a backend JSON body through unchanged; anything that is not
// JSON is sent as a string.
func rawJSON(body string) interface{} {
	if json.Valid([]byte(body)) {
		return json.RawMessage(body)
	}
	return body
}
