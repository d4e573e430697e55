package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

// Params carries the named parameters of an automation operation.
type Params map[string]interface{}

// VersionIncrement selects the version number bumped by Document.CreateVersion
type VersionIncrement string

const (
	// VersionIncrementNone const
	VersionIncrementNone VersionIncrement = "None"
	// VersionIncrementMinor const
	VersionIncrementMinor VersionIncrement = "Minor"
	// VersionIncrementMajor const
	VersionIncrementMajor VersionIncrement = "Major"
)

// DefaultACL is the ACL permissions are written to when none is given.
const DefaultACL = "local"

type (
	// PermissionGrant struct - a permission to add to a document
	PermissionGrant struct {
		Permission       string
		User             string
		ACL              string // defaults to DefaultACL
		BlockInheritance bool
	}

	// UsersAndGroupsQuery struct - parameters of Context.GetUsersGroupIdsWithPermissionOnDoc
	UsersAndGroupsQuery struct {
		Permission        string
		VariableName      string
		IgnoreGroups      bool
		PrefixIdentifiers bool
		ResolveGroups     bool
	}

	// RenderOptions struct - parameters of Render.Document; empty values use the backend defaults
	RenderOptions struct {
		Template string
		FileName string // default output.ftl
		MimeType string // default text/xml
		Type     string // ftl or mvel
	}

	// WorkflowStart struct - parameters of Context.StartWorkflow with workflow variables
	WorkflowStart struct {
		WorkflowID string
		Start      bool
		Variables  PropertyMap
	}
)

// AuditStatus type
type AuditStatus string

const (
	// AuditStatusSuccess const
	AuditStatusSuccess AuditStatus = "SUCCESS"
	// AuditStatusFailure const
	AuditStatusFailure AuditStatus = "FAILURE"
)

type (
	// AuditEntryRequest struct - Domain request DTO
	AuditEntryRequest struct {
		RequestID  *uuid.UUID
		Operation  string
		DocumentID string
		Status     AuditStatus
		Error      string
		Duration   time.Duration
	}

	// QueryAuditRequest struct - Domain query request DTO
	QueryAuditRequest struct {
		Operation  *string
		DocumentID *string
		Status     *string

		Limit      *int
		Page       *int
		OrderBy    *string
		Asc        *bool
		Pagination *Pagination
		SortMethod *SortMethod
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// SortMethod struct
	SortMethod struct {
		Asc     bool
		OrderBy string
	}

	// AuditEntryResponse struct - Domain response DTO
	AuditEntryResponse struct {
		ID         *uuid.UUID   `json:"id,omitempty"`
		RequestID  *uuid.UUID   `json:"request_id,omitempty"`
		Operation  *string      `json:"operation,omitempty"`
		DocumentID *string      `json:"document_id,omitempty"`
		Status     *AuditStatus `json:"status,omitempty"`
		Error      *string      `json:"error,omitempty"`
		DurationMs *int64       `json:"duration_ms,omitempty"`
		CreatedAt  *time.Time   `json:"created_at,omitempty"`
	}

	// AuditListResponse struct - Domain list response DTO
	AuditListResponse struct {
		Entries     []AuditEntryResponse
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
	}
)
