package domain

import (
	"strings"
	"time"
)

// CMIS property ids used by the connector
const (
	CMISPropObjectID         = "cmis:objectId"
	CMISPropName             = "cmis:name"
	CMISPropBaseTypeID       = "cmis:baseTypeId"
	CMISPropObjectTypeID     = "cmis:objectTypeId"
	CMISPropPath             = "cmis:path"
	CMISPropVersionLabel     = "cmis:versionLabel"
	CMISPropVersionSeriesID  = "cmis:versionSeriesId"
	CMISPropIsLatestVersion  = "cmis:isLatestVersion"
	CMISPropLastModification = "cmis:lastModificationDate"
	CMISPropMimeType         = "cmis:contentStreamMimeType"
	CMISPropContentLength    = "cmis:contentStreamLength"
)

// CMISType identifies the object types the connector works with
type CMISType string

const (
	// CMISTypeDocument const
	CMISTypeDocument CMISType = "cmis:document"
	// CMISTypeFolder const
	CMISTypeFolder CMISType = "cmis:folder"
	// CMISTypeCollection const
	CMISTypeCollection CMISType = "Collection"
)

// AllCollectionsQuery selects every collection document in the repository.
const AllCollectionsQuery = "SELECT * FROM cmis:document WHERE cmis:objectTypeId = 'Collection'"

// VersioningState controls the version created by document creation
type VersioningState string

const (
	// VersioningNone const
	VersioningNone VersioningState = "none"
	// VersioningCheckedOut const
	VersioningCheckedOut VersioningState = "checkedout"
	// VersioningMinor const
	VersioningMinor VersioningState = "minor"
	// VersioningMajor const
	VersioningMajor VersioningState = "major"
)

// ACLPropagation controls how ACL changes reach descendants
type ACLPropagation string

const (
	// ACLPropagationRepositoryDetermined const
	ACLPropagationRepositoryDetermined ACLPropagation = "repositorydetermined"
	// ACLPropagationObjectOnly const
	ACLPropagationObjectOnly ACLPropagation = "objectonly"
	// ACLPropagationPropagate const
	ACLPropagationPropagate ACLPropagation = "propagate"
)

type (
	// CMISObject struct - an object of the CMIS binding with its properties
	CMISObject struct {
		ID           string
		Name         string
		BaseTypeID   string
		ObjectTypeID string
		Path         string
		Properties   map[string]interface{}
		Actions      []string
	}

	// RepositoryInfo struct - description of the repository behind a CMIS endpoint
	RepositoryInfo struct {
		ID                string
		Name              string
		Description       string
		VendorName        string
		ProductName       string
		ProductVersion    string
		CMISVersion       string
		RootFolderID      string
		RepositoryURL     string
		RootFolderURL     string
		Capabilities      map[string]interface{}
		LatestChangeToken string
	}

	// ACE struct - a single access control entry
	ACE struct {
		Principal   string
		Permissions []string
		IsDirect    bool
	}

	// ACL struct - the access control list of an object
	ACL struct {
		ACEs    []ACE
		IsExact bool
	}

	// ContentStream struct - content uploaded with a CMIS document
	ContentStream struct {
		FileName string
		MimeType string
		Data     []byte
	}

	// CreateDocumentRequest struct - input of CMIS document creation
	CreateDocumentRequest struct {
		Properties      map[string]interface{}
		FolderID        string
		Content         *ContentStream
		VersioningState VersioningState
		Policies        []string
		AddACEs         []ACE
		RemoveACEs      []ACE
	}

	// TypeDefinition struct - definition of a CMIS object type
	TypeDefinition struct {
		ID                  string                 `json:"id"`
		LocalName           string                 `json:"localName,omitempty"`
		LocalNamespace      string                 `json:"localNamespace,omitempty"`
		DisplayName         string                 `json:"displayName,omitempty"`
		QueryName           string                 `json:"queryName,omitempty"`
		Description         string                 `json:"description,omitempty"`
		BaseID              string                 `json:"baseId"`
		ParentID            string                 `json:"parentId,omitempty"`
		Creatable           bool                   `json:"creatable"`
		Fileable            bool                   `json:"fileable"`
		Queryable           bool                   `json:"queryable"`
		PropertyDefinitions map[string]interface{} `json:"propertyDefinitions,omitempty"`
	}

	// QueryResult struct - one row of a CMIS query
	QueryResult struct {
		Properties map[string]interface{}
	}
)

// String returns a property as a string, or "" when absent.
func (o *CMISObject) String(key string) string {
	if s, ok := o.Properties[key].(string); ok {
		return s
	}
	return ""
}

// LastModified returns cmis:lastModificationDate, which the browser binding
// transports as epoch milliseconds.
func (o *CMISObject) LastModified() *time.Time {
	ms, ok := o.Properties[CMISPropLastModification].(float64)
	if !ok {
		return nil
	}
	t := time.UnixMilli(int64(ms)).UTC()
	return &t
}

// IsFolder reports whether the object is a folder.
func (o *CMISObject) IsFolder() bool {
	return o.BaseTypeID == string(CMISTypeFolder)
}

// CanDo reports whether the allowable actions of the object contain action
// (e.g. "canCheckOut").
func (o *CMISObject) CanDo(action string) bool {
	for _, a := range o.Actions {
		if strings.EqualFold(a, action) {
			return true
		}
	}
	return false
}

// ID returns the cmis:objectId of the row, if selected.
func (r QueryResult) ID() string {
	if s, ok := r.Properties[CMISPropObjectID].(string); ok {
		return s
	}
	return ""
}
