package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// PropertyMap is the property bag of a repository document, keyed by
// prefixed property name (dc:title, file:content, ...).
type PropertyMap map[string]interface{}

// String returns the property as a string, or "" when absent.
func (p PropertyMap) String(key string) string {
	value, ok := p[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Map returns a complex property (e.g. file:content) as a PropertyMap, or nil.
func (p PropertyMap) Map(key string) PropertyMap {
	switch value := p[key].(type) {
	case PropertyMap:
		return value
	case map[string]interface{}:
		return PropertyMap(value)
	default:
		return nil
	}
}

// Encode renders the map in the "key=value" line format accepted by the
// automation operations for their "properties" parameter. Keys are sorted so
// the encoding is stable.
func (p PropertyMap) Encode() string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(encodePropertyValue(p[key]))
	}
	return sb.String()
}

func encodePropertyValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		// newlines would split the entry
		return strings.ReplaceAll(v, "\n", `\n`)
	case []string:
		return strings.Join(v, ",")
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// Document struct - snapshot of a repository document as returned by the backend
type Document struct {
	ID                string
	Path              string
	Type              string
	State             string
	Title             string
	VersionLabel      string
	Repository        string
	ParentRef         string
	LockOwner         string
	LockCreated       *time.Time
	LastModified      *time.Time
	IsCheckedOut      bool
	Facets            []string
	Properties        PropertyMap
	ContextParameters PropertyMap
}

// InputRef renders the document as an automation operation input.
func (d *Document) InputRef() string {
	return "doc:" + d.ID
}

// Set writes a property value on the snapshot. The change is local until the
// document is passed to an update operation.
func (d *Document) Set(key string, value interface{}) {
	if d.Properties == nil {
		d.Properties = PropertyMap{}
	}
	d.Properties[key] = value
}

// Documents struct - a collection of documents, optionally one page of a larger result
type Documents struct {
	Entries     []Document
	IsPaginable bool
	PageIndex   int
	PageSize    int
	PageCount   int
	TotalSize   int
}

// Size returns the number of entries.
func (d *Documents) Size() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// IDs returns the ids of all entries in order.
func (d *Documents) IDs() []string {
	if d == nil {
		return []string{}
	}
	ids := make([]string, 0, len(d.Entries))
	for _, doc := range d.Entries {
		ids = append(ids, doc.ID)
	}
	return ids
}

// Blob struct - binary content downloaded from or rendered by the repository
type Blob struct {
	FileName string
	MimeType string
	Data     []byte
}

// Length returns the size of the content in bytes.
func (b *Blob) Length() int {
	return len(b.Data)
}

// OperationInput is anything that can be passed as the input of an automation operation.
type OperationInput interface {
	InputRef() string
}

// DocRef references a document by id without holding a snapshot.
type DocRef string

// InputRef renders the id as an automation operation input.
func (r DocRef) InputRef() string {
	return "doc:" + string(r)
}

// DocumentList passes several documents as one operation input.
type DocumentList []Document

// InputRef renders the list as an automation operation input.
func (l DocumentList) InputRef() string {
	ids := make([]string, 0, len(l))
	for _, doc := range l {
		ids = append(ids, doc.ID)
	}
	return "docs:" + strings.Join(ids, ",")
}
