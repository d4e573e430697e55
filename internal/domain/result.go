package domain

import "fmt"

// ResultKind tells which variant a Result holds.
type ResultKind int

const (
	// ResultVoid - the operation produced no output
	ResultVoid ResultKind = iota
	// ResultDocument - a single entity
	ResultDocument
	// ResultDocuments - an entity collection
	ResultDocuments
	// ResultBlob - binary content
	ResultBlob
)

func (k ResultKind) String() string {
	switch k {
	case ResultVoid:
		return "void"
	case ResultDocument:
		return "document"
	case ResultDocuments:
		return "documents"
	case ResultBlob:
		return "blob"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the output of an automation operation. The variant is decided
// once, where the backend response is decoded.
type Result struct {
	kind      ResultKind
	document  *Document
	documents *Documents
	blob      *Blob
}

// VoidResult builds an empty result.
func VoidResult() Result {
	return Result{kind: ResultVoid}
}

// DocumentResult builds a single-entity result.
func DocumentResult(doc *Document) Result {
	return Result{kind: ResultDocument, document: doc}
}

// DocumentsResult builds an entity-collection result.
func DocumentsResult(docs *Documents) Result {
	return Result{kind: ResultDocuments, documents: docs}
}

// BlobResult builds a binary result.
func BlobResult(blob *Blob) Result {
	return Result{kind: ResultBlob, blob: blob}
}

// Kind returns the held variant.
func (r Result) Kind() ResultKind {
	return r.kind
}

// Document returns the single entity.
func (r Result) Document() (*Document, error) {
	if r.kind != ResultDocument {
		return nil, r.mismatch(ResultDocument)
	}
	return r.document, nil
}

// Documents returns the entity collection.
func (r Result) Documents() (*Documents, error) {
	if r.kind != ResultDocuments {
		return nil, r.mismatch(ResultDocuments)
	}
	return r.documents, nil
}

// Blob returns the binary content.
func (r Result) Blob() (*Blob, error) {
	if r.kind != ResultBlob {
		return nil, r.mismatch(ResultBlob)
	}
	return r.blob, nil
}

// FirstDocument returns the single entity, or the first entry of a collection.
func (r Result) FirstDocument() (*Document, error) {
	switch r.kind {
	case ResultDocument:
		return r.document, nil
	case ResultDocuments:
		if r.documents.Size() == 0 {
			return nil, fmt.Errorf("%w: empty document collection", ErrNotFound)
		}
		return &r.documents.Entries[0], nil
	default:
		return nil, r.mismatch(ResultDocument)
	}
}

func (r Result) mismatch(want ResultKind) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrUnexpectedResult, want, r.kind)
}
