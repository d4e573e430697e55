package http

import (
	"errors"
	"fmt"
	"time"

	"ecm-connector/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// ListDocuments func
// ListDocuments godoc
// @Summary List documents
// @Description Ids of all File documents that are not versions of another document, optionally modified within [from, to]
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents [get]
// @Produce json
// @param from query string false "yyyy-mm-dd"
// @param to query string false "yyyy-mm-dd"
func (hdl *HTTPHandler) ListDocuments(c *fiber.Ctx) error {
	var request ListDocumentsRequest
	if err := hdl.parseQuery(c, &request); err != nil {
		return badRequest(c, err)
	}
	if (request.From == nil) != (request.To == nil) {
		return badRequest(c, errors.New("from and to must be given together"))
	}

	var (
		ids []string
		err error
	)
	if request.From == nil {
		ids, err = hdl.documents.ListDocumentIDs(c.UserContext())
	} else {
		// the validator already checked the layout
		from, _ := domain.ParseQueryDate(*request.From)
		to, _ := domain.ParseQueryDate(*request.To)
		ids, err = hdl.documents.ListDocumentIDsModifiedBetween(c.UserContext(), from, domain.EndOfDay(to))
	}
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: DocumentIDsResponse{IDs: ids}})
}

// GetDocument func - documents returned by the last listing are served from
// its snapshot, so changes made since then show up after the next listing.
// GetDocument godoc
// @Summary Get document
// @Description Documents seen by the last listing are served from its snapshot until the next listing
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id} [get]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) GetDocument(c *fiber.Ctx) error {
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	doc, err := hdl.documents.GetDocument(c.UserContext(), id)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toDocumentResponse(doc)})
}

// GetDocumentVersions func
// GetDocumentVersions godoc
// @Summary List version ids of a document
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/versions [get]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) GetDocumentVersions(c *fiber.Ctx) error {
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	ids, err := hdl.documents.GetAllVersions(c.UserContext(), id)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: DocumentIDsResponse{IDs: ids}})
}

// GetDocumentACL func
// GetDocumentACL godoc
// @Summary Get the ACLs of a document as returned by the repository
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/acl [get]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) GetDocumentACL(c *fiber.Ctx) error {
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	body, err := hdl.documents.GetACLs(c.UserContext(), id)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: rawJSON(body)})
}

// GetDocumentBlob func
// GetDocumentBlob godoc
// @Summary Download the main file of a document
// @Tags DOCUMENT
// @Success 200 {file} binary
// @Router /v1/api/documents/{id}/blob [get]
// @param id path string true "uuid"
func (hdl *HTTPHandler) GetDocumentBlob(c *fiber.Ctx) error {
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	blob, err := hdl.documents.GetBlob(c.UserContext(), id)
	if err != nil {
		return failure(c, err)
	}
	if blob.FileName != "" {
		c.Attachment(blob.FileName)
	}
	if blob.MimeType != "" {
		c.Set(fiber.HeaderContentType, blob.MimeType)
	}
	return c.Status(fiber.StatusOK).Send(blob.Data)
}

// GetDocumentChildren func
// GetDocumentChildren godoc
// @Summary List the children of a folderish document
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/children [get]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) GetDocumentChildren(c *fiber.Ctx) error {
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	docs, err := hdl.documents.GetChildren(c.UserContext(), domain.DocRef(id))
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toDocumentListResponse(docs)})
}

// CreateDocument func
// CreateDocument godoc
// @Summary Create a document below a parent
// @Tags DOCUMENT
// @Accept application/json
// @Success 201 {object} ResponseBody
// @Router /v1/api/documents/{id}/children [post]
// @Produce json
// @param id path string true "parent uuid"
// @param CreateDocument body CreateDocumentRequest true "CreateDocument"
func (hdl *HTTPHandler) CreateDocument(c *fiber.Ctx) error {
	started := time.Now()
	parentID, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	var request CreateDocumentRequest
	if err := hdl.parseBody(c, &request); err != nil {
		return badRequest(c, err)
	}

	doc, err := hdl.lifecycle.CreateDocument(c.UserContext(), domain.DocRef(parentID), request.Type, domain.PropertyMap(request.Properties))
	hdl.record(c, "document.create", parentID, started, err)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: toDocumentResponse(doc)})
}

// UpdateDocument func
// UpdateDocument godoc
// @Summary Update document properties
// @Tags DOCUMENT
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id} [put]
// @Produce json
// @param id path string true "uuid"
// @param UpdateDocument body UpdateDocumentRequest true "UpdateDocument"
func (hdl *HTTPHandler) UpdateDocument(c *fiber.Ctx) error {
	started := time.Now()
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	var request UpdateDocumentRequest
	if err := hdl.parseBody(c, &request); err != nil {
		return badRequest(c, err)
	}

	params := domain.Params{
		"properties": domain.PropertyMap(request.Properties),
		"save":       true,
	}
	if request.ChangeToken != nil {
		params["changeToken"] = *request.ChangeToken
	}
	doc, err := hdl.lifecycle.UpdateDocument(c.UserContext(), domain.DocRef(id), params)
	hdl.record(c, "document.update", id, started, err)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toDocumentResponse(doc)})
}

// DeleteDocument func
// DeleteDocument godoc
// @Summary Delete document
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id} [delete]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) DeleteDocument(c *fiber.Ctx) error {
	started := time.Now()
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	err = hdl.lifecycle.DeleteDocument(c.UserContext(), domain.DocRef(id))
	hdl.record(c, "document.delete", id, started, err)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// documentAction runs a mutation of the :id document and records it in the audit log
func (hdl *HTTPHandler) documentAction(operation string, action func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		id, err := documentID(c, "id")
		if err != nil {
			return failure(c, err)
		}
		doc, err := action(c, domain.DocRef(id))
		hdl.record(c, operation, id, started, err)
		if err != nil {
			return failure(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toDocumentResponse(doc)})
	}
}

// LockDocument godoc
// @Summary Lock document
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/lock [post]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) LockDocument() fiber.Handler {
	return hdl.documentAction("document.lock", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		return hdl.lifecycle.LockDocument(c.UserContext(), doc)
	})
}

// UnlockDocument godoc
// @Summary Unlock document
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/unlock [post]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) UnlockDocument() fiber.Handler {
	return hdl.documentAction("document.unlock", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		return hdl.lifecycle.UnlockDocument(c.UserContext(), doc)
	})
}

// CheckOutDocument godoc
// @Summary Check out document
// @Tags DOCUMENT
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/checkout [post]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) CheckOutDocument() fiber.Handler {
	return hdl.documentAction("document.checkout", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		return hdl.lifecycle.CheckOutDocument(c.UserContext(), doc)
	})
}

// CheckInDocument godoc
// @Summary Check in document
// @Tags DOCUMENT
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/checkin [post]
// @Produce json
// @param id path string true "uuid"
// @param CheckIn body CheckInRequest false "CheckIn"
func (hdl *HTTPHandler) CheckInDocument() fiber.Handler {
	return hdl.documentAction("document.checkin", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request CheckInRequest
		if len(c.Body()) > 0 {
			if err := hdl.parseBody(c, &request); err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
			}
		}
		params := domain.Params{}
		if request.Version != nil {
			params["version"] = *request.Version
		}
		if request.Comment != nil {
			params["comment"] = *request.Comment
		}
		return hdl.lifecycle.CheckInDocument(c.UserContext(), doc, params)
	})
}

// SetLifeCycle godoc
// @Summary Follow a lifecycle transition
// @Tags DOCUMENT
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/lifecycle [post]
// @Produce json
// @param id path string true "uuid"
// @param LifeCycle body LifeCycleRequest true "LifeCycle"
func (hdl *HTTPHandler) SetLifeCycle() fiber.Handler {
	return hdl.documentAction("document.lifecycle", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request LifeCycleRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.lifecycle.SetLifeCycle(c.UserContext(), doc, request.Transition)
	})
}

// MoveDocument godoc
// @Summary Move document
// @Tags DOCUMENT
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/move [post]
// @Produce json
// @param id path string true "uuid"
// @param Move body MoveRequest true "Move"
func (hdl *HTTPHandler) MoveDocument() fiber.Handler {
	return hdl.documentAction("document.move", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request MoveRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.lifecycle.MoveDocument(c.UserContext(), doc, request.Target)
	})
}

// PublishDocument godoc
// @Summary Publish document to a section
// @Tags DOCUMENT
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/publish [post]
// @Produce json
// @param id path string true "uuid"
// @param Publish body PublishRequest true "Publish"
func (hdl *HTTPHandler) PublishDocument() fiber.Handler {
	return hdl.documentAction("document.publish", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request PublishRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.lifecycle.PublishDocument(c.UserContext(), doc, request.Section, request.Override)
	})
}

// TagDocument godoc
// @Summary Tag document
// @Tags DOCUMENT
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/tags [post]
// @Produce json
// @param id path string true "uuid"
// @param Tag body TagRequest true "Tag"
func (hdl *HTTPHandler) TagDocument() fiber.Handler {
	return hdl.documentAction("document.tag", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request TagRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.lifecycle.TagDocument(c.UserContext(), doc, request.Tags)
	})
}

// CreateVersion godoc
// @Summary Create a version of a document
// @Tags DOCUMENT
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/versions [post]
// @Produce json
// @param id path string true "uuid"
// @param CreateVersion body CreateVersionRequest true "CreateVersion"
func (hdl *HTTPHandler) CreateVersion() fiber.Handler {
	return hdl.documentAction("document.version", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request CreateVersionRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.lifecycle.CreateVersion(c.UserContext(), doc, domain.VersionIncrement(request.Increment), request.Save)
	})
}

// AddPermission godoc
// @Summary Grant a permission on a document
// @Tags PERMISSION
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/permissions [post]
// @Produce json
// @param id path string true "uuid"
// @param Permission body PermissionRequest true "Permission"
func (hdl *HTTPHandler) AddPermission() fiber.Handler {
	return hdl.documentAction("permission.add", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request PermissionRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.permissions.AddPermissionToDocument(c.UserContext(), doc, domain.PermissionGrant{
			Permission:       request.Permission,
			User:             request.User,
			ACL:              request.ACL,
			BlockInheritance: request.BlockInheritance,
		})
	})
}

// RemovePermission godoc
// @Summary Revoke the permissions of a user on a document
// @Tags PERMISSION
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/permissions [delete]
// @Produce json
// @param id path string true "uuid"
// @param user query string true "user"
// @param acl query string false "acl"
func (hdl *HTTPHandler) RemovePermission() fiber.Handler {
	return hdl.documentAction("permission.remove", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request RemovePermissionRequest
		if err := hdl.parseQuery(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.permissions.RemovePermissionFromDocument(c.UserContext(), doc, request.User, request.ACL)
	})
}

// StartWorkflow godoc
// @Summary Start a workflow on a document
// @Tags WORKFLOW
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/documents/{id}/workflows [post]
// @Produce json
// @param id path string true "uuid"
// @param StartWorkflow body StartWorkflowRequest true "StartWorkflow"
func (hdl *HTTPHandler) StartWorkflow() fiber.Handler {
	return hdl.documentAction("workflow.start", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request StartWorkflowRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		return hdl.workflows.StartWorkflowWithVariables(c.UserContext(), doc, domain.WorkflowStart{
			WorkflowID: request.WorkflowID,
			Start:      request.Start,
			Variables:  domain.PropertyMap(request.Variables),
		})
	})
}

// CompleteTask godoc
// @Summary Complete a task
// @Tags WORKFLOW
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/tasks/{id}/complete [post]
// @Produce json
// @param id path string true "task uuid"
// @param CompleteTask body CompleteTaskRequest true "CompleteTask"
func (hdl *HTTPHandler) CompleteTask() fiber.Handler {
	return hdl.documentAction("task.complete", func(c *fiber.Ctx, doc domain.DocRef) (*domain.Document, error) {
		var request CompleteTaskRequest
		if err := hdl.parseBody(c, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		params := domain.Params{"status": request.Status}
		if request.Comment != nil {
			params["comment"] = *request.Comment
		}
		return hdl.workflows.CompleteTask(c.UserContext(), doc, params)
	})
}

// GetTasks func
// GetTasks godoc
// @Summary List the open tasks of the connected user
// @Tags WORKFLOW
// @Success 200 {object} ResponseBody
// @Router /v1/api/tasks [get]
// @Produce json
func (hdl *HTTPHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := hdl.workflows.GetUserTasks(c.UserContext())
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toDocumentListResponse(tasks)})
}

// GetCollections func
// GetCollections godoc
// @Summary Search collections
// @Tags COLLECTION
// @Success 200 {object} ResponseBody
// @Router /v1/api/collections [get]
// @Produce json
// @param search query string false "title search term"
func (hdl *HTTPHandler) GetCollections(c *fiber.Ctx) error {
	collections, err := hdl.collections.GetCollections(c.UserContext(), c.Query("search"))
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toDocumentListResponse(collections)})
}

// CreateCollection func
// CreateCollection godoc
// @Summary Create a collection
// @Tags COLLECTION
// @Accept application/json
// @Success 201 {object} ResponseBody
// @Router /v1/api/collections [post]
// @Produce json
// @param CreateCollection body CollectionRequest true "CreateCollection"
func (hdl *HTTPHandler) CreateCollection(c *fiber.Ctx) error {
	started := time.Now()
	var request CollectionRequest
	if err := hdl.parseBody(c, &request); err != nil {
		return badRequest(c, err)
	}
	collection, err := hdl.collections.CreateCollection(c.UserContext(), request.Name, request.Description, nil)
	collectionID := ""
	if collection != nil {
		collectionID = collection.ID
	}
	hdl.record(c, "collection.create", collectionID, started, err)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: toDocumentResponse(collection)})
}

// GetCollectionDocuments func
// GetCollectionDocuments godoc
// @Summary List the documents of a collection
// @Tags COLLECTION
// @Success 200 {object} ResponseBody
// @Router /v1/api/collections/{id}/documents [get]
// @Produce json
// @param id path string true "collection uuid"
func (hdl *HTTPHandler) GetCollectionDocuments(c *fiber.Ctx) error {
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	docs, err := hdl.collections.GetDocumentsFromCollection(c.UserContext(), domain.DocRef(id))
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toDocumentListResponse(docs)})
}

// AddCollectionDocuments func
// AddCollectionDocuments godoc
// @Summary Add documents to a collection
// @Tags COLLECTION
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/collections/{id}/documents [post]
// @Produce json
// @param id path string true "collection uuid"
// @param AddDocuments body CollectionDocumentsRequest true "AddDocuments"
func (hdl *HTTPHandler) AddCollectionDocuments(c *fiber.Ctx) error {
	started := time.Now()
	id, err := documentID(c, "id")
	if err != nil {
		return failure(c, err)
	}
	var request CollectionDocumentsRequest
	if err := hdl.parseBody(c, &request); err != nil {
		return badRequest(c, err)
	}

	documents := make(domain.DocumentList, 0, len(request.IDs))
	for _, docID := range request.IDs {
		documents = append(documents, domain.Document{ID: docID})
	}
	err = hdl.collections.AddDocumentsToCollection(c.UserContext(), domain.DocRef(id), documents)
	hdl.record(c, "collection.add", id, started, err)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}
