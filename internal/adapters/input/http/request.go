package http

type (
	// ListDocumentsRequest struct - HTTP query request DTO
	ListDocumentsRequest struct {
		From *string `json:"from" validate:"omitempty,datetime=2006-01-02" form:"from" query:"from"`
		To   *string `json:"to" validate:"omitempty,datetime=2006-01-02" form:"to" query:"to"`
	}

	// CreateDocumentRequest struct - HTTP request DTO
	CreateDocumentRequest struct {
		Type       string                 `json:"type" validate:"required,max=100" form:"type"`
		Properties map[string]interface{} `json:"properties" validate:"required,dive,keys,xpath,endkeys" form:"properties"`
	}

	// UpdateDocumentRequest struct - HTTP request DTO
	UpdateDocumentRequest struct {
		Properties  map[string]interface{} `json:"properties" validate:"required,min=1,dive,keys,xpath,endkeys" form:"properties"`
		ChangeToken *string                `json:"change_token" validate:"omitempty" form:"change_token"`
	}

	// CheckInRequest struct - HTTP request DTO
	CheckInRequest struct {
		Version *string `json:"version" validate:"omitempty,oneof=minor major" form:"version"`
		Comment *string `json:"comment" validate:"omitempty,max=500" form:"comment"`
	}

	// LifeCycleRequest struct - HTTP request DTO
	LifeCycleRequest struct {
		Transition string `json:"transition" validate:"required" form:"transition"`
	}

	// MoveRequest struct - HTTP request DTO
	MoveRequest struct {
		Target string `json:"target" validate:"required,uuid" form:"target"`
	}

	// PublishRequest struct - HTTP request DTO
	PublishRequest struct {
		Section  string `json:"section" validate:"required,uuid" form:"section"`
		Override bool   `json:"override" form:"override"`
	}

	// TagRequest struct - HTTP request DTO
	TagRequest struct {
		Tags []string `json:"tags" validate:"required,min=1,dive,required,max=100" form:"tags"`
	}

	// CreateVersionRequest struct - HTTP request DTO
	CreateVersionRequest struct {
		Increment string `json:"increment" validate:"omitempty,version_increment" form:"increment"`
		Save      bool   `json:"save" form:"save"`
	}

	// PermissionRequest struct - HTTP request DTO
	PermissionRequest struct {
		Permission       string `json:"permission" validate:"required" form:"permission"`
		User             string `json:"user" validate:"required" form:"user"`
		ACL              string `json:"acl" validate:"omitempty" form:"acl"`
		BlockInheritance bool   `json:"block_inheritance" form:"block_inheritance"`
	}

	// RemovePermissionRequest struct - HTTP query request DTO
	RemovePermissionRequest struct {
		User string `json:"user" validate:"required" form:"user" query:"user"`
		ACL  string `json:"acl" validate:"omitempty" form:"acl" query:"acl"`
	}

	// StartWorkflowRequest struct - HTTP request DTO
	StartWorkflowRequest struct {
		WorkflowID string                 `json:"workflow_id" validate:"required" form:"workflow_id"`
		Start      bool                   `json:"start" form:"start"`
		Variables  map[string]interface{} `json:"variables" validate:"omitempty" form:"variables"`
	}

	// CompleteTaskRequest struct - HTTP request DTO
	CompleteTaskRequest struct {
		Status  string  `json:"status" validate:"required" form:"status"`
		Comment *string `json:"comment" validate:"omitempty,max=500" form:"comment"`
	}

	// CollectionRequest struct - HTTP request DTO
	CollectionRequest struct {
		Name        string `json:"name" validate:"required,max=100" form:"name"`
		Description string `json:"description" validate:"omitempty,max=500" form:"description"`
	}

	// CollectionDocumentsRequest struct - HTTP request DTO
	CollectionDocumentsRequest struct {
		IDs []string `json:"ids" validate:"required,min=1,dive,uuid" form:"ids"`
	}

	// QueryAuditRequest struct - HTTP query request DTO
	QueryAuditRequest struct {
		Operation  *string `json:"operation" form:"operation" query:"operation"`
		DocumentID *string `json:"document_id" form:"document_id" query:"document_id"`
		Status     *string `json:"status" validate:"omitempty,oneof=SUCCESS FAILURE" form:"status" query:"status"`

		Limit   *int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=1000" form:"limit" query:"limit"`
		Page    *int    `json:"page,omitempty" validate:"omitempty,gte=1" form:"page" query:"page"`
		OrderBy *string `json:"order_by,omitempty" form:"order_by" query:"order_by"`
		Asc     *bool   `json:"asc,omitempty" form:"asc" query:"asc"`
	}

	// CMISQueryRequest struct - HTTP request DTO
	CMISQueryRequest struct {
		Statement         string `json:"statement" validate:"required" form:"statement"`
		SearchAllVersions bool   `json:"search_all_versions" form:"search_all_versions"`
	}

	// CMISDeleteRequest struct - HTTP query request DTO
	CMISDeleteRequest struct {
		AllVersions bool `json:"all_versions" form:"all_versions" query:"all_versions"`
	}

	// CMISPathRequest struct - HTTP query request DTO
	CMISPathRequest struct {
		Path string `json:"path" validate:"required,startswith=/" form:"path" query:"path"`
	}
)
