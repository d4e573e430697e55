package http

import (
	"fmt"
	"time"

	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/input"
	"ecm-connector/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// HeaderRequestID carries the id every audit entry of a request is stored under
	HeaderRequestID = "X-Request-ID"

	localRequestID = "request_id"
)

// Services struct - the use cases exposed by the gateway. CMIS is optional.
type Services struct {
	Documents   input.DocumentService
	Lifecycle   input.DocumentLifecycleService
	Workflows   input.WorkflowService
	Permissions input.PermissionService
	Collections input.CollectionService
	CMIS        input.CMISService
	Audit       input.AuditService
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	documents   input.DocumentService
	lifecycle   input.DocumentLifecycleService
	workflows   input.WorkflowService
	permissions input.PermissionService
	collections input.CollectionService
	cmis        input.CMISService
	audit       input.AuditService
	validator   validator.Validator
}

// New func - Creates new HTTP handler
func New(services Services) *HTTPHandler {
	return &HTTPHandler{
		documents:   services.Documents,
		lifecycle:   services.Lifecycle,
		workflows:   services.Workflows,
		permissions: services.Permissions,
		collections: services.Collections,
		cmis:        services.CMIS,
		audit:       services.Audit,
		validator:   validator.New(),
	}
}

// RequestID func - middleware that tags each request with a uuid, reusing a valid incoming one
func (hdl *HTTPHandler) RequestID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Get(HeaderRequestID))
	if err != nil {
		id = uuid.New()
	}
	c.Locals(localRequestID, id)
	c.Set(HeaderRequestID, id.String())
	return c.Next()
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Session state of every binding and audit database reachability
// @Tags HEALTH
// @Success 200 {object} ResponseBody
// @Router /health [get]
// @Produce json
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	health := HealthResponse{
		Sessions: []domain.SessionStatus{hdl.documents.SessionStatus()},
		Audit:    hdl.audit.Enabled(),
	}
	if hdl.cmis != nil {
		health.Sessions = append(health.Sessions, hdl.cmis.SessionStatus())
	}

	if err := hdl.audit.Ping(); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError, Data: health})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: health})
}

// badRequest answers with the validation or parse error as message
func badRequest(c *fiber.Ctx, err error) error {
	logrus.Errorln(err)
	msg := ResponseBody{
		Status: BadRequest,
	}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(fiber.StatusBadRequest).JSON(msg)
}

// failure answers with the status mapped from a service error
func failure(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	return c.Status(status.Code).JSON(ResponseBody{Status: status})
}

// parseBody decodes and validates the request body into request
func (hdl *HTTPHandler) parseBody(c *fiber.Ctx, request interface{}) error {
	if err := c.BodyParser(request); err != nil {
		return err
	}
	return hdl.validator.ValidateStruct(request)
}

// parseQuery decodes and validates the query string into request
func (hdl *HTTPHandler) parseQuery(c *fiber.Ctx, request interface{}) error {
	if err := c.QueryParser(request); err != nil {
		return err
	}
	return hdl.validator.ValidateStruct(request)
}

// documentID returns the :id path parameter, which must be a document uuid
func documentID(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: %s %q is not a document uuid", domain.ErrInvalidRequest, name, id)
	}
	return id, nil
}

// record stores the outcome of a mutating call in the audit log
func (hdl *HTTPHandler) record(c *fiber.Ctx, operation, documentID string, started time.Time, err error) {
	entry := domain.AuditEntryRequest{
		Operation:  operation,
		DocumentID: documentID,
		Status:     domain.AuditStatusSuccess,
		Duration:   time.Since(started),
	}
	if id, ok := c.Locals(localRequestID).(uuid.UUID); ok {
		entry.RequestID = &id
	}
	if err != nil {
		entry.Status = domain.AuditStatusFailure
		entry.Error = err.Error()
	}
	hdl.audit.Record(entry)
}

// GetAuditEntries func
// GetAuditEntries godoc
// @Summary List audit entries
// @Description Mutating gateway calls, newest first
// @Tags AUDIT
// @Success 200 {object} ResponseBody
// @Router /v1/api/audit [get]
// @Produce json
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "order_by"
// @param asc query bool false "asc"
// @param operation query string false "operation"
// @param document_id query string false "document_id"
// @param status query string false "SUCCESS or FAILURE"
func (hdl *HTTPHandler) GetAuditEntries(c *fiber.Ctx) error {
	var condition QueryAuditRequest
	if err := hdl.parseQuery(c, &condition); err != nil {
		return badRequest(c, err)
	}

	// Convert HTTP query request to domain query request
	result, err := hdl.audit.GetEntries(domain.QueryAuditRequest{
		Operation:  condition.Operation,
		DocumentID: condition.DocumentID,
		Status:     condition.Status,
		Limit:      condition.Limit,
		Page:       condition.Page,
		OrderBy:    condition.OrderBy,
		Asc:        condition.Asc,
	})
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	// Convert domain response to HTTP response
	data := make([]AuditEntryResponse, 0, len(result.Entries))
	for _, entry := range result.Entries {
		item := AuditEntryResponse{
			ID:         entry.ID,
			RequestID:  entry.RequestID,
			Operation:  entry.Operation,
			DocumentID: entry.DocumentID,
			Error:      entry.Error,
			DurationMs: entry.DurationMs,
			CreatedAt:  entry.CreatedAt,
		}
		if entry.Status != nil {
			status := string(*entry.Status)
			item.Status = &status
		}
		data = append(data, item)
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}
