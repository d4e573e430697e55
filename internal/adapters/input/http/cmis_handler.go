package http

import (
	"fmt"
	"time"

	"ecm-connector/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// objectID returns the :id path parameter. CMIS ids carry version suffixes
// (e.g. "<uuid>;1.0") so only presence is checked.
func objectID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if id == "" {
		return "", fmt.Errorf("%w: empty object id", domain.ErrInvalidRequest)
	}
	return id, nil
}

// GetRepository func
// GetRepository godoc
// @Summary CMIS repository information
// @Tags CMIS
// @Success 200 {object} ResponseBody
// @Router /v1/api/cmis/repository [get]
// @Produce json
func (hdl *HTTPHandler) GetRepository(c *fiber.Ctx) error {
	info, err := hdl.cmis.RepositoryInfo(c.UserContext())
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: RepositoryInfoResponse{
		ID:             info.ID,
		Name:           info.Name,
		Description:    info.Description,
		ProductName:    info.ProductName,
		ProductVersion: info.ProductVersion,
		CMISVersion:    info.CMISVersion,
		RootFolderID:   info.RootFolderID,
		Capabilities:   info.Capabilities,
	}})
}

// GetObject func
// GetObject godoc
// @Summary Get a CMIS object by id
// @Tags CMIS
// @Success 200 {object} ResponseBody
// @Router /v1/api/cmis/objects/{id} [get]
// @Produce json
// @param id path string true "object id"
func (hdl *HTTPHandler) GetObject(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return failure(c, err)
	}
	object, err := hdl.cmis.GetObject(c.UserContext(), id)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCMISObjectResponse(object)})
}

// GetObjectByPath func
// GetObjectByPath godoc
// @Summary Get a CMIS object by path
// @Tags CMIS
// @Success 200 {object} ResponseBody
// @Router /v1/api/cmis/objects [get]
// @Produce json
// @param path query string true "repository path"
func (hdl *HTTPHandler) GetObjectByPath(c *fiber.Ctx) error {
	var request CMISPathRequest
	if err := hdl.parseQuery(c, &request); err != nil {
		return badRequest(c, err)
	}
	object, err := hdl.cmis.GetObjectByPath(c.UserContext(), request.Path)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCMISObjectResponse(object)})
}

// GetObjectACL func
// GetObjectACL godoc
// @Summary Get the ACL of a CMIS object
// @Tags CMIS
// @Success 200 {object} ResponseBody
// @Router /v1/api/cmis/objects/{id}/acl [get]
// @Produce json
// @param id path string true "object id"
func (hdl *HTTPHandler) GetObjectACL(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return failure(c, err)
	}
	acl, err := hdl.cmis.GetACL(c.UserContext(), id, true)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toACLResponse(acl)})
}

// Query func
// Query godoc
// @Summary Run a CMIS query
// @Tags CMIS
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Router /v1/api/cmis/query [post]
// @Produce json
// @param Query body CMISQueryRequest true "Query"
func (hdl *HTTPHandler) Query(c *fiber.Ctx) error {
	var request CMISQueryRequest
	if err := hdl.parseBody(c, &request); err != nil {
		return badRequest(c, err)
	}
	results, err := hdl.cmis.Query(c.UserContext(), request.Statement, request.SearchAllVersions)
	if err != nil {
		return failure(c, err)
	}

	data := make([]map[string]interface{}, 0, len(results))
	for _, row := range results {
		data = append(data, row.Properties)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// DeleteObject func
// DeleteObject godoc
// @Summary Delete a CMIS object
// @Tags CMIS
// @Success 200 {object} ResponseBody
// @Router /v1/api/cmis/objects/{id} [delete]
// @Produce json
// @param id path string true "object id"
// @param all_versions query bool false "delete every version"
func (hdl *HTTPHandler) DeleteObject(c *fiber.Ctx) error {
	started := time.Now()
	id, err := objectID(c)
	if err != nil {
		return failure(c, err)
	}
	var request CMISDeleteRequest
	if err := hdl.parseQuery(c, &request); err != nil {
		return badRequest(c, err)
	}
	err = hdl.cmis.Delete(c.UserContext(), id, request.AllVersions)
	hdl.record(c, "cmis.delete", id, started, err)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}
