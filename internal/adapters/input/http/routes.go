package http

import "github.com/gofiber/fiber/v2"

// Register func - mounts the health check and the /v1/api routes. The CMIS
// group is only mounted when a CMIS service was given.
func (hdl *HTTPHandler) Register(app fiber.Router) {
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/v1/api", hdl.RequestID)
	{
		api.Get("/documents", hdl.ListDocuments)
		api.Get("/documents/:id", hdl.GetDocument)
		api.Put("/documents/:id", hdl.UpdateDocument)
		api.Delete("/documents/:id", hdl.DeleteDocument)
		api.Get("/documents/:id/versions", hdl.GetDocumentVersions)
		api.Post("/documents/:id/versions", hdl.CreateVersion())
		api.Get("/documents/:id/acl", hdl.GetDocumentACL)
		api.Get("/documents/:id/blob", hdl.GetDocumentBlob)
		api.Get("/documents/:id/children", hdl.GetDocumentChildren)
		api.Post("/documents/:id/children", hdl.CreateDocument)
		api.Post("/documents/:id/lock", hdl.LockDocument())
		api.Post("/documents/:id/unlock", hdl.UnlockDocument())
		api.Post("/documents/:id/checkout", hdl.CheckOutDocument())
		api.Post("/documents/:id/checkin", hdl.CheckInDocument())
		api.Post("/documents/:id/lifecycle", hdl.SetLifeCycle())
		api.Post("/documents/:id/move", hdl.MoveDocument())
		api.Post("/documents/:id/publish", hdl.PublishDocument())
		api.Post("/documents/:id/tags", hdl.TagDocument())
		api.Post("/documents/:id/permissions", hdl.AddPermission())
		api.Delete("/documents/:id/permissions", hdl.RemovePermission())
		api.Post("/documents/:id/workflows", hdl.StartWorkflow())

		api.Get("/tasks", hdl.GetTasks)
		api.Post("/tasks/:id/complete", hdl.CompleteTask())

		api.Get("/collections", hdl.GetCollections)
		api.Post("/collections", hdl.CreateCollection)
		api.Get("/collections/:id/documents", hdl.GetCollectionDocuments)
		api.Post("/collections/:id/documents", hdl.AddCollectionDocuments)

		api.Get("/audit", hdl.GetAuditEntries)
	}

	if hdl.cmis == nil {
		return
	}
	cmis := api.Group("/cmis")
	{
		cmis.Get("/repository", hdl.GetRepository)
		cmis.Get("/objects", hdl.GetObjectByPath)
		cmis.Get("/objects/:id", hdl.GetObject)
		cmis.Delete("/objects/:id", hdl.DeleteObject)
		cmis.Get("/objects/:id/acl", hdl.GetObjectACL)
		cmis.Post("/query", hdl.Query)
	}
}
