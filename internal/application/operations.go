package application

// Automation operation and chain ids
const (
	opDocumentQuery       = "Document.Query"
	opDocumentGetVersions = "Document.GetVersions"
	opDocumentGetChildren = "Document.GetChildren"

	opDocumentCreate        = "Document.Create"
	opDocumentUpdate        = "Document.Update"
	opDocumentLock          = "Document.Lock"
	opDocumentUnlock        = "Document.Unlock"
	opDocumentCheckOut      = "Document.CheckOut"
	opDocumentCheckIn       = "Document.CheckIn"
	opDocumentDelete        = "Document.Delete"
	opDocumentSetLifeCycle  = "Document.SetLifeCycle"
	opDocumentMove          = "Document.Move"
	opDocumentPublish       = "Document.Publish"
	opDocumentCreateVersion = "Document.CreateVersion"
	opRenderDocument        = "Render.Document"
	opTagDocument           = "Services.TagDocument"
	opApproveDocument       = "ApproveDocument" // studio chain

	opStartWorkflow       = "Context.StartWorkflow"
	opStartCamunda        = "Camunda.StartWorkflow"
	opSetWorkflowVar      = "Context.SetWorkflowVar"
	opSetWorkflowNodeVar  = "Context.SetWorkflowNodeVar"
	opCancelWorkflow      = "cancelWorkflow"    // chain
	opTerminateWorkflow   = "terminateWorkflow" // chain
	opResumeWorkflow      = "Workflow.ResumeNodeOperation"
	opGetTask             = "Workflow.GetTask"
	opCreateRoutingTask   = "Workflow.CreateRoutingTask"
	opCreateTask          = "Workflow.CreateTask"
	opCompleteTask        = "Workflow.CompleteTaskOperation"
	opAddPermission       = "Document.AddPermission"
	opRemovePermission    = "Document.RemovePermission"
	opUsersWithPermission = "Context.GetUsersGroupIdsWithPermissionOnDoc"
	opQueryUsers          = "Services.QueryUsers"

	opCreateCollection           = "Collection.CreateCollection"
	opGetCollections             = "Collection.GetCollections"
	opGetDocumentsFromCollection = "Collection.GetDocumentsFromCollection"
	opAddToCollection            = "Collection.AddToCollection"
	opAddToWorklist              = "Seam.AddToWorklist"
	opFetchFromWorklist          = "Seam.FetchFromWorklist"
	opGetTopLevelFolder          = "NuxeoDrive.GetTopLevelFolder"
)

// Render.Document defaults
const (
	defaultRenderFileName = "output.ftl"
	defaultRenderMimeType = "text/xml"
	defaultRenderType     = "ftl"
)

// NXQL statements
const (
	queryAllFiles   = "SELECT * FROM Document WHERE ecm:primaryType = 'File'"
	queryByUUID     = "SELECT * FROM Document WHERE ecm:uuid = '%s'"
	queryModifiedIn = " AND dc:modified >= TIMESTAMP '%s' AND dc:modified <= TIMESTAMP '%s'"
)
