package application

import (
	"context"
	"fmt"

	"ecm-connector/internal/domain"
)

// StartWorkflow func - Use case: start a workflow on doc with raw params (id, start, variables)
func (s *DocumentService) StartWorkflow(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error) {
	return s.document(ctx, opStartWorkflow, doc, params)
}

// StartWorkflowWithVariables func - Use case: start a workflow model with initial variables
func (s *DocumentService) StartWorkflowWithVariables(ctx context.Context, doc domain.OperationInput, start domain.WorkflowStart) (*domain.Document, error) {
	if start.WorkflowID == "" {
		return nil, fmt.Errorf("%w: workflow id is required", domain.ErrInvalidRequest)
	}
	params := domain.Params{
		"id":    start.WorkflowID,
		"start": start.Start,
	}
	if len(start.Variables) > 0 {
		params["variables"] = start.Variables
	}
	return s.document(ctx, opStartWorkflow, doc, params)
}

// StartCamundaWorkflow func - Use case: hand doc over to a Camunda process
func (s *DocumentService) StartCamundaWorkflow(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error) {
	return s.document(ctx, opStartCamunda, doc, params)
}

// SetWorkflowVar func - Use case: set a variable of a workflow instance
func (s *DocumentService) SetWorkflowVar(ctx context.Context, instanceID, name string, value interface{}) error {
	if instanceID == "" || name == "" {
		return fmt.Errorf("%w: workflow instance id and variable name are required", domain.ErrInvalidRequest)
	}
	_, err := s.execute(ctx, opSetWorkflowVar, nil, domain.Params{
		"workflowInstanceId": instanceID,
		"name":               name,
		"value":              value,
	})
	return err
}

// SetWorkflowNodeVar func - Use case: set a variable of the current node of the workflow running on doc
func (s *DocumentService) SetWorkflowNodeVar(ctx context.Context, doc domain.OperationInput, name string, value interface{}) (*domain.Document, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: variable name is required", domain.ErrInvalidRequest)
	}
	return s.document(ctx, opSetWorkflowNodeVar, doc, domain.Params{
		"name":  name,
		"value": value,
	})
}

// CancelWorkflow func
func (s *DocumentService) CancelWorkflow(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error) {
	return s.documents(ctx, opCancelWorkflow, doc, nil)
}

// TerminateWorkflow func
func (s *DocumentService) TerminateWorkflow(ctx context.Context, doc domain.OperationInput) (*domain.Documents, error) {
	return s.documents(ctx, opTerminateWorkflow, doc, nil)
}

// ResumeWorkflow func
func (s *DocumentService) ResumeWorkflow(ctx context.Context, instanceID string) error {
	if instanceID == "" {
		return fmt.Errorf("%w: workflow instance id is required", domain.ErrInvalidRequest)
	}
	_, err := s.execute(ctx, opResumeWorkflow, nil, domain.Params{"workflowInstanceId": instanceID})
	return err
}

// GetUserTasks func - Use case: open tasks of the connected user
func (s *DocumentService) GetUserTasks(ctx context.Context) (*domain.Documents, error) {
	return s.documents(ctx, opGetTask, nil, nil)
}

// GetTask func - Use case: one open task of the connected user
func (s *DocumentService) GetTask(ctx context.Context, id string) (*domain.Document, error) {
	tasks, err := s.GetUserTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks.Entries {
		if tasks.Entries[i].ID == id {
			return &tasks.Entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: task %s", domain.ErrNotFound, id)
}

// CreateTask func - Use case: create a task on doc, as a routing task when routing is set
func (s *DocumentService) CreateTask(ctx context.Context, routing bool, params domain.Params, doc domain.OperationInput) (*domain.Document, error) {
	operationID := opCreateTask
	if routing {
		operationID = opCreateRoutingTask
	}
	return s.document(ctx, operationID, doc, params)
}

// CompleteTask func - Use case: complete a task document (params e.g. status, comment)
func (s *DocumentService) CompleteTask(ctx context.Context, doc domain.OperationInput, params domain.Params) (*domain.Document, error) {
	return s.document(ctx, opCompleteTask, doc, params)
}
