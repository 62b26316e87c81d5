package temporal

import (
	"context"

	"go.temporal.io/sdk/client"
)

// WorkflowStarter is the slice of client.Client used to enqueue wallet syncs
//
//go:generate mockgen -source=starter.go -destination=../../mocks/workflow_starter.go -package=mocks -mock_names=WorkflowStarter=MockWorkflowStarter
type WorkflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}
