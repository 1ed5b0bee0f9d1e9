package engine

import (
	"context"

	"eveuniverse/internal/universe/schema"
)

// Task is one deferred load of an entity row, dispatched when a parent
// fans out to its children without waiting for them.
type Task struct {
	EntityType      string
	ID              int64
	Sections        []schema.Section
	IncludeChildren bool
}

// Runtime accepts tasks for background execution. Submit only enqueues;
// execution failures are handled by the runtime's own retry policy.
type Runtime interface {
	Submit(ctx context.Context, task Task) error
}

// Run executes one task synchronously. Task runtimes call this from their
// workers.
func (e *Engine) Run(ctx context.Context, task Task) error {
	_, _, err := e.UpdateOrCreate(ctx, task.EntityType, task.ID, LoadOptions{
		Sections:        task.Sections,
		IncludeChildren: task.IncludeChildren,
	})
	return err
}
