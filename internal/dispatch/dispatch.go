// Package dispatch fans a control command out to a list of resolved
// targets, one send per target, collecting results independently. A
// failure on one target never aborts the remaining sends; each result
// carries either the raw API response or the per-target error.
// Sends run sequentially and are never retried at this layer.
package dispatch

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"goveectl/internal/govee"
	"goveectl/internal/logging"
	"goveectl/internal/registry"
)

// Controller sends one command to one device. Satisfied by
// *govee.Client; faked in tests.
type Controller interface {
	Control(ctx context.Context, id, model string, cmd govee.Command) (json.RawMessage, error)
}

// Result is the outcome of one send. Exactly one of Response and Err
// is set.
type Result struct {
	Target   registry.DeviceRef
	Response json.RawMessage
	Err      error
}

// OK reports whether the send succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Apply sends cmd to every target in order and returns one result per
// target, in target order.
func Apply(ctx context.Context, ctrl Controller, targets []registry.DeviceRef, cmd govee.Command) []Result {
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		resp, err := ctrl.Control(ctx, target.ID, target.Model, cmd)
		if err != nil {
			logging.Warn("control send failed",
				zap.String("device", target.ID),
				zap.String("model", target.Model),
				zap.String("command", cmd.Name),
				zap.Error(err),
			)
		}
		results = append(results, Result{Target: target, Response: resp, Err: err})
	}
	return results
}
