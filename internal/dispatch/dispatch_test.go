package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goveectl/internal/govee"
	"goveectl/internal/registry"
)

// fakeController records every send and fails for configured ids.
type fakeController struct {
	sent    []string
	failIDs map[string]bool
}

func (f *fakeController) Control(ctx context.Context, id, model string, cmd govee.Command) (json.RawMessage, error) {
	f.sent = append(f.sent, id)
	if f.failIDs[id] {
		return nil, fmt.Errorf("send to %s failed", id)
	}
	return json.RawMessage(`{"code":200}`), nil
}

func TestApplySendsToEveryTargetInOrder(t *testing.T) {
	ctrl := &fakeController{}
	targets := []registry.DeviceRef{
		{ID: "a", Model: "H1"},
		{ID: "b", Model: "H1"},
		{ID: "c", Model: "H2"},
	}

	results := Apply(context.Background(), ctrl, targets, govee.Power(true))

	assert.Equal(t, []string{"a", "b", "c"}, ctrl.sent)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, targets[i], r.Target)
		assert.True(t, r.OK())
	}
}

func TestApplyFailureDoesNotAbortSiblings(t *testing.T) {
	ctrl := &fakeController{failIDs: map[string]bool{"b": true}}
	targets := []registry.DeviceRef{
		{ID: "a", Model: "H1"},
		{ID: "b", Model: "H1"},
		{ID: "c", Model: "H1"},
	}

	results := Apply(context.Background(), ctrl, targets, govee.Brightness(40))

	assert.Equal(t, []string{"a", "b", "c"}, ctrl.sent)
	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.True(t, results[2].OK())
	assert.ErrorContains(t, results[1].Err, "b")
}

func TestApplyNoTargets(t *testing.T) {
	ctrl := &fakeController{}
	results := Apply(context.Background(), ctrl, nil, govee.Power(false))
	assert.Empty(t, results)
	assert.Empty(t, ctrl.sent)
}

// The same device appearing twice gets two sends; no dedup happens at
// this layer.
func TestApplyDuplicateTargets(t *testing.T) {
	ctrl := &fakeController{}
	targets := []registry.DeviceRef{
		{ID: "a", Model: "H1"},
		{ID: "a", Model: "H1"},
	}

	results := Apply(context.Background(), ctrl, targets, govee.Power(true))
	assert.Equal(t, []string{"a", "a"}, ctrl.sent)
	assert.Len(t, results, 2)
}
