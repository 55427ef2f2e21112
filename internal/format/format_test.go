package format

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goveectl/internal/dispatch"
	"goveectl/internal/govee"
	"goveectl/internal/registry"
)

// Tests run with stdout piped, so rendering is plain text.

func TestDeviceList(t *testing.T) {
	devices := []govee.DeviceInfo{
		{ID: "AA:BB", Model: "H6008", Name: "Lamp", Controllable: true, Retrievable: true},
		{ID: "CC:DD", Model: "H6159", Name: ""},
	}
	nicknames := map[string]registry.DeviceRef{
		"desk": {ID: "AA:BB", Model: "H6008"},
		"lamp": {ID: "AA:BB", Model: "H6008"},
	}

	out := DeviceList(devices, nicknames)
	assert.Contains(t, out, "Lamp")
	assert.Contains(t, out, "nicknames=[desk, lamp]")
	assert.Contains(t, out, "(unnamed)")
	assert.Contains(t, out, "nicknames=[-]")
}

func TestDeviceListEmpty(t *testing.T) {
	assert.Equal(t, "No devices found.\n", DeviceList(nil, nil))
}

func TestNicknamesSorted(t *testing.T) {
	out := Nicknames(map[string]registry.DeviceRef{
		"zed":  {ID: "z", Model: "H1"},
		"apex": {ID: "a", Model: "H2"},
	})
	assert.Less(t, indexOf(t, out, "apex"), indexOf(t, out, "zed"))
}

func TestGroupRendersMembersInOrder(t *testing.T) {
	members := []registry.Member{
		registry.NicknameMember("lamp"),
		registry.InlineMember(registry.DeviceRef{ID: "x", Model: "H1"}),
	}
	assert.Equal(t, "room: [lamp, x:H1]\n", Group("room", members))
}

func TestDispatchResult(t *testing.T) {
	ok := dispatch.Result{
		Target:   registry.DeviceRef{ID: "a", Model: "H1"},
		Response: json.RawMessage(`{"code": 200}`),
	}
	out := DispatchResult(ok)
	assert.Contains(t, out, SuccessMarker)
	assert.Contains(t, out, "a:H1")
	assert.Contains(t, out, `{"code":200}`)

	failed := dispatch.Result{
		Target: registry.DeviceRef{ID: "b", Model: "H1"},
		Err:    errors.New("rate limited"),
	}
	out = DispatchResult(failed)
	assert.Contains(t, out, FailureMarker)
	assert.Contains(t, out, "rate limited")
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	i := strings.Index(s, sub)
	require.GreaterOrEqual(t, i, 0, "%q not in %q", sub, s)
	return i
}
