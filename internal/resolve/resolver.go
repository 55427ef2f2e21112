package resolve

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"goveectl/internal/govee"
	"goveectl/internal/logging"
	"goveectl/internal/registry"
)

// DeviceLister enumerates the devices on the account. Satisfied by
// *govee.Client; faked in tests.
type DeviceLister interface {
	ListDevices(ctx context.Context) ([]govee.DeviceInfo, error)
}

// Selector is the user's chosen way of specifying targets for one
// invocation. Zero values mean "not supplied".
type Selector struct {
	Name   string // nickname
	Group  string // group name
	Device string // explicit device id
	Model  string // explicit model
}

// Resolver resolves selectors against a loaded registry, with the
// account device listing as a fallback for implicit selection.
type Resolver struct {
	Registry *registry.Registry
	Devices  DeviceLister

	// AutoDetectModel is the one hardware model eligible for implicit
	// selection. Implicit selection requires exactly one device of
	// this model on the account.
	AutoDetectModel string

	// Notices receives informational messages such as which device
	// auto-detection selected. Nil discards them.
	Notices io.Writer
}

// Resolve turns a selector into an ordered, non-empty list of device
// targets. It performs no network I/O except on the implicit
// auto-detect path.
func (r *Resolver) Resolve(ctx context.Context, sel Selector) ([]registry.DeviceRef, error) {
	if sel.Name != "" && sel.Group != "" {
		return nil, newError(KindAmbiguousSelector, "use only one of --name or --group (or explicit --device/--model)")
	}

	if sel.Group != "" {
		return r.resolveGroup(sel.Group)
	}

	target, err := r.resolveSingle(ctx, sel)
	if err != nil {
		return nil, err
	}
	return []registry.DeviceRef{target}, nil
}

// resolveGroup expands a group selector to its members in stored
// order. Nickname members resolve through the current nickname table;
// a member that no longer resolves fails the whole resolution rather
// than silently shortening the target list.
func (r *Resolver) resolveGroup(name string) ([]registry.DeviceRef, error) {
	members, err := r.Registry.Group(name)
	if err != nil {
		return nil, err
	}

	targets := make([]registry.DeviceRef, 0, len(members))
	for _, m := range members {
		switch m.Kind() {
		case registry.MemberNickname:
			ref, ok := r.Registry.Nicknames[m.Nickname()]
			if !ok {
				return nil, newError(KindGroupUnknownNickname,
					"group %q refers to unknown nickname %q; add it with `names add`", name, m.Nickname())
			}
			targets = append(targets, ref)
		case registry.MemberInline:
			targets = append(targets, m.Ref())
		default:
			return nil, newError(KindInvalidMember, "invalid member in group %q: %s", name, m)
		}
	}

	if len(targets) == 0 {
		return nil, newError(KindEmptyGroup, "group %q has no members", name)
	}
	return targets, nil
}

func (r *Resolver) resolveSingle(ctx context.Context, sel Selector) (registry.DeviceRef, error) {
	if sel.Name != "" {
		return r.Registry.ResolveNickname(sel.Name)
	}
	if sel.Device != "" && sel.Model != "" {
		return registry.DeviceRef{ID: sel.Device, Model: sel.Model}, nil
	}
	return r.autoDetect(ctx)
}

// autoDetect selects the single device of the configured model on the
// account. It is intentionally narrow: with zero or several candidates
// it refuses to guess.
func (r *Resolver) autoDetect(ctx context.Context) (registry.DeviceRef, error) {
	devices, err := r.Devices.ListDevices(ctx)
	if err != nil {
		return registry.DeviceRef{}, fmt.Errorf("cannot list account devices: %w", err)
	}

	matches := lo.Filter(devices, func(d govee.DeviceInfo, _ int) bool {
		return d.Model == r.AutoDetectModel
	})
	if len(matches) != 1 {
		return registry.DeviceRef{}, newError(KindAutoDetect,
			"found %d %s devices on the account; specify --name, --group or --device/--model, or have exactly one %s",
			len(matches), r.AutoDetectModel, r.AutoDetectModel)
	}

	selected := matches[0]
	logging.Info("auto-detected device",
		zap.String("device", selected.ID),
		zap.String("model", selected.Model),
	)
	if r.Notices != nil {
		fmt.Fprintf(r.Notices, "[info] using detected %s device: %s\n", selected.Model, selected.ID)
	}
	return registry.DeviceRef{ID: selected.ID, Model: selected.Model}, nil
}
