// Package format renders goveectl command output: account device
// listings, nickname and group tables, and per-target dispatch
// results. Output is styled with lipgloss when stdout is a terminal
// and degrades to plain text when piped.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"goveectl/internal/dispatch"
	"goveectl/internal/govee"
	"goveectl/internal/registry"
)

// DeviceList renders the account device listing, cross-referencing
// each device with any nicknames bound to its id.
func DeviceList(devices []govee.DeviceInfo, nicknames map[string]registry.DeviceRef) string {
	if len(devices) == 0 {
		return "No devices found.\n"
	}

	idToNames := make(map[string][]string)
	for nick, ref := range nicknames {
		idToNames[ref.ID] = append(idToNames[ref.ID], nick)
	}

	var b strings.Builder
	for _, d := range devices {
		name := d.Name
		if name == "" {
			name = "(unnamed)"
		}
		names := idToNames[d.ID]
		sort.Strings(names)
		nickList := strings.Join(names, ", ")
		if nickList == "" {
			nickList = "-"
		}
		fmt.Fprintf(&b, "- %s %s\n", styled(NameStyle, name),
			styled(MutedStyle, fmt.Sprintf("id=%s model=%s controllable=%v retrievable=%v nicknames=[%s]",
				d.ID, d.Model, d.Controllable, d.Retrievable, nickList)))
	}
	return b.String()
}

// Nicknames renders the nickname table sorted by name.
func Nicknames(nicknames map[string]registry.DeviceRef) string {
	if len(nicknames) == 0 {
		return "(no nicknames) — create one with: goveectl names add <nick> -d <id> -m <model>\n"
	}

	names := lo.Keys(nicknames)
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		ref := nicknames[n]
		fmt.Fprintf(&b, "%s: %s\n", styled(NameStyle, n),
			styled(MutedStyle, fmt.Sprintf("id=%s model=%s", ref.ID, ref.Model)))
	}
	return b.String()
}

// Groups renders every group and its members, sorted by group name.
func Groups(groups map[string][]registry.Member) string {
	if len(groups) == 0 {
		return "(no groups) — create one with: goveectl groups add <group>\n"
	}

	names := lo.Keys(groups)
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		b.WriteString(Group(n, groups[n]))
	}
	return b.String()
}

// Group renders one group's member list in stored order.
func Group(name string, members []registry.Member) string {
	rendered := lo.Map(members, func(m registry.Member, _ int) string {
		return m.String()
	})
	return fmt.Sprintf("%s: [%s]\n", styled(NameStyle, name), strings.Join(rendered, ", "))
}

// DispatchResult renders the outcome of one send: a success line with
// the raw API response, or a failure line with the per-target error.
func DispatchResult(r dispatch.Result) string {
	if r.OK() {
		return fmt.Sprintf("%s %s %s\n",
			styled(SuccessStyle, SuccessMarker),
			r.Target.Signature(),
			styled(MutedStyle, compactJSON(r.Response)))
	}
	return fmt.Sprintf("%s %s %s\n",
		styled(ErrorStyle, FailureMarker),
		r.Target.Signature(),
		styled(ErrorStyle, r.Err.Error()))
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
