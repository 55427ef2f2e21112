// Package resolve turns a user-supplied selector into the concrete
// list of device targets a command applies to.
//
// A selector is at most one of a nickname or a group name, optionally
// accompanied by an explicit device id and model pair. Group selectors
// expand to the group's members in stored order, with nickname members
// resolved through the registry at resolution time. When nothing is
// given at all, the resolver falls back to auto-detection: it lists
// the account's devices and selects the single device of the
// configured auto-detect model, failing when there are zero or several.
//
// All resolution and validation happens before any command is sent,
// so a failed resolution never issues a partial set of commands.
package resolve
