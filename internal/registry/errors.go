package registry

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes registry errors so callers can distinguish
// fatal failures from informative no-ops.
type ErrorKind int

const (
	// KindCorrupt indicates the persisted registry file is unreadable
	// or structurally malformed.
	KindCorrupt ErrorKind = iota
	// KindUnknownNickname indicates a referenced nickname is not in
	// the registry.
	KindUnknownNickname
	// KindUnknownGroup indicates a referenced group is not in the
	// registry.
	KindUnknownGroup
	// KindGroupExists indicates a group creation hit an existing name.
	KindGroupExists
	// KindNoMembers indicates a membership operation was given nothing
	// to add or remove.
	KindNoMembers
	// KindReservedName indicates a nickname collides with the reserved
	// "_groups" key.
	KindReservedName
	// KindBadPair indicates an id:model pair argument could not be
	// parsed.
	KindBadPair
)

func (k ErrorKind) String() string {
	switch k {
	case KindCorrupt:
		return "corrupt registry"
	case KindUnknownNickname:
		return "unknown nickname"
	case KindUnknownGroup:
		return "unknown group"
	case KindGroupExists:
		return "group exists"
	case KindNoMembers:
		return "no members given"
	case KindReservedName:
		return "reserved name"
	case KindBadPair:
		return "bad device pair"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is a kind-tagged registry error.
type Error struct {
	Kind    ErrorKind
	Message string
	Path    string // registry file path, when relevant
	Err     error  // underlying error, when any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewCorruptError reports an unreadable or malformed registry file.
func NewCorruptError(path, message string, err error) *Error {
	return &Error{
		Kind:    KindCorrupt,
		Message: fmt.Sprintf("%s at %s", message, path),
		Path:    path,
		Err:     err,
	}
}

func kindOf(err error) (ErrorKind, bool) {
	var regErr *Error
	if errors.As(err, &regErr) {
		return regErr.Kind, true
	}
	return 0, false
}

// IsCorrupt reports whether err is a malformed-registry error.
func IsCorrupt(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindCorrupt
}

// IsUnknownNickname reports whether err is an unknown-nickname error.
func IsUnknownNickname(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnknownNickname
}

// IsUnknownGroup reports whether err is an unknown-group error.
func IsUnknownGroup(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnknownGroup
}

// IsGroupExists reports whether err signals that a group already
// existed. Callers treat this as an informative no-op rather than a
// process failure.
func IsGroupExists(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindGroupExists
}

// IsNoMembers reports whether err signals an empty membership request.
func IsNoMembers(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNoMembers
}
