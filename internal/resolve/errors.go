package resolve

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes resolution failures.
type ErrorKind int

const (
	// KindAmbiguousSelector indicates both a nickname and a group were
	// supplied.
	KindAmbiguousSelector ErrorKind = iota
	// KindAutoDetect indicates implicit selection found zero or
	// several eligible devices.
	KindAutoDetect
	// KindEmptyGroup indicates a group selector resolved to zero
	// targets.
	KindEmptyGroup
	// KindGroupUnknownNickname indicates a group member references a
	// nickname that no longer exists.
	KindGroupUnknownNickname
	// KindInvalidMember indicates a group member of neither documented
	// shape.
	KindInvalidMember
)

func (k ErrorKind) String() string {
	switch k {
	case KindAmbiguousSelector:
		return "ambiguous selector"
	case KindAutoDetect:
		return "auto-detect failed"
	case KindEmptyGroup:
		return "empty group"
	case KindGroupUnknownNickname:
		return "dangling nickname"
	case KindInvalidMember:
		return "invalid group member"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is a kind-tagged resolution error.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
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

func kindOf(err error) (ErrorKind, bool) {
	var resErr *Error
	if errors.As(err, &resErr) {
		return resErr.Kind, true
	}
	return 0, false
}

// IsAmbiguousSelector reports whether err is a both-name-and-group
// error.
func IsAmbiguousSelector(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAmbiguousSelector
}

// IsAutoDetectFailed reports whether err is an auto-detect failure.
func IsAutoDetectFailed(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAutoDetect
}

// IsEmptyGroup reports whether err is an empty-group resolution error.
func IsEmptyGroup(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindEmptyGroup
}

// IsGroupUnknownNickname reports whether err is a dangling group
// member reference.
func IsGroupUnknownNickname(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindGroupUnknownNickname
}

// IsInvalidMember reports whether err is a malformed group member
// error.
func IsInvalidMember(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindInvalidMember
}
