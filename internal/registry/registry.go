package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// GroupsKey is the reserved top-level key the group table is stored
// under. It can never be used as a nickname.
const GroupsKey = "_groups"

// DeviceRef identifies a single device by its vendor id and model.
// Both values are opaque to this tool.
type DeviceRef struct {
	ID    string `json:"id"`
	Model string `json:"model"`
}

// Signature returns the "id:model" form used for inline member
// matching and display.
func (d DeviceRef) Signature() string {
	return d.ID + ":" + d.Model
}

// ParsePair parses an "id:model" argument into a DeviceRef. Device ids
// routinely contain colons (they are MAC-like), so the split happens
// at the last colon.
func ParsePair(s string) (DeviceRef, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return DeviceRef{}, newError(KindBadPair, "invalid pair %q: expected id:model", s)
	}
	return DeviceRef{ID: s[:i], Model: s[i+1:]}, nil
}

// MemberKind discriminates the two stored member shapes, plus the
// invalid shape kept around so resolution can report it.
type MemberKind int

const (
	// MemberNickname is a nickname string, resolved through the
	// nickname table at use time.
	MemberNickname MemberKind = iota
	// MemberInline is a self-contained {"id","model"} object.
	MemberInline
	// MemberInvalid is any other shape found in the file. Invalid
	// members survive load and save untouched; using one is an error.
	MemberInvalid
)

// Member is one entry of a group's member list.
type Member struct {
	kind     MemberKind
	nickname string
	ref      DeviceRef
	raw      json.RawMessage // original bytes for invalid members
}

// NicknameMember builds a member that references a nickname.
func NicknameMember(name string) Member {
	return Member{kind: MemberNickname, nickname: name}
}

// InlineMember builds a member that carries its own device reference.
func InlineMember(ref DeviceRef) Member {
	return Member{kind: MemberInline, ref: ref}
}

// Kind returns the member's shape.
func (m Member) Kind() MemberKind { return m.kind }

// Nickname returns the referenced nickname. Only meaningful for
// MemberNickname members.
func (m Member) Nickname() string { return m.nickname }

// Ref returns the inline device reference. Only meaningful for
// MemberInline members.
func (m Member) Ref() DeviceRef { return m.ref }

// String renders the member the way listings show it: the nickname
// itself, or the id:model signature for inline members.
func (m Member) String() string {
	switch m.kind {
	case MemberNickname:
		return m.nickname
	case MemberInline:
		return m.ref.Signature()
	default:
		return fmt.Sprintf("<invalid member %s>", string(m.raw))
	}
}

// Equal reports value equality. Used by go-cmp in tests.
func (m Member) Equal(o Member) bool {
	return m.kind == o.kind &&
		m.nickname == o.nickname &&
		m.ref == o.ref &&
		bytes.Equal(m.raw, o.raw)
}

// MarshalJSON writes the member back in its stored shape.
func (m Member) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case MemberNickname:
		return json.Marshal(m.nickname)
	case MemberInline:
		return json.Marshal(m.ref)
	default:
		if len(m.raw) == 0 {
			return []byte("null"), nil
		}
		return m.raw, nil
	}
}

// UnmarshalJSON accepts the two documented member shapes and tags
// anything else invalid rather than failing the whole load. The bad
// entry is reported if and when the group is resolved.
func (m *Member) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*m = Member{kind: MemberNickname, nickname: name}
		return nil
	}

	var probe struct {
		ID    *string `json:"id"`
		Model *string `json:"model"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.ID != nil && probe.Model != nil {
		*m = Member{kind: MemberInline, ref: DeviceRef{ID: *probe.ID, Model: *probe.Model}}
		return nil
	}

	*m = Member{kind: MemberInvalid, raw: append(json.RawMessage(nil), data...)}
	return nil
}

// Registry is the in-memory form of the persisted document: the
// nickname table plus the group table. Nickname and group namespaces
// are independent; the same string may be both.
type Registry struct {
	Nicknames map[string]DeviceRef
	Groups    map[string][]Member
}

// New returns an empty registry with both tables initialized.
func New() *Registry {
	return &Registry{
		Nicknames: make(map[string]DeviceRef),
		Groups:    make(map[string][]Member),
	}
}
