package registry

import (
	"github.com/samber/lo"
)

// CreateGroup creates an empty group. Creating a name that already
// exists fails with a group-exists error, which callers surface as an
// informative no-op.
func (r *Registry) CreateGroup(name string) error {
	if _, ok := r.Groups[name]; ok {
		return newError(KindGroupExists, "group %q already exists", name)
	}
	r.Groups[name] = []Member{}
	return nil
}

// DeleteGroup removes a group and reports whether it existed.
func (r *Registry) DeleteGroup(name string) bool {
	if _, ok := r.Groups[name]; !ok {
		return false
	}
	delete(r.Groups, name)
	return true
}

// Group returns a group's member list in stored order.
func (r *Registry) Group(name string) ([]Member, error) {
	members, ok := r.Groups[name]
	if !ok {
		return nil, unknownGroupError(name)
	}
	return members, nil
}

// AddGroupMembers appends members to a group: the given nicknames
// first (as nickname references), then the given pairs (as inline
// references), in argument order. Duplicates are allowed. Every
// nickname is validated against the nickname table before anything is
// appended, so a failed call leaves the group untouched.
func (r *Registry) AddGroupMembers(name string, nicknames []string, pairs []DeviceRef) error {
	members, ok := r.Groups[name]
	if !ok {
		return unknownGroupError(name)
	}
	if len(nicknames) == 0 && len(pairs) == 0 {
		return newError(KindNoMembers, "provide at least one member via --names or --pairs id:model")
	}
	for _, n := range nicknames {
		if _, ok := r.Nicknames[n]; !ok {
			return newError(KindUnknownNickname, "unknown nickname %q; create it with `names add`", n)
		}
	}

	for _, n := range nicknames {
		members = append(members, NicknameMember(n))
	}
	for _, p := range pairs {
		members = append(members, InlineMember(p))
	}
	r.Groups[name] = members
	return nil
}

// RemoveGroupMembers drops nickname members named in nicknames and
// inline members whose id:model signature is in pairSignatures. The
// order of the remaining members is preserved. Invalid members are
// never dropped by this path.
func (r *Registry) RemoveGroupMembers(name string, nicknames []string, pairSignatures []string) error {
	members, ok := r.Groups[name]
	if !ok {
		return unknownGroupError(name)
	}
	if len(nicknames) == 0 && len(pairSignatures) == 0 {
		return newError(KindNoMembers, "provide members to remove via --names and/or --pairs id:model")
	}

	nickSet := lo.SliceToMap(nicknames, func(n string) (string, struct{}) { return n, struct{}{} })
	sigSet := lo.SliceToMap(pairSignatures, func(s string) (string, struct{}) { return s, struct{}{} })

	r.Groups[name] = lo.Filter(members, func(m Member, _ int) bool {
		switch m.Kind() {
		case MemberNickname:
			_, drop := nickSet[m.Nickname()]
			return !drop
		case MemberInline:
			_, drop := sigSet[m.Ref().Signature()]
			return !drop
		default:
			return true
		}
	})
	return nil
}

func unknownGroupError(name string) *Error {
	return newError(KindUnknownGroup, "group %q not found; create it with `groups add %s`", name, name)
}
