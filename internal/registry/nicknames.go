package registry

import (
	"github.com/samber/lo"
)

// SetNickname inserts or overwrites a nickname binding. Last write
// wins; rebinding an existing nickname is not an error. The reserved
// group key is rejected.
func (r *Registry) SetNickname(name string, ref DeviceRef) error {
	if name == GroupsKey {
		return newError(KindReservedName, "%q is reserved and cannot be used as a nickname", GroupsKey)
	}
	r.Nicknames[name] = ref
	return nil
}

// RemoveNickname deletes a nickname binding and reports whether it
// existed. Every group member referencing the nickname is pruned as
// well, so this path never leaves dangling references behind.
func (r *Registry) RemoveNickname(name string) bool {
	if _, ok := r.Nicknames[name]; !ok {
		return false
	}
	delete(r.Nicknames, name)
	for group, members := range r.Groups {
		r.Groups[group] = lo.Filter(members, func(m Member, _ int) bool {
			return !(m.Kind() == MemberNickname && m.Nickname() == name)
		})
	}
	return true
}

// ResolveNickname looks up a nickname binding.
func (r *Registry) ResolveNickname(name string) (DeviceRef, error) {
	ref, ok := r.Nicknames[name]
	if !ok {
		return DeviceRef{}, newError(KindUnknownNickname, "nickname %q not found; create it with `names add`", name)
	}
	return ref, nil
}
