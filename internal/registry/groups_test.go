package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	reg := New()
	require.NoError(t, reg.CreateGroup("room"))

	members, err := reg.Group("room")
	require.NoError(t, err)
	assert.Empty(t, members)

	err = reg.CreateGroup("room")
	assert.True(t, IsGroupExists(err))
}

func TestDeleteGroup(t *testing.T) {
	reg := New()
	require.NoError(t, reg.CreateGroup("room"))

	assert.True(t, reg.DeleteGroup("room"))
	assert.False(t, reg.DeleteGroup("room"))

	_, err := reg.Group("room")
	assert.True(t, IsUnknownGroup(err))
}

func TestAddGroupMembersOrderAndDuplicates(t *testing.T) {
	reg := New()
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "a", Model: "H1"}))
	require.NoError(t, reg.CreateGroup("g"))

	// Nicknames append before pairs, argument order preserved,
	// duplicates allowed.
	require.NoError(t, reg.AddGroupMembers("g",
		[]string{"lamp", "lamp"},
		[]DeviceRef{{ID: "x", Model: "H1"}},
	))
	require.NoError(t, reg.AddGroupMembers("g", nil, []DeviceRef{{ID: "x", Model: "H1"}}))

	members, err := reg.Group("g")
	require.NoError(t, err)
	require.Len(t, members, 4)
	assert.Equal(t, "lamp", members[0].Nickname())
	assert.Equal(t, "lamp", members[1].Nickname())
	assert.Equal(t, "x:H1", members[2].Ref().Signature())
	assert.Equal(t, "x:H1", members[3].Ref().Signature())
}

func TestAddGroupMembersUnknownGroup(t *testing.T) {
	reg := New()
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "a", Model: "H1"}))

	err := reg.AddGroupMembers("missing", []string{"lamp"}, nil)
	assert.True(t, IsUnknownGroup(err))
}

func TestAddGroupMembersValidationIsAtomic(t *testing.T) {
	reg := New()
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "a", Model: "H1"}))
	require.NoError(t, reg.CreateGroup("g"))
	require.NoError(t, reg.AddGroupMembers("g", []string{"lamp"}, nil))

	// One known nickname plus one unknown: nothing may be appended.
	err := reg.AddGroupMembers("g", []string{"lamp", "ghost"}, []DeviceRef{{ID: "x", Model: "H1"}})
	assert.True(t, IsUnknownNickname(err))

	members, err := reg.Group("g")
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestAddGroupMembersRequiresMembers(t *testing.T) {
	reg := New()
	require.NoError(t, reg.CreateGroup("g"))

	err := reg.AddGroupMembers("g", nil, nil)
	assert.True(t, IsNoMembers(err))
}

func TestRemoveGroupMembersPreservesOrder(t *testing.T) {
	reg := New()
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "a", Model: "H1"}))
	require.NoError(t, reg.SetNickname("desk", DeviceRef{ID: "b", Model: "H1"}))
	require.NoError(t, reg.CreateGroup("g"))
	require.NoError(t, reg.AddGroupMembers("g",
		[]string{"lamp", "desk"},
		[]DeviceRef{{ID: "x", Model: "H1"}, {ID: "y", Model: "H2"}},
	))

	require.NoError(t, reg.RemoveGroupMembers("g", []string{"lamp"}, []string{"y:H2"}))

	members, err := reg.Group("g")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "desk", members[0].Nickname())
	assert.Equal(t, "x:H1", members[1].Ref().Signature())
}

func TestRemoveGroupMembersUnknownGroup(t *testing.T) {
	reg := New()
	err := reg.RemoveGroupMembers("missing", []string{"lamp"}, nil)
	assert.True(t, IsUnknownGroup(err))
}

func TestRemoveGroupMembersRequiresMembers(t *testing.T) {
	reg := New()
	require.NoError(t, reg.CreateGroup("g"))

	err := reg.RemoveGroupMembers("g", nil, nil)
	assert.True(t, IsNoMembers(err))
}
