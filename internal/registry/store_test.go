package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "devices.json"))
}

func TestLoadMissingFile(t *testing.T) {
	store := testStore(t)

	reg, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, reg.Nicknames)
	assert.Empty(t, reg.Groups)
}

func TestLoadMalformedJSON(t *testing.T) {
	store := testStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, IsCorrupt(err))
	assert.Contains(t, err.Error(), store.Path())
}

func TestLoadInvalidGroupsSection(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "groups is an array", doc: `{"_groups": ["g1"]}`},
		{name: "group value is not a list", doc: `{"_groups": {"g1": {"id": "x"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.doc), 0600))

			_, err := store.Load()
			assert.True(t, IsCorrupt(err))
		})
	}
}

func TestLoadIgnoresForeignTopLevelEntries(t *testing.T) {
	store := testStore(t)
	doc := `{
		"lamp": {"id": "a", "model": "H1"},
		"comment": "hand-written note",
		"half": {"id": "only-an-id"},
		"number": 7
	}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(doc), 0600))

	reg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]DeviceRef{"lamp": {ID: "a", Model: "H1"}}, reg.Nicknames)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := testStore(t)

	reg := New()
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "a", Model: "H6008"}))
	require.NoError(t, reg.SetNickname("desk", DeviceRef{ID: "b", Model: "H6008"}))
	require.NoError(t, reg.CreateGroup("empty"))
	require.NoError(t, reg.CreateGroup("mixed"))
	require.NoError(t, reg.AddGroupMembers("mixed",
		[]string{"lamp", "lamp"}, // duplicates survive the round trip
		[]DeviceRef{{ID: "x", Model: "H1"}},
	))

	require.NoError(t, store.Save(reg))

	loaded, err := store.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(reg, loaded); diff != "" {
		t.Errorf("registry changed across save/load (-want +got):\n%s", diff)
	}

	// Saving the loaded registry again must be byte-stable.
	first, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded))
	second, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "nested", "deeper", "devices.json"))

	require.NoError(t, store.Save(New()))

	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(New()))

	_, err := os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveDocumentShape(t *testing.T) {
	store := testStore(t)

	reg := New()
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "a", Model: "H6008"}))
	require.NoError(t, reg.CreateGroup("room"))
	require.NoError(t, reg.AddGroupMembers("room", []string{"lamp"}, []DeviceRef{{ID: "x", Model: "H1"}}))
	require.NoError(t, store.Save(reg))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	// Nicknames are top-level {id,model} objects; groups live under
	// the reserved key with nickname strings and inline objects.
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "lamp")
	require.Contains(t, doc, GroupsKey)

	var groups map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(doc[GroupsKey], &groups))
	require.Len(t, groups["room"], 2)
	assert.JSONEq(t, `"lamp"`, string(groups["room"][0]))
	assert.JSONEq(t, `{"id":"x","model":"H1"}`, string(groups["room"][1]))
}

func TestRegistryScenarioEndToEnd(t *testing.T) {
	store := testStore(t)

	// Fresh registry: bind a nickname, create a group, add the
	// nickname as a member, reload from disk, and check the member
	// list survived intact.
	reg, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "dev1", Model: "H6008"}))
	require.NoError(t, reg.CreateGroup("room"))
	require.NoError(t, reg.AddGroupMembers("room", []string{"lamp"}, nil))
	require.NoError(t, store.Save(reg))

	reloaded, err := store.Load()
	require.NoError(t, err)
	members, err := reloaded.Group("room")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "lamp", members[0].Nickname())

	ref, err := reloaded.ResolveNickname(members[0].Nickname())
	require.NoError(t, err)
	assert.Equal(t, DeviceRef{ID: "dev1", Model: "H6008"}, ref)
}

func TestFailedMutationLeavesFileUntouched(t *testing.T) {
	store := testStore(t)

	reg := New()
	require.NoError(t, reg.SetNickname("lamp", DeviceRef{ID: "dev1", Model: "H6008"}))
	require.NoError(t, store.Save(reg))
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	// Adding members to a missing group fails before any mutation, so
	// nothing gets saved and the file on disk is unchanged.
	loaded, err := store.Load()
	require.NoError(t, err)
	err = loaded.AddGroupMembers("missing", []string{"lamp"}, nil)
	require.True(t, IsUnknownGroup(err))

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
