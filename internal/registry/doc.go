// Package registry manages the persisted nickname and group registry
// for goveectl.
//
// The registry is a single JSON document mapping user-chosen nicknames
// to vendor device identifiers, with named groups stored under the
// reserved "_groups" key. Members of a group are either nickname
// strings (resolved at use time) or inline {"id","model"} objects.
//
//	{
//	  "lamp": {"id": "AA:BB:CC:DD:EE:FF:11:22", "model": "H6008"},
//	  "_groups": {
//	    "livingroom": ["lamp", {"id": "11:22:33:44:55:66:77:88", "model": "H6008"}]
//	  }
//	}
//
// The whole document is loaded into memory at the start of an
// invocation, mutated, and written back once with a write-to-temp
// plus atomic-rename so a crash mid-write never corrupts the
// previously committed file. Concurrent invocations from separate
// processes are not coordinated; the later rename wins wholesale.
package registry
