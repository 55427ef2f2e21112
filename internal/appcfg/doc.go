// Package appcfg loads the optional goveectl settings file.
//
// The settings file lives next to the device registry in the
// platform-appropriate configuration directory and carries the API
// key (the GOVEE_API_KEY environment variable takes precedence), the
// API base URL, the request timeout, the auto-detect model, and an
// optional registry path override. Every field has a working default,
// so first runs need no setup beyond exporting the API key.
package appcfg
